package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"
)

func testKey(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, chacha20poly1305.KeySize)
}

func TestNewRefundAccountCodecRejectsBadKeySize(t *testing.T) {
	_, err := NewRefundAccountCodec([]byte("too short"))
	require.Error(t, err)
}

func TestRefundAccountCodecRoundTrip(t *testing.T) {
	codec, err := NewRefundAccountCodec(testKey(0x42))
	require.NoError(t, err)

	const account = "110-123-456789"

	encrypted, err := codec.Encrypt(account)
	require.NoError(t, err)
	assert.NotEqual(t, account, encrypted)

	decrypted, err := codec.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, account, decrypted)
}

func TestRefundAccountCodecRandomizesCiphertext(t *testing.T) {
	codec, err := NewRefundAccountCodec(testKey(0x42))
	require.NoError(t, err)

	first, err := codec.Encrypt("110-123-456789")
	require.NoError(t, err)
	second, err := codec.Encrypt("110-123-456789")
	require.NoError(t, err)

	// Fresh nonce per encryption.
	assert.NotEqual(t, first, second)
}

func TestRefundAccountCodecRejectsWrongKey(t *testing.T) {
	codec, err := NewRefundAccountCodec(testKey(0x42))
	require.NoError(t, err)
	other, err := NewRefundAccountCodec(testKey(0x43))
	require.NoError(t, err)

	encrypted, err := codec.Encrypt("110-123-456789")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	require.Error(t, err)
}

func TestRefundAccountCodecRejectsMalformedInput(t *testing.T) {
	codec, err := NewRefundAccountCodec(testKey(0x42))
	require.NoError(t, err)

	_, err = codec.Decrypt("not base64!!!")
	require.Error(t, err)

	// Valid base64 but shorter than a nonce.
	_, err = codec.Decrypt("c2hvcnQ=")
	require.Error(t, err)
}
