// Package crypto provides at-rest encryption for sensitive billing fields.
package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/recero-inc/recero/internal/domain/billing"
)

// RefundAccountCodec encrypts refund account numbers with ChaCha20-Poly1305.
// Ciphertexts are base64 encoded with the nonce prepended, so each encryption
// of the same plaintext yields a different stored value.
type RefundAccountCodec struct {
	aead cipher.AEAD
}

func NewRefundAccountCodec(key []byte) (*RefundAccountCodec, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("refund account key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	return &RefundAccountCodec{aead: aead}, nil
}

var _ billing.RefundAccountCodec = (*RefundAccountCodec)(nil)

func (c *RefundAccountCodec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *RefundAccountCodec) Decrypt(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return "", fmt.Errorf("ciphertext too short: %d bytes", len(sealed))
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt refund account: %w", err)
	}

	return string(plaintext), nil
}
