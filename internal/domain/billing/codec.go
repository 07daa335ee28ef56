package billing

// RefundAccountCodec encrypts refund account numbers at rest. The billing
// repository runs every account number through it on the way in and out;
// the rest of the core treats the codec as opaque.
type RefundAccountCodec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
