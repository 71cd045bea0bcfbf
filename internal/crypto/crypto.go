package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Salt is fixed and public. Build-time encryption and runtime decryption
	// must derive the same key from the same password, so the salt is a shared
	// constant rather than random per item. Changing it invalidates every
	// previously produced ciphertext.
	Salt = "portfolio-salt-2025"

	// PBKDF2 parameters
	Iterations = 10000
	KeySize    = 32 // AES-256

	// Nonce size for AES-GCM
	NonceSize = 12
)

// ErrDecryptionFailed covers every way a blob can fail to open: wrong
// password, truncated or corrupted ciphertext, or garbage that decrypts but
// does not parse. The cases are deliberately indistinguishable.
var ErrDecryptionFailed = errors.New("failed to decrypt content: wrong password or corrupted data")

// DeriveKey derives a hex-encoded 256-bit key from a password using
// PBKDF2-SHA256 with the fixed salt and iteration count. Deterministic for
// any input, including the empty string.
func DeriveKey(password string) string {
	key := pbkdf2.Key([]byte(password), []byte(Salt), Iterations, KeySize, sha256.New)
	return hex.EncodeToString(key)
}

// keyBytes recovers the raw AES key from its hex encoding.
func keyBytes(key string) ([]byte, error) {
	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(raw))
	}
	return raw, nil
}

// Encrypt serializes data as JSON and encrypts it under the key derived from
// password. The result is a single base64 string with the random nonce
// prefixed to the AES-256-GCM ciphertext.
func Encrypt(data any, password string) (string, error) {
	return EncryptWithKey(data, DeriveKey(password))
}

// EncryptWithKey encrypts data with an already-derived key.
func EncryptWithKey(data any, key string) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize content: %w", err)
	}

	raw, err := keyBytes(key)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create AEAD: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return EncodeBase64(sealed), nil
}

// Decrypt reverses Encrypt, deriving the key from password. It returns
// ErrDecryptionFailed for any input that does not open and parse cleanly and
// never panics on malformed blobs.
func Decrypt(blob string, password string) (any, error) {
	return DecryptWithKey(blob, DeriveKey(password))
}

// DecryptWithKey decrypts a blob with an already-derived key.
func DecryptWithKey(blob string, key string) (any, error) {
	raw, err := keyBytes(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	sealed, err := DecodeBase64(blob)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	if len(sealed) < gcm.NonceSize()+gcm.Overhead() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():], nil)
	if err != nil || len(plaintext) == 0 {
		return nil, ErrDecryptionFailed
	}

	var data any
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, ErrDecryptionFailed
	}

	return data, nil
}

// EncodeBase64 encodes bytes to base64 string
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes base64 string to bytes
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Zeroize overwrites a byte slice with zeros to clear sensitive data from memory
func Zeroize(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
