package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	key1 := DeriveKey("momodeku")
	key2 := DeriveKey("momodeku")
	assert.Equal(t, key1, key2)

	raw, err := hex.DecodeString(key1)
	require.NoError(t, err)
	assert.Len(t, raw, KeySize)
}

func TestDeriveKeyDistinctPasswords(t *testing.T) {
	passwords := []string{"", "a", "momodeku", "momodeku ", "Momodeku", "пароль"}
	seen := map[string]string{}
	for _, p := range passwords {
		key := DeriveKey(p)
		prev, dup := seen[key]
		assert.False(t, dup, "passwords %q and %q derived the same key", p, prev)
		seen[key] = p
	}
}

func TestDeriveKeyEmptyPassword(t *testing.T) {
	assert.NotPanics(t, func() {
		key := DeriveKey("")
		assert.Len(t, key, KeySize*2)
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	values := []any{
		map[string]any{"greeting": "hi"},
		map[string]any{
			"story":     []any{"one", "two"},
			"interests": []any{map[string]any{"id": "tennis", "icon": "🎾"}},
			"nested":    map[string]any{"deep": map[string]any{"count": float64(3)}},
		},
		[]any{"a", float64(1), true, nil},
		"plain string",
		float64(42.5),
		true,
		nil,
		"unicode: 汉字 🚀 émoji",
	}

	for _, v := range values {
		blob, err := Encrypt(v, "momodeku")
		require.NoError(t, err)

		got, err := Decrypt(blob, "momodeku")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEncryptProducesFreshBlobs(t *testing.T) {
	v := map[string]any{"greeting": "hi"}

	blob1, err := Encrypt(v, "momodeku")
	require.NoError(t, err)
	blob2, err := Encrypt(v, "momodeku")
	require.NoError(t, err)

	// random nonce per call
	assert.NotEqual(t, blob1, blob2)

	for _, blob := range []string{blob1, blob2} {
		got, err := Decrypt(blob, "momodeku")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	pairs := [][2]string{
		{"momodeku", "wrong"},
		{"momodeku", "momodeku "},
		{"momodeku", ""},
		{"", "momodeku"},
	}

	for _, pair := range pairs {
		blob, err := Encrypt(map[string]any{"greeting": "hi"}, pair[0])
		require.NoError(t, err)

		got, err := Decrypt(blob, pair[1])
		assert.ErrorIs(t, err, ErrDecryptionFailed)
		assert.Nil(t, got)
	}
}

func TestDecryptMalformedInput(t *testing.T) {
	valid, err := Encrypt(map[string]any{"greeting": "hi"}, "momodeku")
	require.NoError(t, err)

	blobs := []string{
		"",
		"not base64 at all!!!",
		EncodeBase64([]byte("short")),
		EncodeBase64(make([]byte, NonceSize)), // nonce only, no ciphertext
		valid[:8],                             // truncated
		EncodeBase64([]byte("0123456789012345678901234567890123456789")), // random bytes
	}

	for _, blob := range blobs {
		assert.NotPanics(t, func() {
			got, err := Decrypt(blob, "momodeku")
			assert.ErrorIs(t, err, ErrDecryptionFailed, "blob %q", blob)
			assert.Nil(t, got)
		})
	}
}

func TestDecryptWithKey(t *testing.T) {
	key := DeriveKey("momodeku")

	blob, err := EncryptWithKey(map[string]any{"greeting": "hi"}, key)
	require.NoError(t, err)

	got, err := DecryptWithKey(blob, key)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"greeting": "hi"}, got)

	// a persisted key that is not valid hex fails like any other bad input
	_, err = DecryptWithKey(blob, "not-a-key")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestZeroize(t *testing.T) {
	data := []byte("secret")
	Zeroize(data)
	assert.Equal(t, make([]byte, 6), data)
}
