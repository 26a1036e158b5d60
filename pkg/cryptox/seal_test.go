package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealer(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		s, err := NewSealer("correct horse battery staple")
		require.NoError(t, err)

		sealed, err := s.Seal([]byte("header.payload.signature"))
		require.NoError(t, err)
		require.NotContains(t, string(sealed), "payload")

		opened, err := s.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, []byte("header.payload.signature"), opened)
	})

	t.Run("fresh salt per seal", func(t *testing.T) {
		s, err := NewSealer("pass")
		require.NoError(t, err)

		a, err := s.Seal([]byte("same"))
		require.NoError(t, err)
		b, err := s.Seal([]byte("same"))
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("wrong passphrase fails", func(t *testing.T) {
		s1, err := NewSealer("one")
		require.NoError(t, err)
		s2, err := NewSealer("two")
		require.NoError(t, err)

		sealed, err := s1.Seal([]byte("secret"))
		require.NoError(t, err)

		_, err = s2.Open(sealed)
		require.Error(t, err)
	})

	t.Run("tampered data fails", func(t *testing.T) {
		s, err := NewSealer("pass")
		require.NoError(t, err)

		sealed, err := s.Seal([]byte("secret"))
		require.NoError(t, err)
		sealed[len(sealed)-1] ^= 0x01

		_, err = s.Open(sealed)
		require.Error(t, err)
	})

	t.Run("rejects empty passphrase", func(t *testing.T) {
		_, err := NewSealer("")
		require.Error(t, err)
	})

	t.Run("rejects truncated data", func(t *testing.T) {
		s, err := NewSealer("pass")
		require.NoError(t, err)

		_, err = s.Open([]byte("short"))
		require.Error(t, err)
	})
}
