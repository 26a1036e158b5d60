package tokenstore

import (
	"path/filepath"
	"testing"

	"github.com/muusmart/muusmart/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	m := NewMemory()

	tok, err := m.Get()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, m.Set("abc.def.ghi"))
	tok, err = m.Get()
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, m.Delete())
	tok, err = m.Get()
	require.NoError(t, err)
	require.Empty(t, tok)

	// Deleting an absent token is a no-op.
	require.NoError(t, m.Delete())
}

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("plain round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds", "token")
		f, err := NewFile(path, nil)
		require.NoError(t, err)

		tok, err := f.Get()
		require.NoError(t, err)
		require.Empty(t, tok)

		require.NoError(t, f.Set("abc.def.ghi"))
		tok, err = f.Get()
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", tok)

		require.NoError(t, f.Delete())
		tok, err = f.Get()
		require.NoError(t, err)
		require.Empty(t, tok)
	})

	t.Run("survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		f, err := NewFile(path, nil)
		require.NoError(t, err)
		require.NoError(t, f.Set("persisted"))

		reopened, err := NewFile(path, nil)
		require.NoError(t, err)
		tok, err := reopened.Get()
		require.NoError(t, err)
		require.Equal(t, "persisted", tok)
	})

	t.Run("sealed round trip", func(t *testing.T) {
		sealer, err := cryptox.NewSealer("hunter2")
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "token")
		f, err := NewFile(path, sealer)
		require.NoError(t, err)
		require.NoError(t, f.Set("abc.def.ghi"))

		tok, err := f.Get()
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", tok)

		// A store with the wrong passphrase cannot read it back.
		wrong, err := cryptox.NewSealer("password1")
		require.NoError(t, err)
		bad, err := NewFile(path, wrong)
		require.NoError(t, err)
		_, err = bad.Get()
		require.Error(t, err)
	})

	t.Run("delete absent is no-op", func(t *testing.T) {
		f, err := NewFile(filepath.Join(t.TempDir(), "token"), nil)
		require.NoError(t, err)
		require.NoError(t, f.Delete())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewFile("", nil)
		require.Error(t, err)
	})
}
