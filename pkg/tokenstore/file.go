package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/muusmart/muusmart/pkg/cryptox"
)

// File stores the token in a single file with 0600 permissions. When a
// Sealer is provided the token is encrypted at rest; otherwise it is
// written as plain text, the same trust model as ~/.netrc.
type File struct {
	mu     sync.Mutex
	path   string
	sealer *cryptox.Sealer
}

// NewFile creates a file-backed store at path. sealer may be nil.
func NewFile(path string, sealer *cryptox.Sealer) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("tokenstore: empty path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	return &File{path: path, sealer: sealer}, nil
}

func (f *File) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}

	if f.sealer != nil {
		plain, err := f.sealer.Open(data)
		if err != nil {
			return "", fmt.Errorf("failed to unseal credential file: %w", err)
		}
		return string(plain), nil
	}

	return strings.TrimSpace(string(data)), nil
}

func (f *File) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := []byte(token)
	if f.sealer != nil {
		sealed, err := f.sealer.Seal(data)
		if err != nil {
			return fmt.Errorf("failed to seal credential: %w", err)
		}
		data = sealed
	}

	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace credential file: %w", err)
	}

	return nil
}

func (f *File) Delete() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
