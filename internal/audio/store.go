package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrOutputExists is returned when the output file appeared after its path was resolved.
var ErrOutputExists = errors.New("output file already exists")

// FileStore writes synthesized audio to disk without ever replacing a file.
type FileStore struct {
	Perm os.FileMode
}

func NewFileStore() *FileStore {
	return &FileStore{Perm: 0o644}
}

// Save creates path exclusively and writes data in full.
func (s *FileStore) Save(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.Perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write audio to %s: %w", path, err)
	}
	return nil
}
