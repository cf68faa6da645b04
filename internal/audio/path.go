package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"speakfile/internal/speech"
)

// ResolvePath picks the output file for proposed and format f. The format
// extension is appended unless proposed already ends with it, and -1, -2, ...
// is added to the base name until no file exists at the candidate. The check
// is not a reservation; FileStore.Save guards the write itself.
func ResolvePath(proposed string, f speech.Format) (string, error) {
	ext := f.Extension()
	base := proposed
	if strings.HasSuffix(strings.ToLower(proposed), ext) {
		base = proposed[:strings.LastIndex(proposed, ".")]
	}

	candidate := base + ext
	for n := 1; ; n++ {
		exists, err := fileExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		candidate = fmt.Sprintf("%s-%d%s", base, n, ext)
	}

	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path %s: %w", candidate, err)
	}
	return abs, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check output path %s: %w", path, err)
	}
}
