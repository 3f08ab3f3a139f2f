package workflows

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"github.com/PolarWolf314/tcountdown/internal/utils"
	"github.com/PolarWolf314/tcountdown/internal/webdav"
)

// LoadLocalData returns the local document, or "[]" if it does not exist.
func LoadLocalData(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return webdav.EmptyDocument, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", kerrors.ErrIO, path, err)
	}
	return string(data), nil
}

// SaveLocalData overwrites the local document.
func SaveLocalData(path, document string) error {
	if err := utils.WriteFileAtomic(path, []byte(document), 0600); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	return nil
}
