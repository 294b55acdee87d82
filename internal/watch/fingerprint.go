package watch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/inful/mdfp"
)

// Fingerprint summarizes the contents of paths. Directories contribute every
// regular file beneath them; missing paths contribute a marker so that
// deleting an input changes the result.
func Fingerprint(paths []string) (string, error) {
	var sb strings.Builder
	for _, p := range paths {
		if p == "" {
			continue
		}
		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintf(&sb, "%s\x00missing\n", path)
					return nil
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			// #nosec G304 -- paths are the configured inputs
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, "%s\x00%s\n", path, mdfp.CalculateFingerprintFromParts("", string(raw)))
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", p, err)
		}
	}
	return mdfp.CalculateFingerprintFromParts("", sb.String()), nil
}
