package publish

import (
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
)

// WriteFile writes content to relativePath under destDir, creating parent
// directories as needed. Existing files are replaced.
//
// The output path must stay under destDir; absolute paths and paths that
// climb out of it are rejected.
func WriteFile(destDir, relativePath string, content []byte) (string, error) {
	if destDir == "" {
		return "", errors.ValidationError("destination directory is required").Build()
	}
	if relativePath == "" {
		return "", errors.ValidationError("output path is required").Build()
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return "", errors.ValidationError("output path must be relative to the destination").
			WithContext("path", relativePath).Build()
	}

	fullPath := filepath.Join(destDir, cleanRel)
	rel, err := filepath.Rel(destDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errors.ValidationError("output path escapes the destination").
			WithContext("path", relativePath).Build()
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			Fatal().WithContext("path", filepath.Dir(fullPath)).Build()
	}
	// #nosec G306 -- generated documentation is meant to be served as-is
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to write output file").
			Fatal().WithContext("path", fullPath).Build()
	}
	return fullPath, nil
}
