// Package photos strips metadata from images and gives them sequential
// names.
package photos

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/shell"
)

// Plain removes all metadata from files in place with mat2, then renames
// them to <dir>/<basename>_NNNN<ext> in argument order.
func Plain(runner shell.Runner, fs afero.Fs, basename string, files []string) error {
	if basename == "" {
		return fmt.Errorf("basename is required")
	}
	if len(files) == 0 {
		return fmt.Errorf("no files given")
	}

	args := append([]string{"--inplace"}, files...)
	if err := runner.Run("", "mat2", args...); err != nil {
		return fmt.Errorf("failed to strip metadata: %w", err)
	}

	position := make(map[string]int, len(files))
	for i, file := range files {
		position[filepath.Clean(file)] = i
	}

	for i, file := range files {
		target := NewName(file, basename, i)
		if target == filepath.Clean(file) {
			continue
		}
		// Inputs listed earlier have already been moved out of the way.
		if exists, _ := afero.Exists(fs, target); exists {
			if j, ok := position[target]; !ok || j >= i {
				return fmt.Errorf("refusing to overwrite %s", target)
			}
		}
		if err := fs.Rename(file, target); err != nil {
			return fmt.Errorf("failed to rename %s: %w", file, err)
		}
		logger.Debug("%s -> %s\n", file, target)
	}
	return nil
}

// NewName returns the sequential name of the index-th file.
func NewName(file, basename string, index int) string {
	return filepath.Join(filepath.Dir(file), fmt.Sprintf("%s_%04d%s", basename, index, filepath.Ext(file)))
}
