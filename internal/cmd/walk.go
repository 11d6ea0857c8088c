package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BabakBar/fmthook/internal/config"
	"github.com/BabakBar/fmthook/internal/watch"
)

// markdownFiles expands paths: files are kept as given, directories are
// walked for files with a Markdown extension.
func markdownFiles(cfg *config.Config, paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && watch.IgnoredDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if cfg.IsMarkdown(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	return files, nil
}
