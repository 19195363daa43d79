package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory and returns
// the written paths. It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(files))

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return nil, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}
