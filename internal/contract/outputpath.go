package contract

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputDir returns the directory results should be written to. When
// outputPath is non-empty it is used verbatim; otherwise results land under
// outputs/<parent-of-input>/<input-stem>/, where <parent-of-input> is the
// input path's directory relative to the current working directory
// (falling back to the absolute directory if the input lies outside the
// working tree) and <input-stem> is the input filename without its
// extension.
func ResolveOutputDir(inputPath, outputPath string) (string, error) {
	if outputPath != "" {
		return outputPath, nil
	}

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return "", err
	}
	inputDir := filepath.Dir(absInput)

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	parent := inputDir
	if rel, relErr := filepath.Rel(cwd, inputDir); relErr == nil && !strings.HasPrefix(rel, "..") {
		parent = rel
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join("outputs", parent, stem), nil
}
