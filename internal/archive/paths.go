package archive

import (
	"fmt"
	"path/filepath"
)

// SeasonPath builds the path to an archived season file.
func SeasonPath(basePath string, year int) string {
	return filepath.Join(basePath, "seasons", fmt.Sprintf("%d.json", year))
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}
