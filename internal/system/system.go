package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ProjectExt is the extension of REAPER project files.
const ProjectExt = ".rpp"

// ObjectExt is the extension of generated object scripts.
const ObjectExt = ".object"

// FindLatestProject returns the most recently modified .rpp file in dir.
func FindLatestProject(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ProjectExt) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no %s files found in %s", ProjectExt, dir)
	}

	return latestFile, nil
}

// DefaultOutputPath builds output/<name>_<timestamp>.object for a project.
func DefaultOutputPath(outDir, projectPath string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(projectPath), filepath.Ext(projectPath))
	base = strings.ReplaceAll(base, " ", "_")
	name := fmt.Sprintf("%s_%s%s", base, now.Format("2006-01-02_15-04-05"), ObjectExt)
	return filepath.Join(outDir, name)
}
