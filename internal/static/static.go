// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

const (
	filesDir = "files"
	iconName = "pomo.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Icon returns the path of the notification icon inside dataDir, writing the
// embedded copy there first if the file does not exist yet.
func Icon(dataDir string) (string, error) {
	destPath := filepath.Join(dataDir, iconName)

	_, err := os.Stat(destPath)
	if err == nil {
		return destPath, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	b, err := embeddedFiles.ReadFile(filesDir + "/" + iconName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dataDir, osutil.DirPermission); err != nil {
		return "", err
	}

	if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
		return "", err
	}

	return destPath, nil
}
