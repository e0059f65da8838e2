package web

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"calcweb/internal/config"
)

// appRoot returns the directory holding the running binary. Asset and
// template paths are derived from it, so the server behaves the same no
// matter which directory it was launched from.
func appRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "Failed to locate executable")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "Failed to resolve executable path")
	}
	return filepath.Dir(exe), nil
}

func resolveDirs(config *config.Config) (staticDir, templatesDir string, err error) {
	staticDir = config.StaticDir
	templatesDir = config.TemplatesDir

	if staticDir == "" || templatesDir == "" {
		root, err := appRoot()
		if err != nil {
			return "", "", err
		}
		if staticDir == "" {
			staticDir = filepath.Join(root, "static")
		}
		if templatesDir == "" {
			templatesDir = filepath.Join(root, "templates")
		}
	}

	if staticDir, err = filepath.Abs(staticDir); err != nil {
		return "", "", errors.Wrap(err, "Failed to resolve static dir")
	}
	if templatesDir, err = filepath.Abs(templatesDir); err != nil {
		return "", "", errors.Wrap(err, "Failed to resolve templates dir")
	}
	return staticDir, templatesDir, nil
}
