package app

import (
	"errors"
	"fmt"
	"os"
)

// prepareFilesystem creates every directory the later phases write to.
func prepareFilesystem(cfg bootConfig) error {
	dirs := []string{cfg.DataDir}
	if cfg.EmailDir != "" {
		dirs = append(dirs, cfg.EmailDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Join(ErrFilesystem, fmt.Errorf("create %s: %w", dir, err))
		}
	}
	return nil
}
