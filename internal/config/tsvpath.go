package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// TSVPath resolves the accomplishment log path, in decreasing order of
// preference:
//
//  1. The explicit path (--tsv flag); must exist and be a regular file.
//  2. $IDID_TSV; same requirement.
//  3. The config file's tsv value; same requirement.
//  4. $XDG_DATA_HOME/idid/idid.tsv, falling back to ~/.local/share when
//     XDG_DATA_HOME is unset. Created lazily, parent directories
//     included.
//
// Errors name the source of the failing path so the user knows which
// setting to fix.
func TSVPath(explicit string, cfg *Config) (string, error) {
	if explicit != "" {
		return validateFile(explicit, "--tsv ")
	}

	if fromEnv := os.Getenv("IDID_TSV"); fromEnv != "" {
		return validateFile(fromEnv, "$IDID_TSV ")
	}

	if cfg != nil && cfg.TSV != "" {
		return validateFile(cfg.TSV, "config tsv ")
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("$XDG_DATA_HOME unset and no home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	path := filepath.Join(dataDir, "idid", "idid.tsv")
	if resolved, err := validateFile(path, ""); err == nil {
		return resolved, nil
	}
	return createDefault(path)
}

// validateFile checks the path exists and is a regular file. The prefix
// names the setting that supplied the path in error messages.
func validateFile(path, prefix string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%sdoes not exist: %s", prefix, path)
		}
		return "", fmt.Errorf("%s%s: %w", prefix, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%snot a file: %s", prefix, path)
	}
	return path, nil
}

// createDefault creates the default log file along with its directory.
func createDefault(path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("creating log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("creating log file: %w", err)
	}
	return path, nil
}
