package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the spellserve binary
type PathResolver struct {
	executablePath string
	executableDir  string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp" // fallback
	}
	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		configDir:      configDir,
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin": // macOS
		return filepath.Join(homeDir, ".config", "spellserve")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "spellserve")
		}
		return filepath.Join(homeDir, ".config", "spellserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "spellserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "spellserve")
	default:
		return filepath.Join(homeDir, ".spellserve")
	}
}

// GetWordListPath resolves a ranked word list file.
// It tries multiple locations in order of preference:
// 1. User-specified path (if absolute)
// 2. As given, relative to the current working directory
// 3. Relative to the executable directory
// 4. Inside the config directory
// Returns os.ErrNotExist when no candidate holds a file, so callers
// can fall back to the embedded list.
func (pr *PathResolver) GetWordListPath(userSpecifiedPath string) (string, error) {
	var candidatePaths []string

	if filepath.IsAbs(userSpecifiedPath) {
		candidatePaths = append(candidatePaths, userSpecifiedPath)
	} else {
		if cwd, err := os.Getwd(); err == nil {
			candidatePaths = append(candidatePaths, filepath.Join(cwd, userSpecifiedPath))
		}
		candidatePaths = append(candidatePaths, filepath.Join(pr.executableDir, userSpecifiedPath))
		candidatePaths = append(candidatePaths, filepath.Join(pr.configDir, userSpecifiedPath))
	}

	for _, path := range candidatePaths {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found word list: %s", path)
			return path, nil
		}
		log.Debugf("Word list candidate not valid: %s", path)
	}
	return userSpecifiedPath, os.ErrNotExist
}

// GetExecutableDir returns the directory containing the executable
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}

// GetExecutablePath returns the full path to the executable
func (pr *PathResolver) GetExecutablePath() string {
	return pr.executablePath
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
