package command

import (
	"os"
	"path/filepath"
)

// RegistryFileName is the file name looked up in project and user directories.
const RegistryFileName = "registry.yaml"

// ProjectRegistryPath returns .slashroute/registry.yaml under dir.
func ProjectRegistryPath(dir string) string {
	return filepath.Join(dir, ".slashroute", RegistryFileName)
}

// UserRegistryPath returns ~/.config/slashroute/registry.yaml.
// Returns empty string if home directory cannot be determined.
func UserRegistryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slashroute", RegistryFileName)
}

// ResolveRegistryPath picks the registry file to load. An explicitly
// configured path always wins; otherwise the project registry under workDir,
// then the user registry. Returns "" when none exists, meaning the built-in
// registry is used.
func ResolveRegistryPath(configured, workDir string) string {
	if configured != "" {
		return configured
	}
	for _, candidate := range []string{ProjectRegistryPath(workDir), UserRegistryPath()} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
