package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// AppFs is the filesystem used for every file lookup the launcher makes.
// Tests swap it for an afero.MemMapFs.
var AppFs afero.Fs = afero.NewOsFs()

// defaultRuntimePaths holds the Docker Desktop launcher location per GOOS.
var defaultRuntimePaths = map[string]string{
	"windows": `C:\Program Files\Docker\Docker\Docker Desktop.exe`,
	"darwin":  "/Applications/Docker.app/Contents/MacOS/Docker",
	"linux":   "/opt/docker-desktop/bin/docker-desktop",
}

// DefaultRuntimePath returns the default Docker Desktop executable for the
// running platform, falling back to the linux location.
func DefaultRuntimePath() string {
	return defaultRuntimePathFor(runtime.GOOS)
}

func defaultRuntimePathFor(goos string) string {
	if p, ok := defaultRuntimePaths[goos]; ok {
		return p
	}
	return defaultRuntimePaths["linux"]
}

// ExecutableExists reports whether path names an existing regular file on AppFs.
// A missing path is not an error; any other stat failure is.
func ExecutableExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := AppFs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error checking executable %s: %w", path, err)
	}
	return !info.IsDir(), nil
}
