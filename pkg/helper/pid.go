package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPIDPath is used when no usable location is given
const DefaultPIDPath = "/var/run/inventory.pid"

// GetPIDPath resolves where the server writes its PID file.
//
// Priority:
// 1. If filename is an absolute path, return it directly.
// 2. ./{filename} when the parent directory exists
// 3. Otherwise, fallback to DefaultPIDPath
func GetPIDPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	if local := localPIDPath(filename); local != "" {
		return local
	}
	return DefaultPIDPath
}

func localPIDPath(filename string) string {
	if filename == "" {
		return ""
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return ""
	}
	if _, err := os.Stat(filepath.Dir(absPath)); err != nil {
		return ""
	}
	return absPath
}

// WritePID writes the current process id to path and returns a func that removes it
func WritePID(path string) (func() error, error) {
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0644); err != nil {
		return nil, fmt.Errorf("failed to write pid file: %w", err)
	}
	return func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}, nil
}
