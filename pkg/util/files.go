package util

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// UniqueAssetName builds a collision-free file name for a generated
// asset, e.g. "sfx_1714070400123456.mp3".
func UniqueAssetName(prefix, ext string) string {
	return fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixNano(), ext)
}

// GetExtension returns the file extension
func GetExtension(path string) string {
	return filepath.Ext(path)
}
