//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// getFileAttributes resolves Windows file attributes for path.
func getFileAttributes(path string) (uint32, error) {
	if path == "" {
		return 0, os.ErrInvalid
	}

	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return syscall.GetFileAttributes(ptr)
}
