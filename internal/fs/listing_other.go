//go:build !windows

package fs

// skipPlatformEntry is a no-op on non-Windows platforms.
func skipPlatformEntry(_ string) bool {
	return false
}
