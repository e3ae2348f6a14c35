//go:build windows

package fs

// skipPlatformEntry drops compatibility junctions (system + reparse point),
// which cannot be entered even though they report as directories.
func skipPlatformEntry(fullPath string) bool {
	if fullPath == "" {
		return false
	}

	attrs, err := getFileAttributes(fullPath)
	if err != nil {
		return false
	}

	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}
