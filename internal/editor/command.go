// Package editor builds external editor invocations and launches them.
package editor

import homedir "github.com/mitchellh/go-homedir"

// Placeholder marks where the target file path is substituted.
const Placeholder = "$f"

// Expand substitutes path for every Placeholder token in template. Other
// tokens pass through unchanged and the path is never appended when the
// template has no placeholder. The result is nil for an empty template.
func Expand(template []string, path string) []string {
	if len(template) == 0 {
		return nil
	}

	args := make([]string, len(template))
	for i, part := range template {
		if part == Placeholder {
			args[i] = path
			continue
		}
		args[i] = part
	}
	return args
}

// resolveExecutable expands a leading ~ in the executable token.
func resolveExecutable(name string) string {
	expanded, err := homedir.Expand(name)
	if err != nil {
		return name
	}
	return expanded
}
