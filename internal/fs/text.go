package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// probeChunkSize is the read size used when probing a file for UTF-8.
const probeChunkSize = 128

// IsValidUTF8 reports whether the file at path is entirely valid UTF-8.
// An empty file counts as text.
func IsValidUTF8(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	ok, err := ProbeUTF8(f)
	if err != nil {
		return false, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return ok, nil
}

// ProbeUTF8 streams r in fixed chunks and stops at the first malformed
// sequence. A multi-byte rune split across two reads is carried over to the
// next read instead of being rejected.
func ProbeUTF8(r io.Reader) (bool, error) {
	var buf [probeChunkSize]byte
	pending := 0

	for {
		n, err := r.Read(buf[pending:])
		if n > 0 {
			total := pending + n
			incomplete, ok := trailingIncomplete(buf[:total])
			if !ok {
				return false, nil
			}
			pending = copy(buf[:], buf[total-incomplete:total])
		}

		if errors.Is(err, io.EOF) {
			return pending == 0, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// trailingIncomplete validates p and returns the length of a trailing
// partial rune, if any. ok is false when p holds a malformed sequence.
func trailingIncomplete(p []byte) (int, bool) {
	for i := 0; i < len(p); {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		rest := p[i:]
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(rest) {
				return len(rest), true
			}
			return 0, false
		}
		i += size
	}
	return 0, true
}
