package filesum

import (
	"path/filepath"
	"strings"
	"time"
)

// NoExtension is the extension recorded for files without a suffix.
const NoExtension = "none"

// FileRecord holds the metadata collected for a single regular file.
type FileRecord struct {
	// Path is the walked path of the file.
	Path string
	// Extension is the suffix after the last dot, or NoExtension.
	Extension string
	// Size is the size in bytes.
	Size int64
	// ModTime is the last modification time.
	ModTime time.Time
}

// Name returns the base name of the file.
func (r FileRecord) Name() string {
	return filepath.Base(r.Path)
}

// Extension returns the suffix of name after its last dot, without the dot.
// Leading dots do not start an extension, so ".hidden" has none. Case is
// preserved. An empty suffix yields NoExtension.
func Extension(name string) string {
	name = filepath.Base(name)
	stem := strings.TrimLeft(name, ".")

	idx := strings.LastIndexByte(stem, '.')
	if idx < 0 || idx == len(stem)-1 {
		return NoExtension
	}

	return stem[idx+1:]
}
