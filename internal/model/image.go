package model

import (
	"path/filepath"
	"strings"
	"time"
)

// ImageFile is one local image queued for upload.
//
// ImageFile values are created during enumeration and never modified
// afterwards; the enumerated sequence is the upload sequence. The only
// exception is TakenAt, which the enumerator fills in before sorting
// when the capture-time ordering policy is active.
//
// Example:
//
//	img := NewImageFile("/comics/ch12/page03.png", info.Size(), info.ModTime())
//	// img.Name = "page03.png"
//	// img.Stem() = "page03"
type ImageFile struct {
	// Path is the absolute or caller-relative location on disk.
	Path string

	// Name is the display name shown in listings and progress output.
	// Always the basename of Path.
	Name string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the file's modification time.
	ModTime time.Time

	// TakenAt is the EXIF capture time. Zero unless the capture-time
	// ordering policy resolved one (falling back to ModTime).
	TakenAt time.Time
}

// NewImageFile creates an ImageFile with its display name derived from path.
func NewImageFile(path string, size int64, modTime time.Time) ImageFile {
	return ImageFile{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    size,
		ModTime: modTime,
	}
}

// Stem returns the display name without its extension. Imgur shows it as
// the per-image title, so "page03.png" appears as "page03".
func (f ImageFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}
