package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/VoxelCubes/ChapterUp/internal/model"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// ErrNotFound is returned when the target path is missing or not a directory.
var ErrNotFound = errors.New("directory not found")

// ErrNoImages is returned when the directory holds no recognized image files.
var ErrNoImages = errors.New("no images found")

// imageExts lists the recognized image file extensions.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsImage reports whether the filename carries a recognized image
// extension. The check is case-insensitive, so PAGE01.PNG qualifies.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Images lists the image files directly inside dir, sorted by order.
//
// Subdirectories and files without a recognized image extension are
// skipped silently. Returns ErrNotFound when dir is missing or not a
// directory and ErrNoImages when nothing qualifies; both surface before
// any image content is read.
func Images(dir string, order Order) ([]model.ImageFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	klog.V(1).Infof("scanning %s: %d entries", dir, len(names))

	var images []model.ImageFile
	for _, name := range names {
		if !IsImage(name) {
			klog.V(2).Infof("skipping %s: not a recognized image", name)
			continue
		}

		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if fi.IsDir() {
			continue
		}

		images = append(images, model.NewImageFile(path, fi.Size(), fi.ModTime()))
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}

	sortImages(images, order)
	return images, nil
}
