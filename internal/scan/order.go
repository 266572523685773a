package scan

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/VoxelCubes/ChapterUp/internal/model"
	"github.com/facette/natsort"
	"github.com/rwcarlsen/goexif/exif"
	"k8s.io/klog/v2"
)

// Order selects how enumerated images are sequenced for upload.
type Order string

const (
	// OrderName sorts by filename, plain lexical. Zero-padded page
	// numbers come out right. This is the default.
	OrderName Order = "name"

	// OrderNatural sorts by filename with numeric awareness, so
	// page2.png precedes page10.png.
	OrderNatural Order = "natural"

	// OrderTaken sorts by EXIF capture time, falling back to file
	// modification time, with the filename breaking ties.
	OrderTaken Order = "taken"
)

// ParseOrder converts a flag value into an Order. The empty string
// means OrderName.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderName, OrderNatural, OrderTaken:
		return Order(s), nil
	case "":
		return OrderName, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want name, natural, or taken)", s)
}

// sortImages orders images in place according to order.
func sortImages(images []model.ImageFile, order Order) {
	switch order {
	case OrderNatural:
		sort.SliceStable(images, func(i, j int) bool {
			return natsort.Compare(images[i].Name, images[j].Name)
		})
	case OrderTaken:
		for i := range images {
			images[i].TakenAt = takenTime(images[i])
		}
		sort.SliceStable(images, func(i, j int) bool {
			if images[i].TakenAt.Equal(images[j].TakenAt) {
				return images[i].Name < images[j].Name
			}
			return images[i].TakenAt.Before(images[j].TakenAt)
		})
	default:
		sort.SliceStable(images, func(i, j int) bool {
			return images[i].Name < images[j].Name
		})
	}
}

// takenTime extracts the EXIF capture date, falling back to the file
// modification time when the file carries no usable EXIF block. PNG and
// GIF files rarely do, so the fallback is the common path.
func takenTime(img model.ImageFile) time.Time {
	f, err := os.Open(img.Path)
	if err != nil {
		return img.ModTime
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		klog.V(2).Infof("no EXIF data in %s: %v", img.Name, err)
		return img.ModTime
	}

	taken, err := x.DateTime()
	if err != nil {
		klog.V(2).Infof("no EXIF date in %s: %v", img.Name, err)
		return img.ModTime
	}

	return taken
}
