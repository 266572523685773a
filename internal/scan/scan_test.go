package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VoxelCubes/ChapterUp/internal/model"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func imageNames(images []model.ImageFile) []string {
	names := make([]string, len(images))
	for i, img := range images {
		names[i] = img.Name
	}
	return names
}

func assertNames(t *testing.T, images []model.ImageFile, want []string) {
	t.Helper()
	got := imageNames(images)
	if len(got) != len(want) {
		t.Fatalf("got %d images %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("images[%d] = %q, want %q (full order: %v)", i, got[i], want[i], got)
		}
	}
}

func TestImages_NameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "page02.png", "page00.png", "page01.jpg", "notes.txt", "anim.GIF", "cover.jpeg")
	if err := os.Mkdir(filepath.Join(dir, "extras"), 0755); err != nil {
		t.Fatal(err)
	}

	images, err := Images(dir, OrderName)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}

	assertNames(t, images, []string{"anim.GIF", "cover.jpeg", "page00.png", "page01.jpg", "page02.png"})
}

func TestImages_NaturalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "page10.png", "page2.png", "page1.png")

	images, err := Images(dir, OrderNatural)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}

	assertNames(t, images, []string{"page1.png", "page2.png", "page10.png"})
}

func TestImages_TakenOrderFallsBackToModTime(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.png", "b.png", "c.png")

	// None of these carry EXIF data, so capture order comes from the
	// modification times, which we set opposite to the name order.
	base := time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)
	times := map[string]time.Time{
		"a.png": base.Add(2 * time.Hour),
		"b.png": base.Add(1 * time.Hour),
		"c.png": base,
	}
	for name, mod := range times {
		if err := os.Chtimes(filepath.Join(dir, name), mod, mod); err != nil {
			t.Fatal(err)
		}
	}

	images, err := Images(dir, OrderTaken)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}

	assertNames(t, images, []string{"c.png", "b.png", "a.png"})
}

func TestImages_TakenOrderTiesBreakOnName(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.png", "a.png")

	mod := time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)
	for _, name := range []string{"a.png", "b.png"} {
		if err := os.Chtimes(filepath.Join(dir, name), mod, mod); err != nil {
			t.Fatal(err)
		}
	}

	images, err := Images(dir, OrderTaken)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}

	assertNames(t, images, []string{"a.png", "b.png"})
}

func TestImages_MissingDir(t *testing.T) {
	_, err := Images(filepath.Join(t.TempDir(), "nope"), OrderName)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestImages_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "single.png")

	_, err := Images(filepath.Join(dir, "single.png"), OrderName)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestImages_NoImages(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "notes.txt", "readme.md")

	_, err := Images(dir, OrderName)
	if !errors.Is(err, ErrNoImages) {
		t.Errorf("err = %v, want ErrNoImages", err)
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"page01.png", true},
		{"page01.jpg", true},
		{"page01.jpeg", true},
		{"page01.gif", true},
		{"PAGE01.PNG", true},
		{"page01.webp", false},
		{"page01.txt", false},
		{"page01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImage(tt.name); got != tt.want {
				t.Errorf("IsImage(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    Order
		wantErr bool
	}{
		{"name", OrderName, false},
		{"natural", OrderNatural, false},
		{"taken", OrderTaken, false},
		{"", OrderName, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOrder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
