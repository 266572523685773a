package upload

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/VoxelCubes/ChapterUp/internal/model"
	"github.com/VoxelCubes/ChapterUp/internal/scan"
	"k8s.io/klog/v2"
)

// ErrAborted is returned when the user declines the confirmation gate.
// It is a clean cancellation, not a failure; front-ends exit zero on it.
var ErrAborted = errors.New("aborted by user")

// Stage identifies a point in the upload sequence.
type Stage int

const (
	StageScanning Stage = iota
	StageConfirming
	StageUploading
	StageUploaded
	StageCreatingAlbum
	StageDone
	StageAborted
	StageFailed
)

// Event is one progress notification from the Runner. Front-ends render
// these instead of reaching into the sequence; tests assert on them.
type Event struct {
	Stage Stage

	// Image, Index and Total are set for StageUploading and
	// StageUploaded. Index counts from zero in upload order.
	Image model.ImageFile
	Index int
	Total int

	// Result is set for StageUploaded.
	Result *model.UploadResult

	// Album is set for StageDone.
	Album *model.Album

	// Err is set for StageFailed.
	Err error
}

// Service is the remote side the Runner drives. *imgur.Client implements
// it; tests substitute a recording fake.
type Service interface {
	UploadImage(ctx context.Context, image []byte, name string) (*model.UploadResult, error)
	CreateAlbum(ctx context.Context, title string, ids []string, privacy model.Privacy) (*model.Album, error)
}

// ConfirmFunc shows the planned sequence and reports whether the user
// wants to proceed. Returning false aborts the run before any network
// call.
type ConfirmFunc func(images []model.ImageFile) (bool, error)

// Request describes one upload run.
type Request struct {
	// Dir is the directory whose images are uploaded.
	Dir string

	// Title is the album title, used verbatim.
	Title string

	// Order selects the upload sequence.
	Order scan.Order

	// Privacy is the visibility of the created album. Empty means
	// hidden.
	Privacy model.Privacy
}

// Runner drives one upload run end to end: enumerate, confirm, upload
// each image, create the album.
//
// Uploads are issued strictly one at a time in enumeration order, and
// the collected image ids are handed to CreateAlbum unmodified. That
// hand-off is the ordering guarantee the whole tool exists for, so the
// Runner never reorders, batches, or parallelizes. The first error ends
// the run; images uploaded before the failure stay behind on the
// service without an album.
type Runner struct {
	service Service
	confirm ConfirmFunc
	onEvent func(Event)
}

// NewRunner creates a Runner. confirm gates the run after enumeration;
// onEvent, when non-nil, observes every stage change.
func NewRunner(service Service, confirm ConfirmFunc, onEvent func(Event)) *Runner {
	return &Runner{
		service: service,
		confirm: confirm,
		onEvent: onEvent,
	}
}

// Run executes one upload run and returns the created album.
//
// It returns ErrAborted when the user declines, the scan error unchanged
// when enumeration fails, and the first upload or album-creation error
// otherwise.
func (r *Runner) Run(ctx context.Context, req Request) (*model.Album, error) {
	if req.Privacy == "" {
		req.Privacy = model.PrivacyHidden
	}

	r.emit(Event{Stage: StageScanning})
	images, err := scan.Images(req.Dir, req.Order)
	if err != nil {
		return nil, r.fail(err)
	}
	klog.V(1).Infof("found %d images in %s", len(images), req.Dir)

	r.emit(Event{Stage: StageConfirming, Total: len(images)})
	ok, err := r.confirm(images)
	if err != nil {
		return nil, r.fail(err)
	}
	if !ok {
		klog.V(1).Info("upload declined")
		r.emit(Event{Stage: StageAborted})
		return nil, ErrAborted
	}

	ids := make([]string, 0, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, r.fail(err)
		}

		r.emit(Event{Stage: StageUploading, Image: img, Index: i, Total: len(images)})

		data, err := os.ReadFile(img.Path)
		if err != nil {
			return nil, r.fail(fmt.Errorf("read %s: %w", img.Path, err))
		}

		result, err := r.service.UploadImage(ctx, data, img.Name)
		if err != nil {
			return nil, r.fail(fmt.Errorf("upload %s: %w", img.Name, err))
		}

		ids = append(ids, result.ID)
		r.emit(Event{Stage: StageUploaded, Image: img, Index: i, Total: len(images), Result: result})
	}

	r.emit(Event{Stage: StageCreatingAlbum, Total: len(images)})
	album, err := r.service.CreateAlbum(ctx, req.Title, ids, req.Privacy)
	if err != nil {
		return nil, r.fail(fmt.Errorf("create album: %w", err))
	}

	r.emit(Event{Stage: StageDone, Album: album})
	return album, nil
}

// fail reports err through the event stream and hands it back.
func (r *Runner) fail(err error) error {
	r.emit(Event{Stage: StageFailed, Err: err})
	return err
}

func (r *Runner) emit(event Event) {
	if r.onEvent != nil {
		r.onEvent(event)
	}
}
