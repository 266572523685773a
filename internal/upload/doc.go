// Package upload orchestrates the whole run: scan, confirm, upload each
// image in order, create the album.
//
// # Basic Usage
//
//	runner := upload.NewRunner(client, confirmFn, onEvent)
//	album, err := runner.Run(ctx, upload.Request{
//	    Dir:   "/comics/ch12",
//	    Title: "Chapter 12",
//	    Order: scan.OrderName,
//	})
//
// # Sequence
//
// A run moves through fixed stages: Scanning, Confirming, then for every
// image Uploading and Uploaded, then CreatingAlbum and Done. Declining
// the confirmation yields StageAborted and ErrAborted; any failure
// yields StageFailed and the error.
//
// Uploads are strictly sequential. The page order a reader sees on Imgur
// is exactly the enumeration order, because the collected image ids go
// to album creation untouched.
//
// # Progress Reporting
//
// The Runner is headless. Front-ends pass an event callback and render
// stages however they like; the callback runs on the Runner's goroutine,
// so it must not block for long:
//
//	onEvent := func(ev upload.Event) {
//	    switch ev.Stage {
//	    case upload.StageUploaded:
//	        fmt.Printf("%d/%d %s\n", ev.Index+1, ev.Total, ev.Image.Name)
//	    }
//	}
//
// # Failure Semantics
//
// The first error stops the run before the next network call. There is
// no retry and no rollback: images uploaded before the failure remain on
// the service, but no album is created for a partial sequence.
package upload
