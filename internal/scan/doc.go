// Package scan enumerates the image files of a directory in upload order.
//
// Enumeration is the first step of every run and decides the one thing the
// tool exists for: the page sequence. Images lists the recognized image
// files (.jpg, .jpeg, .png, .gif, case-insensitive) directly inside a
// directory and sorts them by the chosen policy:
//
//	images, err := scan.Images("/comics/ch12", scan.OrderName)
//
// # Ordering Policies
//
// Three policies are available:
//
//   - OrderName: plain lexical filename order, the default. Works for the
//     usual zero-padded page naming (page01, page02, ...).
//   - OrderNatural: numeric-aware filename order, so page2 sorts before
//     page10 even without padding.
//   - OrderTaken: EXIF capture time when present, file modification time
//     otherwise, filename as the tiebreak. Useful for photo dumps.
//
// # Errors
//
// A missing or non-directory path yields ErrNotFound; a directory without
// a single recognized image yields ErrNoImages. Both are reported before
// any network activity, so a typo never costs an upload.
package scan
