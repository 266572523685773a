// Package model defines the core data structures used throughout chapterup.
//
// # ImageFile
//
// ImageFile describes one local image that is queued for upload:
//
//	img := model.NewImageFile("/comics/ch12/page03.png", info.Size(), info.ModTime())
//	fmt.Println(img.Name)   // "page03.png"
//	fmt.Println(img.Stem()) // "page03"
//
// The Stem doubles as the uploaded image's title and description, so a
// well-named file reads nicely on Imgur.
//
// # UploadResult
//
// UploadResult identifies an image after Imgur accepted it. Results are
// collected in upload order and their IDs become the album's member list.
//
// # Album
//
// Album is the finished product, an ordered collection with a public URL:
//
//	fmt.Println(album.URL()) // https://imgur.com/a/<id>
//
// The ordering guarantee of the whole tool is visible in these types: the
// enumerated ImageFile sequence, the UploadResult sequence, and
// Album.ImageIDs always share identical order.
package model
