package model

// UploadResult identifies one uploaded image on Imgur.
//
// Results are collected in upload order; the collected IDs become the
// album's ordered member list.
type UploadResult struct {
	// ID is the image identifier assigned by Imgur.
	ID string

	// DeleteHash permits later deletion of the image.
	DeleteHash string

	// Link is the direct image URL.
	Link string
}
