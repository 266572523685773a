package dto

import (
	"encoding/json"

	"github.com/VoxelCubes/ChapterUp/internal/model"
)

// ImageResponse is the decoded body of a successful POST /3/image. Like
// every v3 response, the payload sits inside a standard envelope with
// success and status fields.
type ImageResponse struct {
	Data    ImageData `json:"data"`
	Success bool      `json:"success"`
	Status  int       `json:"status"`
}

// ImageData carries the identifiers Imgur assigned to an uploaded image.
type ImageData struct {
	ID         string `json:"id"`
	DeleteHash string `json:"deletehash"`
	Link       string `json:"link"`
}

// ToUploadResult converts the wire data to a model.UploadResult.
func (d ImageData) ToUploadResult() *model.UploadResult {
	return &model.UploadResult{
		ID:         d.ID,
		DeleteHash: d.DeleteHash,
		Link:       d.Link,
	}
}

// AlbumResponse is the decoded body of a successful POST /3/album.
type AlbumResponse struct {
	Data    AlbumData `json:"data"`
	Success bool      `json:"success"`
	Status  int       `json:"status"`
}

// AlbumData carries the identifiers Imgur assigned to a created album.
type AlbumData struct {
	ID         string `json:"id"`
	DeleteHash string `json:"deletehash"`
}

// ToAlbum converts the wire data to a model.Album. The caller fills in
// the ordered image ids the album was created with.
func (d AlbumData) ToAlbum(title string, privacy model.Privacy) *model.Album {
	return &model.Album{
		ID:         d.ID,
		DeleteHash: d.DeleteHash,
		Title:      title,
		Privacy:    privacy,
	}
}

// errorBody mirrors the envelope of a failed request. Imgur is not
// consistent about the payload: data.error is usually a plain string,
// but some endpoints return an object with a message field.
type errorBody struct {
	Data struct {
		Error errorDetail `json:"error"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

type errorDetail struct {
	Message string
}

// UnmarshalJSON accepts both error forms: "..." and {"message": "..."}.
func (d *errorDetail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Message = s
		return nil
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	d.Message = obj.Message
	return nil
}

// ErrorMessage extracts the service's error message from a failed
// response body, returning fallback when none can be found.
func ErrorMessage(body []byte, fallback string) string {
	var decoded errorBody
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fallback
	}
	if decoded.Data.Error.Message == "" {
		return fallback
	}
	return decoded.Data.Error.Message
}
