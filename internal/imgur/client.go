package imgur

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/VoxelCubes/ChapterUp/internal/imgur/dto"
	"github.com/VoxelCubes/ChapterUp/internal/model"
	"k8s.io/klog/v2"
)

// DefaultBaseURL is the Imgur API root.
const DefaultBaseURL = "https://api.imgur.com"

// Client wraps the two Imgur v3 endpoints chapterup consumes.
//
// The client provides:
//   - Bearer token authentication on every request
//   - 60 second timeout
//   - The error split front-ends rely on: *APIError when Imgur rejects a
//     request, *TransportError when Imgur cannot be reached at all
//
// Example usage:
//
//	client := imgur.NewClient(token)
//
//	data, _ := os.ReadFile("page01.png")
//	result, err := client.UploadImage(ctx, data, "page01.png")
//
//	album, err := client.CreateAlbum(ctx, "Chapter 12", ids, model.PrivacyHidden)
type Client struct {
	// BaseURL is the API root. Tests point it at a stub server.
	BaseURL string

	httpClient *http.Client
	userAgent  string
	token      string
}

// NewClient creates a Client authenticated with the given access token.
func NewClient(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: "chapterup",
		token:     token,
	}
}

// UploadImage posts one image to Imgur and returns its assigned
// identifiers. name is the original filename; its stem doubles as the
// image title and description, which Imgur displays under the image.
//
// The bytes go up as a multipart form. No retry is attempted: a failed
// upload surfaces immediately so the caller can abort the sequence.
func (c *Client) UploadImage(ctx context.Context, image []byte, name string) (*model.UploadResult, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("image", name)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}

	fields := []struct{ field, value string }{
		{"type", "file"},
		{"name", name},
		{"title", stem},
		{"description", stem},
	}
	for _, f := range fields {
		if err := form.WriteField(f.field, f.value); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/3/image", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var decoded dto.ImageResponse
	if err := c.do(req, "upload image", &decoded); err != nil {
		return nil, err
	}

	klog.V(1).Infof("uploaded %s: id=%s", name, decoded.Data.ID)
	return decoded.Data.ToUploadResult(), nil
}

// albumRequest is the JSON body of POST /3/album.
type albumRequest struct {
	IDs         []string `json:"ids"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Privacy     string   `json:"privacy"`
}

// CreateAlbum creates an album containing the given image ids in the
// given order. Imgur has no other ordering mechanism: the ids slice is
// passed through verbatim and becomes the viewing sequence.
func (c *Client) CreateAlbum(ctx context.Context, title string, ids []string, privacy model.Privacy) (*model.Album, error) {
	payload, err := json.Marshal(albumRequest{
		IDs:         ids,
		Title:       title,
		Description: "",
		Privacy:     string(privacy),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/3/album", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var decoded dto.AlbumResponse
	if err := c.do(req, "create album", &decoded); err != nil {
		return nil, err
	}

	klog.V(1).Infof("created album %s with %d images", decoded.Data.ID, len(ids))

	album := decoded.Data.ToAlbum(title, privacy)
	album.ImageIDs = append([]string(nil), ids...)
	return album, nil
}

// do sends the request and decodes the enveloped response into out.
// Non-2xx responses become *APIError; network failures become
// *TransportError tagged with op.
func (c *Client) do(req *http.Request, op string, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)

	klog.V(2).Infof("%s %s", req.Method, req.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    dto.ErrorMessage(body, http.StatusText(resp.StatusCode)),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
