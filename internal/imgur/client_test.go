package imgur

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VoxelCubes/ChapterUp/internal/model"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.BaseURL = server.URL
	return client
}

func TestClient_UploadImage(t *testing.T) {
	var (
		gotMethod, gotPath, gotAuth string
		gotFields                   map[string]string
		gotImage                    []byte
	)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotFields = map[string]string{
			"type":        r.FormValue("type"),
			"name":        r.FormValue("name"),
			"title":       r.FormValue("title"),
			"description": r.FormValue("description"),
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotImage, _ = io.ReadAll(file)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"id":"abc123","deletehash":"d3adb33f","link":"https://i.imgur.com/abc123.png"},"success":true,"status":200}`)
	}))

	result, err := client.UploadImage(context.Background(), []byte("png-bytes"), "page03.png")
	if err != nil {
		t.Fatalf("UploadImage returned error: %v", err)
	}

	if result.ID != "abc123" {
		t.Errorf("ID = %q, want %q", result.ID, "abc123")
	}
	if result.DeleteHash != "d3adb33f" {
		t.Errorf("DeleteHash = %q, want %q", result.DeleteHash, "d3adb33f")
	}
	if result.Link != "https://i.imgur.com/abc123.png" {
		t.Errorf("Link = %q, want %q", result.Link, "https://i.imgur.com/abc123.png")
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/3/image" {
		t.Errorf("path = %s, want /3/image", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
	if string(gotImage) != "png-bytes" {
		t.Errorf("image payload = %q, want %q", gotImage, "png-bytes")
	}

	wantFields := map[string]string{
		"type":        "file",
		"name":        "page03.png",
		"title":       "page03",
		"description": "page03",
	}
	for field, want := range wantFields {
		if gotFields[field] != want {
			t.Errorf("form field %s = %q, want %q", field, gotFields[field], want)
		}
	}
}

func TestClient_UploadImage_APIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "string error",
			status:      http.StatusBadRequest,
			body:        `{"data":{"error":"Invalid image"},"success":false,"status":400}`,
			wantMessage: "Invalid image",
		},
		{
			name:        "object error",
			status:      http.StatusUnauthorized,
			body:        `{"data":{"error":{"code":401,"message":"The access token is invalid"}},"success":false,"status":401}`,
			wantMessage: "The access token is invalid",
		},
		{
			name:        "empty body falls back to status text",
			status:      http.StatusServiceUnavailable,
			body:        "",
			wantMessage: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))

			_, err := client.UploadImage(context.Background(), []byte("x"), "page.png")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClient_CreateAlbum(t *testing.T) {
	var (
		gotPath, gotAuth, gotContentType string
		gotBody                          struct {
			IDs         []string `json:"ids"`
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Privacy     string   `json:"privacy"`
		}
	)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"id":"ALBUM1","deletehash":"albumdel"},"success":true,"status":200}`)
	}))

	ids := []string{"first", "second", "third"}
	album, err := client.CreateAlbum(context.Background(), "Chapter 12", ids, model.PrivacyHidden)
	if err != nil {
		t.Fatalf("CreateAlbum returned error: %v", err)
	}

	if album.ID != "ALBUM1" {
		t.Errorf("ID = %q, want %q", album.ID, "ALBUM1")
	}
	if album.DeleteHash != "albumdel" {
		t.Errorf("DeleteHash = %q, want %q", album.DeleteHash, "albumdel")
	}
	if album.Title != "Chapter 12" {
		t.Errorf("Title = %q, want %q", album.Title, "Chapter 12")
	}
	if album.Privacy != model.PrivacyHidden {
		t.Errorf("Privacy = %q, want %q", album.Privacy, model.PrivacyHidden)
	}
	if album.URL() != "https://imgur.com/a/ALBUM1" {
		t.Errorf("URL() = %q, want %q", album.URL(), "https://imgur.com/a/ALBUM1")
	}

	if gotPath != "/3/album" {
		t.Errorf("path = %s, want /3/album", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
	if gotBody.Title != "Chapter 12" {
		t.Errorf("request title = %q, want %q", gotBody.Title, "Chapter 12")
	}
	if gotBody.Privacy != "hidden" {
		t.Errorf("request privacy = %q, want %q", gotBody.Privacy, "hidden")
	}

	// Order must survive both directions.
	if len(gotBody.IDs) != 3 || gotBody.IDs[0] != "first" || gotBody.IDs[1] != "second" || gotBody.IDs[2] != "third" {
		t.Errorf("request ids = %v, want %v", gotBody.IDs, ids)
	}
	if len(album.ImageIDs) != 3 || album.ImageIDs[0] != "first" || album.ImageIDs[1] != "second" || album.ImageIDs[2] != "third" {
		t.Errorf("album.ImageIDs = %v, want %v", album.ImageIDs, ids)
	}
}

func TestClient_CreateAlbum_APIError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"data":{"error":"Forbidden"},"success":false,"status":403}`)
	}))

	_, err := client.CreateAlbum(context.Background(), "Nope", []string{"a"}, model.PrivacyPublic)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusForbidden)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("test-token")
	client.BaseURL = server.URL
	server.Close() // nothing is listening anymore

	_, err := client.UploadImage(context.Background(), []byte("x"), "page.png")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if transportErr.Op != "upload image" {
		t.Errorf("Op = %q, want %q", transportErr.Op, "upload image")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.UploadImage(ctx, []byte("x"), "page.png")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled in chain", err)
	}
}
