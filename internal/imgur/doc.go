// Package imgur provides the HTTP client for the Imgur v3 API.
//
// Only the two endpoints chapterup needs are covered: image upload and
// album creation.
//
// # Features
//
//   - Bearer token authentication on every request
//   - 60 second timeout per request
//   - Context support for cancellation
//   - Typed errors: *APIError for rejected requests, *TransportError for
//     network failures
//
// # Usage
//
//	client := imgur.NewClient(accessToken)
//
//	data, err := os.ReadFile("page01.png")
//	result, err := client.UploadImage(ctx, data, "page01.png")
//	// result.ID feeds the album's ordered id list
//
//	album, err := client.CreateAlbum(ctx, "Chapter 12", ids, model.PrivacyHidden)
//	fmt.Println(album.URL())
//
// # Ordering
//
// CreateAlbum passes the id slice through verbatim. Imgur shows album
// members exactly in that order, which is how the tool's page-order
// guarantee reaches the service.
//
// # Errors
//
// Use errors.As to branch on failure class:
//
//	var apiErr *imgur.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == 403 {
//	    // bad or expired token
//	}
//
// Neither error type ever includes the access token.
package imgur
