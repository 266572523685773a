package model

// albumURLBase is the public web address prefix for Imgur albums.
const albumURLBase = "https://imgur.com/a/"

// Privacy controls who can view an album on Imgur.
//
// The values are the literal strings the album-creation endpoint accepts.
type Privacy string

const (
	// PrivacyHidden albums are reachable only by their URL and do not
	// appear in any gallery. This is the default.
	PrivacyHidden Privacy = "hidden"

	// PrivacyPublic albums are listed publicly on the uploader's account.
	PrivacyPublic Privacy = "public"
)

// Album represents an ordered image album created on Imgur.
//
// ImageIDs is the exact ordered list the album was created with. Imgur has
// no other notion of sequence, so this list alone determines the order a
// viewer sees.
//
// Example:
//
//	album := &Album{ID: "XYZ", Title: "Demo"}
//	fmt.Println(album.URL()) // https://imgur.com/a/XYZ
type Album struct {
	// ID is the public album identifier assigned by Imgur.
	ID string

	// DeleteHash permits later modification or deletion of the album.
	DeleteHash string

	// Title is the album title, used verbatim.
	Title string

	// Privacy is the visibility the album was created with.
	Privacy Privacy

	// ImageIDs holds the member image identifiers in viewing order.
	ImageIDs []string
}

// URL returns the public web address of the album.
func (a *Album) URL() string {
	return albumURLBase + a.ID
}
