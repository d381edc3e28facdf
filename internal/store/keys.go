package store

// Key namespace shared by the workers (writers) and services (readers).
// Payload keys are only ever written together with their lastUpdated key.
const (
	KeyLastfmLastUpdated = "lastfm:lastUpdated"
	KeyLastfmTracks      = "lastfm:tracks"

	KeyPinboardLastUpdated = "pinboard:lastUpdated"
	KeyPinboardPosts       = "pinboard:posts"

	KeyPocketAuthorization = "pocket:authorization"
	KeyPocketArticles      = "pocket:articles"
)
