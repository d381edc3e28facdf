package pinboard

// Post is a bookmark as returned by the Pinboard posts endpoints. Every
// field is a string; "shared" and "toread" carry "yes"/"no".
type Post struct {
	Href        string `json:"href"`
	Description string `json:"description"`
	Extended    string `json:"extended"`
	Meta        string `json:"meta"`
	Hash        string `json:"hash"`
	Time        string `json:"time"`
	Shared      string `json:"shared"`
	ToRead      string `json:"toread"`
	Tags        string `json:"tags"`
}
