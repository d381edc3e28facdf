package pocket

import "encoding/json"

// Tag is a single entry of an article's tag map.
type Tag struct {
	Tag string `json:"tag"`
}

// Article is an item from the Pocket retrieve endpoint. Only the fields
// needed for filtering and sorting are decoded; the original JSON is kept
// verbatim so nothing Pocket sends is lost when the article is persisted.
type Article struct {
	ItemID        string         `json:"item_id"`
	ResolvedTitle string         `json:"resolved_title"`
	ResolvedURL   string         `json:"resolved_url"`
	TimeAdded     string         `json:"time_added"`
	TimeRead      string         `json:"time_read"`
	TimeCreated   string         `json:"time_created"`
	Tags          map[string]Tag `json:"tags"`

	raw json.RawMessage
}

func (a *Article) UnmarshalJSON(data []byte) error {
	type alias Article
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*a = Article(decoded)
	a.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (a Article) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}
	type alias Article
	return json.Marshal(alias(a))
}

// HasTag reports whether the article carries a tag with the exact name.
func (a *Article) HasTag(name string) bool {
	for _, t := range a.Tags {
		if t.Tag == name {
			return true
		}
	}
	return false
}
