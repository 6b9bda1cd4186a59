package algolia

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// response mirrors the subset of the search response we use.
// Hits stays raw so a missing or non-array value can be told apart.
type response struct {
	Hits   json.RawMessage `json:"hits"`
	NbHits int             `json:"nbHits"`
}

// hit is a single search result.
type hit struct {
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Author      string          `json:"author"`
	Points      int             `json:"points"`
	NumComments int             `json:"num_comments"`
	ObjectID    json.RawMessage `json:"objectID"`
}

// decodeHits parses body into items. Hits without an objectID are dropped.
func decodeHits(body []byte) ([]domain.Item, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	raw := bytes.TrimSpace(resp.Hits)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: no hits array", domain.ErrMalformedResponse)
	}

	var hits []hit
	if err := json.Unmarshal(raw, &hits); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	items := make([]domain.Item, 0, len(hits))
	for _, h := range hits {
		id, ok := objectID(h.ObjectID)
		if !ok {
			continue
		}
		items = append(items, h.toItem(id))
	}
	return items, nil
}

func (h hit) toItem(id string) domain.Item {
	comments := h.NumComments
	if comments < 0 {
		comments = 0
	}
	return domain.Item{
		Title:       h.Title,
		URL:         h.URL,
		Author:      h.Author,
		NumComments: comments,
		Points:      h.Points,
		ObjectID:    id,
	}
}

// objectID renders a string or numeric ID as text.
func objectID(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, s != ""
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil && n != "" {
		return n.String(), true
	}
	return "", false
}
