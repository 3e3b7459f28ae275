// ABOUTME: Reference field that arrives either populated or as a bare id
// ABOUTME: Always encodes back to the bare id the API expects on writes

package catalog

import (
	"bytes"
	"encoding/json"
)

// Ref points at another document. The API sends it populated
// ({"_id": "...", "name": "..."}) or as an id string depending on the endpoint.
type Ref struct {
	ID    string
	Name  string
	Label string
}

// RefTo returns a Ref holding only an id
func RefTo(id string) Ref {
	return Ref{ID: id}
}

// IsZero reports whether the reference is unset
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// Display returns the best human-readable name for the reference
func (r Ref) Display() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Label != "":
		return r.Label
	case r.ID != "":
		return r.ID
	default:
		return "N/A"
	}
}

// UnmarshalJSON accepts null, an id string, or a populated object
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	var obj struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Ref{ID: obj.ID, Name: obj.Name, Label: obj.Label}
	return nil
}

// MarshalJSON writes the id, or null when unset
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
