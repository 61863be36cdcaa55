package repository

import (
	json "github.com/goccy/go-json"
)

// decodeList decodes a JSON-encoded string list column. Empty, NULL-ish
// and malformed values all decode to nil: stored garbage must never abort
// a read path, the record simply loses that fragment.
func decodeList(raw string) []string {
	if raw == "" || raw == "null" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// encodeList encodes a string list for storage. A nil slice encodes as an
// empty JSON array so the column stays non-NULL and round-trips cleanly.
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
