package domain

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Cursor marks the last row of a page in the (start_at, id) ordering.
// StartAt is kept as the ISO 8601 text it was encoded with so that decoding is lossless.
type Cursor struct {
	StartAt string `json:"startAt"`
	ID      string `json:"id"`
}

// CursorFor builds the cursor for a row.
func CursorFor(startAt time.Time, id string) Cursor {
	return Cursor{StartAt: startAt.UTC().Format(time.RFC3339Nano), ID: id}
}

// cursorTimeLayouts are the ISO 8601 date-time forms accepted in StartAt. Every form carries
// an offset or Z; the offset may be written with or without a colon, and seconds may be omitted.
var cursorTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05.999999999Z07",
}

// Time parses StartAt. Cursors returned by DecodeCursor always parse.
func (c Cursor) Time() (time.Time, error) {
	var firstErr error
	for _, layout := range cursorTimeLayouts {
		t, err := time.Parse(layout, c.StartAt)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// EncodeCursor serializes c as URL-safe base64 JSON without padding. DecodeCursor returns c
// unchanged whenever StartAt is an ISO 8601 date-time with an offset and ID is non-empty.
func EncodeCursor(c Cursor) string {
	// Marshalling two strings cannot fail.
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

type wireCursor struct {
	StartAt *string `json:"startAt"`
	ID      *string `json:"id"`
}

// DecodeCursor reverses EncodeCursor. Padded input is accepted. It reports false for anything
// that is not a well-formed cursor: bad base64, bad JSON, missing or non-string fields, empty
// values, or a startAt that is not an ISO 8601 date-time with an offset.
func DecodeCursor(s string) (Cursor, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), "=")
	if s == "" {
		return Cursor{}, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, false
	}
	var w wireCursor
	if err := json.Unmarshal(raw, &w); err != nil {
		return Cursor{}, false
	}
	if w.StartAt == nil || w.ID == nil || *w.StartAt == "" || *w.ID == "" {
		return Cursor{}, false
	}
	c := Cursor{StartAt: *w.StartAt, ID: *w.ID}
	if _, err := c.Time(); err != nil {
		return Cursor{}, false
	}
	return c, true
}
