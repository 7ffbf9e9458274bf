package model

import (
	"bytes"
	"strconv"
)

// FlexID is a numeric identifier that the API sometimes encodes as a JSON
// string. Numbers and numeric strings decode to their value; anything else
// (objects, non-numeric strings, null) decodes to zero so callers can treat
// the id as absent instead of failing the whole payload.
type FlexID int64

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			*f = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) Int64() int64 {
	return int64(f)
}
