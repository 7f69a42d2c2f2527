package document

import (
	"bytes"
	"encoding/json"
	"errors"
)

// RawJSON is a JSON value taken verbatim from an input. It is stored in
// compact form and re-emitted as is, so key order inside user-supplied
// objects survives.
type RawJSON []byte

// CompactJSON validates raw and returns its compact form.
func CompactJSON(raw []byte) (RawJSON, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return RawJSON(buf.Bytes()), nil
}

// MarshalJSON implements json.Marshaler.
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return nil, errors.New("empty raw JSON value")
	}
	return r, nil
}
