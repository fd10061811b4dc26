package defaults

import (
	"encoding/json"
	"io"
)

// NewJSONDecoder returns a Decoder reading JSON from r. A json.Decoder
// satisfies the Decoder interface as-is.
func NewJSONDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}
