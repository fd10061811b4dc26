package defaults

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLDecoder struct {
	dec *yaml.Decoder
}

// DisallowUnknownFields maps to yaml.Decoder's KnownFields mode.
func (d *YAMLDecoder) DisallowUnknownFields() {
	d.dec.KnownFields(true)
}

func (d *YAMLDecoder) Decode(value any) error {
	err := d.dec.Decode(value)
	// An empty document is not an error, the value keeps its defaults.
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func NewYAMLDecoder(r io.Reader) Decoder {
	return &YAMLDecoder{
		dec: yaml.NewDecoder(r),
	}
}
