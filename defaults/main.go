package defaults

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Decoder interface {
	Decode(value any) error
	DisallowUnknownFields()
}

type DecoderFactory func(r io.Reader) Decoder

// ReadFrom reads a file from the given path and decodes it into the given
// value, choosing the decoder from the file extension. JSON, TOML and YAML
// are supported.
func ReadFrom(path, fallbackPath string, value any) error {
	name := path
	if name == "" {
		name = fallbackPath
	}

	switch filepath.Ext(name) {
	case ".json":
		return readFromFile(NewJSONDecoder, path, fallbackPath, value)
	case ".toml":
		return readFromFile(NewTOMLDecoder, path, fallbackPath, value)
	case ".yaml", ".yml":
		return readFromFile(NewYAMLDecoder, path, fallbackPath, value)
	}

	return fmt.Errorf("unsupported file format: %s", filepath.Ext(name))
}

// readFromFile reads a configuration file to the value.
// This function will try to read from given path, if it is empty will try
// fallback path. If the fallback doesn't exist either, the value is left
// at its defaults.
func readFromFile(dFactory DecoderFactory, path, fallbackPath string, value any) error {
	if err := Set(value); err != nil {
		return err
	}

	if path != "" {
		if err := read(dFactory, path, value); err != nil {
			return fmt.Errorf("failed to read from path %s: %w", path, err)
		}
		return nil
	}

	// If the fallback path doesn't exist, return.
	if _, err := os.Stat(fallbackPath); err != nil && os.IsNotExist(err) {
		return nil
	}

	if err := read(dFactory, fallbackPath, value); err != nil {
		return fmt.Errorf("failed to read from fallback path %s: %w", fallbackPath, err)
	}

	return nil
}

// read reads a file to the value using the provided decoder
func read(decoderFactory DecoderFactory, path string, value any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	dec := decoderFactory(file)
	dec.DisallowUnknownFields()
	err = dec.Decode(value)
	if err != nil {
		return fmt.Errorf("could not decode file: %w", err)
	}

	return nil
}
