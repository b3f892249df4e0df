package portfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a data file format a site generator can read the profile from.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnknownFormat = errors.New("unknown profile format")

// ParseFormat maps a format name or file extension (".yml", "JSON", ...) to a
// Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode serializes p in format f. Field names match the ones the front-end
// templates use (githubUsername, avatarUrl, ...) and empty fields are kept.
func Encode(p Profile, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(p)
	case FormatTOML:
		data, err = toml.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s profile: %w", f, err)
	}
	return data, nil
}

// Decode parses a profile previously written by Encode (or by hand).
func Decode(data []byte, f Format) (Profile, error) {
	var (
		p   Profile
		err error
	)
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("decode %s profile: %w", f, err)
	}
	return p, nil
}
