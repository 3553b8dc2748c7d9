package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrManifestNotFound is returned when the manifest file does not exist
	ErrManifestNotFound = errors.New("versions file not found")
	// ErrUnsupportedFormat is returned for manifest extensions that have no decoder
	ErrUnsupportedFormat = errors.New("unsupported versions file format")
)

// Format identifies the manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DetectFormat picks the decoder from the file extension. Files without a
// recognised extension are treated as YAML, the format versions.yaml uses.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", "":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Versions, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	v, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return v, nil
}

// Parse decodes manifest content in the given format.
func Parse(data []byte, format Format) (*Versions, error) {
	var v Versions
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &v, nil
}
