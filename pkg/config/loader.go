package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/XuRonTing/ron-fun/pkg/ronerrors"
)

// ErrEmptyDocument is returned when a configuration document holds no YAML node.
var ErrEmptyDocument = errors.New("empty configuration document")

// Load reads a YAML file, substitutes ${VAR} references and decodes it
// strictly into out.
func Load(filePath string, out any) error {
	data, err := ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := Decode(data, out); err != nil {
		var e *ronerrors.Error
		if errors.As(err, &e) {
			e.WithDetail("path", filePath)
		}
		return err
	}
	return nil
}

// ReadFile returns the file content with environment variables substituted.
func ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: operator-supplied config path
	if err != nil {
		return nil, ronerrors.Wrap(err, ronerrors.KindConfigLoad, "failed to read config file").
			WithDetail("path", filePath)
	}
	return []byte(ExpandEnv(string(data))), nil
}

// Decode unmarshals a single YAML document into out. Keys that do not map to
// a field of out are rejected, as are empty documents.
func Decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ronerrors.Wrap(ErrEmptyDocument, ronerrors.KindConfigLoad, "failed to parse YAML")
		}
		return ronerrors.Wrap(err, ronerrors.KindConfigLoad, "failed to parse YAML")
	}
	return nil
}

// Save writes v to filePath as YAML.
func Save(filePath string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return ronerrors.Wrap(err, ronerrors.KindInternal, "failed to marshal YAML")
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil { //nolint:gosec
		return ronerrors.Wrap(err, ronerrors.KindInternal, "failed to write config file").
			WithDetail("path", filePath)
	}
	return nil
}

// ExpandEnv replaces ${VAR_NAME} with the value of the environment variable.
// Unset variables expand to the empty string; a bare $ is left alone so
// values such as regular expressions survive untouched.
func ExpandEnv(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.IndexByte(content[start:], '}')
		if end == -1 {
			break
		}
		end += start

		b.WriteString(content[:start])
		b.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	b.WriteString(content)
	return b.String()
}
