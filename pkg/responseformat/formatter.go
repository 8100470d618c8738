// Package responseformat encodes results as JSON, YAML or MessagePack.
package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v2"
)

// Format names an output encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// ParseFormat accepts a format name, case-insensitively. An empty name is JSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return JSON, nil
	case JSON, YAML, MsgPack:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q: use json, yaml or msgpack", name)
}

// Formatter handles encoding and writing results
type Formatter struct {
	indent bool
}

// NewFormatter creates a new formatter. JSON output is indented when indent is set.
func NewFormatter(indent bool) *Formatter {
	return &Formatter{indent: indent}
}

// Write encodes data to w in the given format
func (f *Formatter) Write(w io.Writer, format Format, data any) error {
	switch format {
	case JSON, "":
		return f.writeJSON(w, data)
	case YAML:
		return f.writeYAML(w, data)
	case MsgPack:
		return f.writeMsgPack(w, data)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

func (f *Formatter) writeYAML(w io.Writer, data any) error {
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
