package responseformat

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v2"
)

type sample struct {
	OptimalTilt    float64 `json:"optimal_tilt" yaml:"optimal_tilt"`
	OptimalAzimuth float64 `json:"optimal_azimuth" yaml:"optimal_azimuth"`
	Site           string  `json:"site,omitempty" yaml:"site,omitempty"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", JSON, false},
		{"json", JSON, false},
		{"YAML", YAML, false},
		{"yml", YAML, false},
		{" msgpack ", MsgPack, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	in := sample{OptimalTilt: 35, OptimalAzimuth: 180, Site: "barn"}

	tests := []struct {
		format Format
		decode func([]byte, *map[string]any) error
	}{
		{JSON, func(b []byte, m *map[string]any) error { return json.Unmarshal(b, m) }},
		{YAML, func(b []byte, m *map[string]any) error {
			var raw map[string]any
			if err := yaml.Unmarshal(b, &raw); err != nil {
				return err
			}
			*m = raw
			return nil
		}},
		{MsgPack, func(b []byte, m *map[string]any) error { return msgpack.Unmarshal(b, m) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewFormatter(false).Write(&buf, tt.format, in); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			var out map[string]any
			if err := tt.decode(buf.Bytes(), &out); err != nil {
				t.Fatalf("decoding %s output: %v", tt.format, err)
			}
			if out["site"] != "barn" {
				t.Errorf("site = %v, want barn", out["site"])
			}
			if _, ok := out["optimal_azimuth"]; !ok {
				t.Errorf("output keys %v missing optimal_azimuth", out)
			}
		})
	}
}

func TestWriteIndentedJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(true).Write(&buf, JSON, sample{OptimalTilt: 35}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"optimal_tilt\": 35") {
		t.Errorf("indented JSON = %q", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := NewFormatter(false).Write(&bytes.Buffer{}, Format("xml"), sample{}); err == nil {
		t.Error("Write() with unknown format succeeded")
	}
}
