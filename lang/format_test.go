package lang

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		indent int
		want   string
	}{
		{"expression", "1+2*3", 0, "1 + 2 * 3\n"},
		{"statements inline", "a=1;return a", 0, "a = 1; return a\n"},
		{"statements indented", "a=1;b=a+1;return b;c=3", 2, "a = 1;\nb = a + 1;\nreturn b;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := Format(t.Context(), &buf, NewBuilder().MustParse(tt.input), tt.indent)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_Reparses(t *testing.T) {
	b := NewBuilder()
	e := b.MustParse("a = 2; b = a * 3; return a + b")

	var buf bytes.Buffer
	if err := Format(t.Context(), &buf, e, 4); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	again, err := b.Parse(buf.String())
	if err != nil {
		t.Fatalf("reparse of %q: %v", buf.String(), err)
	}

	if Eval(again) != Eval(e) {
		t.Errorf("reparsed value %v != %v", Eval(again), Eval(e))
	}
}

func TestFormatJSON(t *testing.T) {
	for _, indent := range []int{0, 2} {
		var buf bytes.Buffer

		err := FormatJSON(t.Context(), &buf, NewBuilder().MustParse("-PI"), indent)
		if err != nil {
			t.Fatalf("FormatJSON error: %v", err)
		}

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
		}

		if result["kind"] != KindNegative {
			t.Errorf("kind = %v", result["kind"])
		}

		if indented := strings.Contains(buf.String(), "\n  "); indented != (indent > 0) {
			t.Errorf("indent %d produced:\n%s", indent, buf.String())
		}
	}
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer

	err := FormatYAML(t.Context(), &buf, NewBuilder().MustParse("abs(-1)"), 2)
	if err != nil {
		t.Fatalf("FormatYAML error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"kind: function", "name: abs", "args:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
