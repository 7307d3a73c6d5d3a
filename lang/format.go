package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes e in native expression syntax, followed by a newline.
// With indent > 0, the statements of a [MultiStatement] are written one per
// line.
func Format(_ context.Context, w io.Writer, e Expr, indent int) error {
	m, ok := e.(MultiStatement)
	if !ok || indent <= 0 {
		_, err := fmt.Fprintln(w, e.String())

		return err
	}

	for _, s := range m.Statements {
		line := s.X.String()
		if s.Return {
			line = "return " + line
		}

		if _, err := fmt.Fprintln(w, line+";"); err != nil {
			return err
		}

		if s.Return {
			break
		}
	}

	return nil
}

// FormatJSON writes the tree of e as JSON to the writer.
func FormatJSON(_ context.Context, w io.Writer, e Expr, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(ToMap(e), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = MarshalJSON(e)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the tree of e as YAML to the writer.
func FormatYAML(ctx context.Context, w io.Writer, e Expr, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, ToMap(e), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
