package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// plain strips ANSI color sequences.
func plain(s string) string {
	for _, c := range []string{
		colorReset, colorGray, colorRed, colorGreen,
		colorYellow, colorBlue, colorMagenta, colorCyan,
	} {
		s = strings.ReplaceAll(s, c, "")
	}

	return s
}

func prettyLogger(buf *bytes.Buffer, format Format) Logger {
	return Make(buf,
		WithPretty(true),
		WithFormat(format),
		WithLevel(LevelTrace),
		WithTimeLayout("none"),
	)
}

func TestPretty_Text(t *testing.T) {
	var buf bytes.Buffer

	prettyLogger(&buf, FormatText).Trace("parse",
		slog.String("source", "1 + 2"),
		slog.Int("token_count", 3),
		slog.Bool("cache_hit", false),
	)

	got := plain(buf.String())
	want := "level=TRACE msg=parse source=1 + 2 token_count=3 cache_hit=false\n"

	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	if !strings.Contains(buf.String(), colorBlue+"TRACE") {
		t.Errorf("trace level not colored: %q", buf.String())
	}
}

func TestPretty_Block(t *testing.T) {
	var buf bytes.Buffer

	prettyLogger(&buf, FormatJSON).Error("eval", slog.Float64("result", 1.5))

	got := plain(buf.String())
	want := "{\n  level: ERROR,\n  msg: eval,\n  result: 1.5\n}\n"

	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPretty_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer

	l := prettyLogger(&buf, FormatText).With(slog.String("component", "repl"))
	l.Logger = l.Logger.WithGroup("req")

	l.Info("line", slog.Group("pos", slog.Int("col", 4)), slog.String("id", "7"))

	got := plain(buf.String())
	for _, want := range []string{"component=repl", "req.pos.col=4", "req.id=7"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q: %q", want, got)
		}
	}
}

type valuer struct{}

func (valuer) LogValue() slog.Value {
	return slog.GroupValue(slog.String("error", "bad"), slog.String("symbol", "1x"))
}

func TestPretty_ResolvesLogValuer(t *testing.T) {
	var buf bytes.Buffer

	prettyLogger(&buf, FormatText).Warn("parse failed",
		slog.Any("error", valuer{}),
		slog.Any("cause", errors.New("eof")),
	)

	got := plain(buf.String())
	for _, want := range []string{"error.error=bad", "error.symbol=1x", "cause=eof"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q: %q", want, got)
		}
	}
}

func TestPretty_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithPretty(true), WithLevel(LevelWarn)).Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("output = %q", buf.String())
	}
}
