package cmd

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesSentinel(t *testing.T) {
	err := ErrWriteConfig.With(slog.String("file", "config.yaml")).Wrap(io.ErrShortWrite)

	assert.ErrorIs(t, err, ErrWriteConfig)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.NotErrorIs(t, err, ErrReadConfig)
	assert.Equal(t, "write configuration file: short write", err.Error())
}

func TestError_WithDoesNotMutate(t *testing.T) {
	base := NewError("base")
	_ = base.With(slog.Int("n", 1))

	assert.Empty(t, base.attrs)
}

func TestError_LogValue(t *testing.T) {
	err := ErrLoadEnv.With(slog.String("file", "env.yaml")).Wrap(errors.New("bad key"))

	got := map[string]string{}
	for _, a := range err.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	assert.Equal(t, map[string]string{
		"error": "load environment",
		"cause": "bad key",
		"file":  "env.yaml",
	}, got)
}
