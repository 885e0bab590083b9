package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"example.com/office/config"
	"example.com/office/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseFrame(t *testing.T) {
	keys, repeat, err := parseFrame("d d x30")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "d"}, keys)
	assert.Equal(t, 30, repeat)

	keys, repeat, err = parseFrame("space")
	require.NoError(t, err)
	assert.Equal(t, []string{"space"}, keys)
	assert.Equal(t, 1, repeat)

	// a lone x is a key, not a repeat
	keys, repeat, err = parseFrame("left x")
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "x"}, keys)
	assert.Equal(t, 1, repeat)

	keys, repeat, err = parseFrame("")
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, 1, repeat)

	_, _, err = parseFrame("up x0")
	assert.Error(t, err)
}

func TestRunWalksAndQuits(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer

	in := strings.NewReader("d x30\nq\nup x0\nquit\nleft x30\n")
	require.NoError(t, run(cfg, zap.NewNop(), in, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, input.HelpText))
	assert.Contains(t, text, "pos (900.0, 500.0)")
	assert.Contains(t, text, "pos (1000.0, 500.0)")
	assert.Contains(t, text, "unknown keys: q")
	assert.Contains(t, text, "repeat must be between")
	assert.Contains(t, text, "interact space")
	// nothing after quit is read
	assert.Equal(t, 3, strings.Count(text, "pos ("))
}

func TestRunPrintsCompanionAfterSitting(t *testing.T) {
	cfg := config.Default()
	cfg.Script = filepath.Join("scripts", "office.lua")
	cfg.Bindings = map[string]string{"enter": "interact"}
	// reach the nearest meeting chair at (625,310) from the spawn
	cfg.Interaction.ChairRadius = 400
	var out bytes.Buffer

	require.NoError(t, run(cfg, zap.NewNop(), strings.NewReader("e\nquit\n"), &out))

	text := out.String()
	assert.Contains(t, text, `"isSitting":true`)
	assert.Contains(t, text, "pos (625.0, 310.0)  SITTING")
	assert.Contains(t, text, "companion: meeting-in-progress, meeting-notes")
	assert.Contains(t, text, "interact enter, space")
}

func TestRunRejectsBadBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Bindings = map[string]string{"j": "jump"}

	err := run(cfg, zap.NewNop(), strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}
