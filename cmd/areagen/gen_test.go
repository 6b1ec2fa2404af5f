package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areabuilder/generator"
)

func TestParseLevelRange(t *testing.T) {
	tests := []struct {
		in      string
		lo, hi  int
		wantErr bool
	}{
		{in: "3", lo: 3, hi: 3},
		{in: " 0 : 5 ", lo: 0, hi: 5},
		{in: "4:2", wantErr: true},
		{in: "x", wantErr: true},
		{in: "1:y", wantErr: true},
		{in: "1:2:3", wantErr: true},
	}
	for _, tc := range tests {
		lo, hi, err := parseLevelRange(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.lo, lo)
		assert.Equal(t, tc.hi, hi)
	}
}

func TestBuildOptions_RejectsSmallBoard(t *testing.T) {
	_, err := buildOptions(generator.Board{Width: 6, Height: 8, UnitLength: 32}, 1)
	assert.Error(t, err)
	_, err = buildOptions(generator.Board{Width: 12, Height: 8}, 1)
	assert.Error(t, err)

	opts, err := buildOptions(generator.DefaultBoard(), 1)
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestGenerateSession_JSON(t *testing.T) {
	opts, err := buildOptions(generator.DefaultBoard(), 11)
	require.NoError(t, err)

	levels, err := generateSession(opts, 0, 5)
	require.NoError(t, err)
	require.Len(t, levels, 6)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, session{Board: generator.DefaultBoard(), Seed: 11, Levels: levels}))

	var decoded struct {
		Board  generator.Board `json:"board"`
		Levels []struct {
			Level      int               `json:"level"`
			Challenges []json.RawMessage `json:"challenges"`
		} `json:"levels"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, generator.DefaultBoard(), decoded.Board)
	for i, l := range decoded.Levels {
		assert.Equal(t, i, l.Level)
		assert.Len(t, l.Challenges, 6)
	}
	assert.Contains(t, buf.String(), `"cellColumn"`)
	assert.Contains(t, buf.String(), `"backgroundShape"`)
}

func TestLevelsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"levels"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(generator.Levels()))
	assert.True(t, strings.HasPrefix(lines[0], "0\t6 challenges"))
}

func TestWriteFile(t *testing.T) {
	doc := session{Board: generator.DefaultBoard(), Seed: 3}
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, writeFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.Board, decoded.Board)
	assert.Equal(t, int64(3), decoded.Seed)

	err = writeFile(filepath.Join(t.TempDir(), "missing", "session.json"), doc)
	assert.ErrorContains(t, err, "failed to create output file")
}
