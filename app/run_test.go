package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/hanzicards/config"
	"github.com/ByLCY/hanzicards/deck"
	"github.com/ByLCY/hanzicards/layout"
	"github.com/ByLCY/hanzicards/pinyin"
	"github.com/ByLCY/hanzicards/renderer"
)

func testConfig() *config.Config {
	return &config.Config{
		Grid:   config.GridConfig{Columns: 2, RowsPerPage: 5},
		Sheet:  config.SheetConfig{RowHeight: 140, ColumnWidth: 40},
		Card:   config.CardConfig{FrontFontSize: 40, BackFontSize: 14, Border: 5},
		Input:  config.InputConfig{MalformedRomanization: "abort"},
		Output: config.OutputConfig{Format: "xlsx", Paper: "A4"},
		Log:    config.LogConfig{Level: "debug", Format: "json"},
	}
}

const sampleDeck = "\ufeff关系[關係]\tguan1xi5\trelations\n" +
	"好\thao3\tgood\n" +
	"only two\tfields\n" +
	"你好\tni3hao3\thello\n"

type panicReader struct{ t *testing.T }

func (r panicReader) Read([]byte) (int, error) {
	r.t.Fatal("input must not be read")
	return 0, nil
}

func TestRun_PlacesCardsAndReportsFailures(t *testing.T) {
	cfg := testConfig()
	cfg.Card.KeepDecomposed = true
	rec := renderer.NewRecorder()
	var logs bytes.Buffer

	report, err := Run(cfg, strings.NewReader(sampleDeck), rec, newLogger(&logs, cfg.Log))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Placed)
	assert.Equal(t, 1, report.Spreads)
	assert.Equal(t, 2, report.Pages)
	assert.Equal(t, 10, report.Rows)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 3, report.Failures[0].Line)
	assert.ErrorIs(t, report.Failures[0].Err, deck.ErrBadRecord)
	assert.Equal(t, "*** Failed to decompose: only two\tfields", report.Failures[0].String())
	assert.NotEmpty(t, report.RunID)

	assert.Equal(t, 1, rec.Closes)
	assert.Len(t, rec.RowHeights, 10)
	assert.Len(t, rec.ColumnWidths, 2)
	assert.Equal(t, "关系\n[關係]", rec.Cells[layout.Coordinate{Row: 0, Column: 0}].Text)
	assert.Equal(t, "gu\u0304anxi\n\nrelations", rec.Cells[layout.Coordinate{Row: 5, Column: 1}].Text)
	assert.Equal(t, "好", rec.Cells[layout.Coordinate{Row: 0, Column: 1}].Text)
	assert.Equal(t, "ha\u030co\n\ngood", rec.Cells[layout.Coordinate{Row: 5, Column: 0}].Text)
	assert.Equal(t, "你好", rec.Cells[layout.Coordinate{Row: 1, Column: 0}].Text)
	assert.Equal(t, 40.0, rec.Cells[layout.Coordinate{Row: 0, Column: 0}].Style.FontSize)
	assert.Equal(t, 14.0, rec.Cells[layout.Coordinate{Row: 5, Column: 1}].Style.FontSize)

	// 每条 JSON 日志都带同一个 run_id
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		assert.Equal(t, report.RunID, m["run_id"])
	}
	assert.Contains(t, logs.String(), `"msg":"line skipped"`)
}

func TestRun_ComposesText(t *testing.T) {
	cfg := testConfig()
	rec := renderer.NewRecorder()

	_, err := Run(cfg, strings.NewReader("关系\tguan1xi5\trelations\n"), rec, newLogger(&bytes.Buffer{}, cfg.Log))
	require.NoError(t, err)

	back := rec.Cells[layout.Coordinate{Row: 5, Column: 1}].Text
	assert.Equal(t, "g\u016banxi\n\nrelations", back)
}

func TestRun_AbortOnMalformedRomanization(t *testing.T) {
	cfg := testConfig()
	rec := renderer.NewRecorder()

	_, err := Run(cfg, strings.NewReader("关系\tguan1xi\trelations\n"), rec, newLogger(&bytes.Buffer{}, cfg.Log))
	require.Error(t, err)
	assert.ErrorIs(t, err, pinyin.ErrMalformedRomanization)
	assert.Contains(t, err.Error(), "line 1")
	assert.Zero(t, rec.Closes)
	assert.Zero(t, rec.Writes)
}

func TestRun_SkipMalformedRomanization(t *testing.T) {
	cfg := testConfig()
	cfg.Input.MalformedRomanization = "skip"
	rec := renderer.NewRecorder()

	report, err := Run(cfg, strings.NewReader("关系\tguan1xi\trelations\n好\thao3\tgood\n"), rec, newLogger(&bytes.Buffer{}, cfg.Log))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Placed)
	require.Len(t, report.Failures, 1)
	assert.ErrorIs(t, report.Failures[0].Err, pinyin.ErrMalformedRomanization)
	assert.Equal(t, "好", rec.Cells[layout.Coordinate{Row: 0, Column: 0}].Text)
}

func TestRun_InvalidGridFailsBeforeReading(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.Columns = 0
	rec := renderer.NewRecorder()

	_, err := Run(cfg, panicReader{t}, rec, newLogger(&bytes.Buffer{}, cfg.Log))
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrInvalidGridConfig))
	assert.Zero(t, rec.Closes)
}

func TestRun_CustomTemplates(t *testing.T) {
	cfg := testConfig()
	cfg.Card.FrontTemplate = "${index}. ${headword}"
	cfg.Card.BackTemplate = "${raw} / ${gloss}"
	rec := renderer.NewRecorder()

	_, err := Run(cfg, strings.NewReader("好\thao3\tgood\n"), rec, newLogger(&bytes.Buffer{}, cfg.Log))
	require.NoError(t, err)
	assert.Equal(t, "1. 好", rec.Cells[layout.Coordinate{Row: 0, Column: 0}].Text)
	assert.Equal(t, "hao3 / good", rec.Cells[layout.Coordinate{Row: 5, Column: 1}].Text)
}

func TestRun_EmptyInput(t *testing.T) {
	cfg := testConfig()
	rec := renderer.NewRecorder()

	report, err := Run(cfg, strings.NewReader(""), rec, newLogger(&bytes.Buffer{}, cfg.Log))
	require.NoError(t, err)
	assert.Zero(t, report.Placed)
	assert.Zero(t, report.Rows)
	assert.Equal(t, 1, rec.Closes)
	assert.Empty(t, rec.Cells)
}

func TestRun_NilConfig(t *testing.T) {
	_, err := Run(nil, strings.NewReader(""), renderer.NewRecorder(), nil)
	assert.Error(t, err)
}
