// Package app wires the deck reader, card templates, layout planner and
// output sink into a single run.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/hanzicards/binding"
	"github.com/ByLCY/hanzicards/config"
	"github.com/ByLCY/hanzicards/deck"
	"github.com/ByLCY/hanzicards/layout"
	"github.com/ByLCY/hanzicards/renderer"
)

// Report summarizes one run.
type Report struct {
	RunID    string
	Placed   int
	Spreads  int
	Pages    int
	Rows     int
	Failures []deck.Failure
	Layout   *layout.Result
}

// Run reads entries from in, lays them out on the configured grid and emits the
// result into sink. The grid is validated before any input is read. The sink is
// closed only when layout succeeded and emission started.
func Run(cfg *config.Config, in io.Reader, sink renderer.Sink, logger *slog.Logger) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	if cfg == nil {
		return report, fmt.Errorf("app: config 不能为空")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run_id", report.RunID))

	grid, err := cfg.Layout()
	if err != nil {
		return report, fmt.Errorf("grid: %w", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		return report, fmt.Errorf("input: %w", err)
	}
	tpl := cfg.Templates()
	if err := tpl.Validate(); err != nil {
		return report, fmt.Errorf("templates: %w", err)
	}

	logger.Info("run started",
		slog.String("version", BuildVersion()),
		slog.String("grid", grid.String()),
		slog.String("policy", policy.String()),
		slog.String("format", cfg.Output.Format),
	)

	batch, err := deck.NewReader(policy).Read(in)
	if err != nil {
		return report, fmt.Errorf("read entries: %w", err)
	}
	report.Failures = batch.Failures
	for _, f := range batch.Failures {
		logger.Warn("line skipped",
			slog.Int("line", f.Line),
			slog.String("raw", f.Raw),
			slog.String("error", f.Err.Error()),
		)
	}
	logger.Debug("entries read",
		slog.Int("total_lines", batch.Stats.TotalLines),
		slog.Int("bad_records", batch.Stats.BadRecords),
		slog.Int("bad_romanized", batch.Stats.BadRomanized),
		slog.Int("entries", batch.Stats.EntriesCreated),
	)

	cards := renderCards(batch.Entries, tpl, cfg.Card.Compose())
	result, err := layout.Build(cards, grid, cfg.BuildOptions())
	if err != nil {
		return report, fmt.Errorf("layout: %w", err)
	}
	report.Layout = result
	report.Placed = result.Cards
	report.Spreads = result.Spreads
	report.Pages = result.Pages
	report.Rows = result.Rows

	if err := renderer.Emit(result, sink); err != nil {
		return report, fmt.Errorf("emit: %w", err)
	}

	logger.Info("cards placed",
		slog.Int("placed", report.Placed),
		slog.Int("spreads", report.Spreads),
		slog.Int("pages", report.Pages),
		slog.Int("rows", report.Rows),
		slog.Int("failures", len(report.Failures)),
	)
	return report, nil
}

// renderCards 用模板生成卡片正反面文本，保持输入顺序。
func renderCards(entries []deck.Entry, tpl binding.CardTemplate, compose bool) []layout.Card {
	cards := make([]layout.Card, 0, len(entries))
	for i, e := range entries {
		front, back := tpl.Render(binding.Fields(i+1, e.FrontText, e.Romanized, e.Raw, e.Gloss))
		if compose {
			front, back = norm.NFC.String(front), norm.NFC.String(back)
		}
		cards = append(cards, layout.Card{Front: front, Back: back})
	}
	return cards
}
