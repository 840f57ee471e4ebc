// Package config loads hanzicards settings from YAML and environment variables.
package config

import (
	"github.com/ByLCY/hanzicards/binding"
	"github.com/ByLCY/hanzicards/deck"
	"github.com/ByLCY/hanzicards/layout"
)

// Config is the root application configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Sheet  SheetConfig  `yaml:"sheet"`
	Card   CardConfig   `yaml:"card"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// 数值字段不使用 env-default，默认值由 Default 预先填入，显式的 0 交给 Validate。

// Default returns the configuration used before YAML and ENV are applied.
func Default() Config {
	return Config{
		Grid:  GridConfig{Columns: 2, RowsPerPage: 5},
		Sheet: SheetConfig{RowHeight: layout.DefaultRowHeight, ColumnWidth: layout.DefaultColumnWidth},
		Card: CardConfig{
			FrontFontSize: layout.DefaultFrontStyle.FontSize,
			BackFontSize:  layout.DefaultBackStyle.FontSize,
			Border:        layout.DefaultFrontStyle.Border,
		},
	}
}

// GridConfig holds the card grid dimensions of one printed page.
type GridConfig struct {
	Columns     int `yaml:"columns"       env:"GRID_COLUMNS"`
	RowsPerPage int `yaml:"rows_per_page" env:"GRID_ROWS_PER_PAGE"`
}

// SheetConfig holds spreadsheet sizing in Excel units.
type SheetConfig struct {
	RowHeight   float64 `yaml:"row_height"   env:"SHEET_ROW_HEIGHT"`
	ColumnWidth float64 `yaml:"column_width" env:"SHEET_COLUMN_WIDTH"`
}

// CardConfig holds per-face styling and text templates.
// Empty templates fall back to binding.DefaultFrontTemplate / DefaultBackTemplate.
type CardConfig struct {
	FrontFontSize float64 `yaml:"front_font_size" env:"CARD_FRONT_FONT_SIZE"`
	BackFontSize  float64 `yaml:"back_font_size"  env:"CARD_BACK_FONT_SIZE"`
	Border        int     `yaml:"border"          env:"CARD_BORDER"`
	FrontTemplate string  `yaml:"front_template"  env:"CARD_FRONT_TEMPLATE"`
	BackTemplate  string  `yaml:"back_template"   env:"CARD_BACK_TEMPLATE"`

	// 为 true 时保留组合附加符号的分解形式。
	KeepDecomposed bool `yaml:"keep_decomposed" env:"CARD_KEEP_DECOMPOSED"`
}

// Compose reports whether card text is NFC-composed before output.
func (c CardConfig) Compose() bool { return !c.KeepDecomposed }

// InputConfig controls how the deck reader treats bad lines.
type InputConfig struct {
	MalformedRomanization string `yaml:"malformed_romanization" env:"INPUT_MALFORMED_ROMANIZATION" env-default:"abort"`
}

// OutputConfig selects the output sink.
type OutputConfig struct {
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"xlsx"`
	Font   string `yaml:"font"   env:"OUTPUT_FONT"`
	Paper  string `yaml:"paper"  env:"OUTPUT_PAPER"  env-default:"A4"`
	Sheet  string `yaml:"sheet"  env:"OUTPUT_SHEET"  env-default:"Cards"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Layout returns the validated grid for the layout planner.
func (c *Config) Layout() (layout.GridConfig, error) {
	return layout.NewGridConfig(c.Grid.Columns, c.Grid.RowsPerPage)
}

// BuildOptions maps sheet and card settings onto layout build options.
func (c *Config) BuildOptions() layout.BuildOptions {
	front := layout.DefaultFrontStyle
	front.FontSize = c.Card.FrontFontSize
	front.Border = c.Card.Border
	back := layout.DefaultBackStyle
	back.FontSize = c.Card.BackFontSize
	back.Border = c.Card.Border
	return layout.BuildOptions{
		RowHeight:   c.Sheet.RowHeight,
		ColumnWidth: c.Sheet.ColumnWidth,
		FrontStyle:  &front,
		BackStyle:   &back,
	}
}

// Templates returns the card templates, defaults filled in.
func (c *Config) Templates() binding.CardTemplate { return c.Card.templates() }

func (c *CardConfig) templates() binding.CardTemplate {
	tpl := binding.DefaultCardTemplate()
	if c.FrontTemplate != "" {
		tpl.Front = c.FrontTemplate
	}
	if c.BackTemplate != "" {
		tpl.Back = c.BackTemplate
	}
	return tpl
}

// Policy returns the parsed malformed-romanization policy.
func (c *Config) Policy() (deck.MalformedPolicy, error) {
	return deck.ParsePolicy(c.Input.MalformedRomanization)
}
