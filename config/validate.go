package config

import (
	"fmt"
	"strings"

	"github.com/ByLCY/hanzicards/layout"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically; call it again after overriding fields.
func (c *Config) Validate() error {
	if _, err := c.Layout(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if c.Sheet.RowHeight <= 0 || c.Sheet.ColumnWidth <= 0 {
		return fmt.Errorf("sheet: row_height and column_width must be > 0 (got %v, %v)", c.Sheet.RowHeight, c.Sheet.ColumnWidth)
	}
	if err := c.Card.validate(); err != nil {
		return fmt.Errorf("card: %w", err)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := c.Output.validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (c *CardConfig) validate() error {
	if c.FrontFontSize <= 0 || c.BackFontSize <= 0 {
		return fmt.Errorf("font sizes must be > 0 (got %v, %v)", c.FrontFontSize, c.BackFontSize)
	}
	// Excel 边框样式编号 0-13
	if c.Border < 0 || c.Border > 13 {
		return fmt.Errorf("border must be within 0..13 (got %d)", c.Border)
	}
	return c.templates().Validate()
}

func (o *OutputConfig) validate() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	switch o.Format {
	case FormatXLSX:
	case FormatPDF:
		if o.Font == "" {
			return fmt.Errorf("format pdf requires output.font (a TTF/OTF with CJK coverage)")
		}
	default:
		return fmt.Errorf("unknown format %q (want xlsx or pdf)", o.Format)
	}
	if _, _, err := layout.PaperSize(o.Paper); err != nil {
		return err
	}
	return nil
}
