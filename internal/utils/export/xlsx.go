package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is a tabular export: one header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// WriteXLSX renders the sheets into a single workbook. The first sheet
// replaces excelize's default "Sheet1".
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E8EEF7"}},
	})
	if err != nil {
		return err
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return err
		}
		if err := writeSheet(f, s, header); err != nil {
			return fmt.Errorf("sheet %s: %w", s.Name, err)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, s Sheet, headerStyle int) error {
	widths := make([]int, len(s.Headers))
	for col, h := range s.Headers {
		widths[col] = len(h)
	}

	if len(s.Headers) > 0 {
		row := make([]any, len(s.Headers))
		for i, h := range s.Headers {
			row[i] = h
		}
		if err := f.SetSheetRow(s.Name, "A1", &row); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(s.Headers), 1)
		if err := f.SetCellStyle(s.Name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for i, r := range s.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := r
		if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
			return err
		}
		for col, v := range r {
			if col < len(widths) {
				widths[col] = max(widths[col], len(fmt.Sprint(v)))
			}
		}
	}

	for col, w := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(s.Name, name, name, float64(min(w+2, 60))); err != nil {
			return err
		}
	}
	return nil
}
