package output

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
)

// SummarySheet is the first sheet of an exported workbook.
const SummarySheet = "Figure"

// AxesSheetName is the sheet holding the series of the i-th axes.
func AxesSheetName(i int) string {
	return fmt.Sprintf("Axes%d", i+1)
}

// series is one column group of an axes sheet.
type series struct {
	name   string
	points []models.Point
}

// WriteXLSX writes the series of rec to a workbook at path: a summary
// sheet, then one sheet per axes with a column per coordinate of every
// line and scatter batch. Sheets with 2D series also get a scatter chart.
func WriteXLSX(rec *models.FigureRecord, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	summary := [][2]any{
		{"id", rec.ID},
		{"title", rec.Title},
		{"axes", len(rec.Axes)},
	}
	for i, row := range summary {
		if err := setRow(f, SummarySheet, i+1, row[:]); err != nil {
			return err
		}
	}

	for i := range rec.Axes {
		if err := writeAxesSheet(f, AxesSheetName(i), &rec.Axes[i]); err != nil {
			return fmt.Errorf("axes %d: %w", i, err)
		}
	}
	return f.SaveAs(path)
}

func writeAxesSheet(f *excelize.File, sheet string, ax *models.AxesRecord) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	var all []series
	for i, l := range ax.Lines {
		name := l.Label
		if name == "" {
			name = fmt.Sprintf("line%d", i+1)
		}
		all = append(all, series{name: name, points: l.Points})
	}
	for i, s := range ax.ScatterPoints {
		name := s.Label
		if name == "" {
			name = fmt.Sprintf("scatter%d", i+1)
		}
		all = append(all, series{name: name, points: s.Points})
	}

	dims := []string{"x", "y", "z"}
	col := 1
	var plotted []excelize.ChartSeries
	for _, s := range all {
		width := 2
		if len(s.points) > 0 {
			width = len(s.points[0])
		}
		if width == 2 && len(s.points) > 0 {
			cs, err := chartSeries(sheet, col, len(s.points))
			if err != nil {
				return err
			}
			plotted = append(plotted, cs)
		}
		for d := 0; d < width && d < len(dims); d++ {
			if err := setCell(f, sheet, col+d, 1, s.name+" "+dims[d]); err != nil {
				return err
			}
			for r, p := range s.points {
				if d >= len(p) {
					continue
				}
				v := float64(p[d])
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				if err := setCell(f, sheet, col+d, r+2, v); err != nil {
					return err
				}
			}
		}
		col += width
	}
	if len(plotted) == 0 {
		return nil
	}
	anchor, err := excelize.CoordinatesToCellName(col+1, 1)
	if err != nil {
		return err
	}
	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type:   excelize.Scatter,
		Series: plotted,
		Title:  []excelize.RichTextRun{{Text: ax.Title}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ax.XLabel}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ax.YLabel}}},
	})
}

// chartSeries references the name cell and the x and y columns of a
// series starting at col.
func chartSeries(sheet string, col, n int) (excelize.ChartSeries, error) {
	cells := [][2]int{{col, 1}, {col, 2}, {col, n + 1}, {col + 1, 2}, {col + 1, n + 1}}
	refs := make([]string, len(cells))
	for i, c := range cells {
		ref, err := excelize.CoordinatesToCellName(c[0], c[1], true)
		if err != nil {
			return excelize.ChartSeries{}, err
		}
		refs[i] = ref
	}
	return excelize.ChartSeries{
		Name:       sheet + "!" + refs[0],
		Categories: sheet + "!" + refs[1] + ":" + refs[2],
		Values:     sheet + "!" + refs[3] + ":" + refs[4],
	}, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		if err := setCell(f, sheet, i+1, row, v); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
