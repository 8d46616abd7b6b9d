package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mrexodia/pangram-webui/internal/analyses/model"
)

const sheetName = "Analyses"

// WriteXLSX writes the history as a styled spreadsheet with a summary row.
func WriteXLSX(w io.Writer, items []model.Analysis) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "H", 12)
	f.SetColWidth(sheetName, "I", "I", 60)

	headers := []string{"ID", "Date", "Words", "Credits", "Prediction", "AI %", "AI-Assisted %", "Human %", "Preview"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalWords, totalCredits int64
	for i, a := range items {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), a.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), a.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), a.WordCount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), a.Credits)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), a.PredictionShort)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("%.1f", a.FractionAI*100))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), fmt.Sprintf("%.1f", a.FractionAIAssisted*100))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), fmt.Sprintf("%.1f", a.FractionHuman*100))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), a.Preview(80))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), dataStyle)
		totalWords += int64(a.WordCount)
		totalCredits += int64(a.Credits)
	}

	summaryRow := len(items) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalWords)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), totalCredits)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%d analyses", len(items)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("I%d", summaryRow), summaryStyle)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
