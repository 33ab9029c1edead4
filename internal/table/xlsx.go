package table

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/planclip/planclip/internal/common"
)

// sheetName is the single worksheet the table lives on.
const sheetName = "Planes"

func loadXLSX(path string, labels []string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(labels), nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodePersist, "open output workbook", err)
	}
	defer f.Close()

	sheet := sheetName
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodePersist, "read output workbook", err)
	}
	if len(rows) == 0 {
		return New(labels), nil
	}
	return fromRecords(rows[0], rows[1:], labels), nil
}

func (t *Table) saveXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return common.NewAppError(common.ErrCodePersist, "create worksheet", err)
	}
	if idx, err := f.GetSheetIndex(sheetName); err == nil {
		f.SetActiveSheet(idx)
	}
	_ = f.DeleteSheet("Sheet1")

	for i, rec := range t.records() {
		for j, v := range rec {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return common.NewAppError(common.ErrCodePersist, "cell coordinates", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return common.NewAppError(common.ErrCodePersist, "set cell", err)
			}
		}
	}

	// identifier column wider than the value columns
	_ = f.SetColWidth(sheetName, "A", "A", 24)
	if len(t.columns) > 1 {
		last, _ := excelize.ColumnNumberToName(len(t.columns))
		_ = f.SetColWidth(sheetName, "B", last, 18)
	}

	if err := f.SaveAs(path); err != nil {
		return common.NewAppError(common.ErrCodePersist, "write output workbook", err)
	}
	return nil
}

func dirOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}
	return dir
}
