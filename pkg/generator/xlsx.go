package generator

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"
)

// ReadXLSX loads one worksheet of a local .xlsx export into a raw string
// grid for ParseGrid.
func ReadXLSX(path string, sheetIndex int) ([][]string, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	if sheetIndex < 0 || sheetIndex >= len(wb.Sheets) {
		return nil, fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", sheetIndex, len(wb.Sheets))
	}
	sheet := wb.Sheets[sheetIndex]
	defer sheet.Close()

	var rows [][]string
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		var cells []string
		cellErr := r.ForEachCell(func(c *xlsx.Cell) error {
			cells = append(cells, c.Value)
			return nil
		})
		if cellErr != nil {
			return cellErr
		}
		rows = append(rows, cells)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet.Name, err)
	}

	return rows, nil
}
