package parser

import (
	"strconv"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads the non-empty rows of a report sheet.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			colName, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			cellMap[colName] = parseCellValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// parseCellValue returns a float64 for numeric text and the original
// string otherwise.
func parseCellValue(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
