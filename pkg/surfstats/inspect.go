package surfstats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/parser"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/report"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a produced report back into structured form.
func Inspect(path string) (*models.ReportData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	rows, err := parser.ExtractCells(f, report.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", report.SheetName, err)
	}

	used, err := parser.UsedRange(f, report.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", report.SheetName, err)
	}

	return &models.ReportData{
		BookName:   filepath.Base(path),
		SheetName:  report.SheetName,
		UsedRange:  used,
		Rows:       rows,
		PrintAreas: parser.ExtractPrintAreas(f)[report.SheetName],
	}, nil
}
