// Package export renders the menu catalog as an xlsx workbook for the admin
// console's download button.
package export

import (
	"fmt"

	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	menuSheet  = "Menú"
	lunchSheet = "Lonches"
)

type excelExporter struct{}

// NewExcelExporter is the constructor for excelExporter.
func NewExcelExporter() service.MenuExporter {
	return &excelExporter{}
}

// Workbook builds an xlsx workbook with one sheet for the catalog and one
// for the daily-lunch specials.
func (e *excelExporter) Workbook(doc entity.SiteSettings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", menuSheet); err != nil {
		return nil, errors.Wrap(err, "failed to rename menu sheet")
	}

	header := []any{"Categoría", "Producto (ES)", "Producto (EN)", "Precio", "Popular", "Descripción (ES)"}
	if err := setRow(f, menuSheet, 1, header); err != nil {
		return nil, err
	}

	row := 2
	for _, category := range doc.Categories {
		for _, item := range category.Items {
			popular := ""
			if item.Popular {
				popular = "Sí"
			}
			values := []any{category.NameEs, item.NameEs, item.NameEn, item.Price, popular, item.DescEs}
			if err := setRow(f, menuSheet, row, values); err != nil {
				return nil, err
			}
			row++
		}
	}

	if _, err := f.NewSheet(lunchSheet); err != nil {
		return nil, errors.Wrap(err, "failed to add lunch sheet")
	}
	if err := setRow(f, lunchSheet, 1, []any{"Lonche (ES)", "Lonche (EN)", "Precio", "Descripción (ES)"}); err != nil {
		return nil, err
	}
	for i, special := range doc.LunchSpecials {
		values := []any{special.NameEs, special.NameEn, special.Price, special.DescEs}
		if err := setRow(f, lunchSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "failed to write %s row %d", sheet, row)
	}

	return nil
}
