package service

import "panaderia/internal/domain/entity"

// MenuExporter renders the menu catalog into a downloadable spreadsheet.
type MenuExporter interface {
	// Workbook builds an xlsx workbook from the document's catalog.
	Workbook(doc entity.SiteSettings) ([]byte, error)
}
