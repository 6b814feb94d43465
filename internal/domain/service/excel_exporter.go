package service

import "mdesk/internal/domain/entity"

// ExcelExporter renders model listings as spreadsheet files for office use.
type ExcelExporter interface {
	// ExportDomestic renders the domestic model roster as an xlsx file.
	ExportDomestic(models []*entity.Model) ([]byte, error)

	// ExportOverseas renders the overseas model roster as an xlsx file.
	ExportOverseas(models []*entity.Model) ([]byte, error)
}
