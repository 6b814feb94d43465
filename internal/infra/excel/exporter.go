// Package excel renders model rosters as xlsx workbooks using excelize.
package excel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/service"
	"mdesk/internal/errors"
)

const dateLayout = "2006-01-02"

var domesticHeaders = []string{
	"ID", "Name", "Stage Name", "Birth Date", "Gender", "Phone", "Nationality",
	"Agency", "Agency Manager", "Agency Manager Phone",
	"Instagram", "TikTok", "YouTube",
	"City", "District", "Street",
	"Special Abilities", "Other Languages", "Tattoo Location", "Tattoo Size",
	"Height (cm)", "Weight (kg)", "Top", "Bottom", "Shoes",
}

var overseasHeaders = []string{
	"ID", "Name", "Stage Name", "Birth Date", "Gender", "Phone", "Nationality",
	"First Language", "Korean Level", "Visa Type",
	"Instagram", "KakaoTalk", "YouTube",
	"City", "District", "Street",
	"Special Abilities", "Other Languages", "Tattoo Location", "Tattoo Size",
	"Height (cm)", "Weight (kg)", "Top", "Bottom", "Shoes",
}

// exporter implements the ExcelExporter interface.
type exporter struct{}

// NewExporter is the constructor for exporter.
func NewExporter() service.ExcelExporter {
	return &exporter{}
}

// ExportDomestic renders the domestic model roster as an xlsx file.
func (e *exporter) ExportDomestic(models []*entity.Model) ([]byte, error) {
	return e.render("Domestic Models", domesticHeaders, models, domesticRow)
}

// ExportOverseas renders the overseas model roster as an xlsx file.
func (e *exporter) ExportOverseas(models []*entity.Model) ([]byte, error) {
	return e.render("Overseas Models", overseasHeaders, models, overseasRow)
}

func (e *exporter) render(sheet string, headers []string, models []*entity.Model, rowFn func(*entity.Model) []any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "drop default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "resolve header cell")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "write header cell")
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, errors.Wrap(err, "style header cell")
		}
	}

	for rowIdx, m := range models {
		values := rowFn(m)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, errors.Wrap(err, "resolve data cell")
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, errors.Wrap(err, "write data cell")
			}
		}
	}

	// Widen the name and address columns a little for readability.
	if err := f.SetColWidth(sheet, "A", "A", 38); err != nil {
		return nil, errors.Wrap(err, "set column width")
	}
	if err := f.SetColWidth(sheet, "B", fmt.Sprintf("%c", 'A'+len(headers)-1), 16); err != nil {
		return nil, errors.Wrap(err, "set column width")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serialize workbook")
	}

	return buf.Bytes(), nil
}

func domesticRow(m *entity.Model) []any {
	var agencyName, managerName, managerPhone, tiktok string
	if m.Domestic != nil {
		agencyName = deref(m.Domestic.AgencyName)
		managerName = deref(m.Domestic.AgencyManagerName)
		managerPhone = deref(m.Domestic.AgencyManagerPhone)
		tiktok = deref(m.Domestic.TikTok)
	}

	return append(commonLeadColumns(m),
		agencyName, managerName, managerPhone,
		deref(m.Instagram), tiktok, deref(m.YouTube),
		deref(m.AddressCity), deref(m.AddressDistrict), deref(m.AddressStreet),
		deref(m.SpecialAbilities), deref(m.OtherLanguages), deref(m.TattooLocation), deref(m.TattooSize),
		formatHeight(m.Height), formatWeight(m.Weight), deref(m.TopSize), deref(m.BottomSize), deref(m.ShoesSize),
	)
}

func overseasRow(m *entity.Model) []any {
	var firstLanguage, koreanLevel, visaType, kakaotalk string
	if m.Overseas != nil {
		firstLanguage = deref(m.Overseas.FirstLanguage)
		koreanLevel = m.Overseas.KoreanLevel.String()
		visaType = m.Overseas.VisaType.String()
		kakaotalk = deref(m.Overseas.KakaoTalk)
	}

	return append(commonLeadColumns(m),
		firstLanguage, koreanLevel, visaType,
		deref(m.Instagram), kakaotalk, deref(m.YouTube),
		deref(m.AddressCity), deref(m.AddressDistrict), deref(m.AddressStreet),
		deref(m.SpecialAbilities), deref(m.OtherLanguages), deref(m.TattooLocation), deref(m.TattooSize),
		formatHeight(m.Height), formatWeight(m.Weight), deref(m.TopSize), deref(m.BottomSize), deref(m.ShoesSize),
	)
}

func commonLeadColumns(m *entity.Model) []any {
	return []any{
		m.ID.String(),
		m.Name,
		deref(m.StageName),
		formatDate(m.BirthDate),
		m.Gender.String(),
		m.Phone,
		deref(m.Nationality),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}

func formatHeight(height float64) string {
	return strconv.FormatFloat(height, 'f', -1, 64)
}

func formatWeight(weight *float64) string {
	if weight == nil {
		return ""
	}

	return strconv.FormatFloat(*weight, 'f', -1, 64)
}
