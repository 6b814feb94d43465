package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mdesk/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func sampleDomesticModel() *entity.Model {
	return &entity.Model{
		ID:        uuid.New(),
		Name:      "Kim Jiwoo",
		BirthDate: time.Date(2001, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:    entity.GenderFemale,
		Phone:     "+821012345678",
		Height:    172.5,
		Domestic: &entity.DomesticProfile{
			HasAgency:  true,
			AgencyName: strPtr("Starline"),
		},
	}
}

func sampleOverseasModel() *entity.Model {
	return &entity.Model{
		ID:          uuid.New(),
		Name:        "Maria Elena Rodriguez",
		BirthDate:   time.Date(1999, 11, 2, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderFemale,
		Phone:       "+14155552671",
		Height:      178,
		IsForeigner: true,
		Overseas: &entity.OverseasProfile{
			KoreanLevel: entity.KoreanLevelNotBad,
			VisaType:    entity.VisaE6,
		},
	}
}

func TestExporter_ExportDomestic(t *testing.T) {
	exporter := NewExporter()

	data, err := exporter.ExportDomestic([]*entity.Model{sampleDomesticModel()})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Domestic Models")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, domesticHeaders, rows[0][:len(domesticHeaders)])
	assert.Equal(t, "Kim Jiwoo", rows[1][1])
	assert.Equal(t, "2001-03-14", rows[1][3])
	assert.Equal(t, "Starline", rows[1][7])
}

func TestExporter_ExportOverseas(t *testing.T) {
	exporter := NewExporter()

	data, err := exporter.ExportOverseas([]*entity.Model{sampleOverseasModel()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Overseas Models")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, overseasHeaders, rows[0][:len(overseasHeaders)])
	assert.Equal(t, "Maria Elena Rodriguez", rows[1][1])
	assert.Equal(t, "NOT_BAD", rows[1][8])
	assert.Equal(t, "E6", rows[1][9])
}

func TestExporter_EmptyRoster(t *testing.T) {
	exporter := NewExporter()

	// An empty roster still produces a workbook with the header row.
	data, err := exporter.ExportDomestic(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Domestic Models")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
