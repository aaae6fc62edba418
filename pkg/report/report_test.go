package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/greenbuild/pkg/catalog"
	"github.com/ChicagoDave/greenbuild/pkg/design"
	"github.com/ChicagoDave/greenbuild/pkg/metrics"
)

func southSolar() *Report {
	cat := catalog.Default()
	c := design.Default().
		WithOrientation(180).
		ToggleTechnology(catalog.TechTemperatureSensors).
		ToggleRenewable(catalog.RenewableSolarPV)
	return Build(cat, c, metrics.Compute(cat, c))
}

func TestBuild(t *testing.T) {
	r := southSolar()

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.False(t, r.GeneratedAt.IsZero())
	assert.NotEmpty(t, r.ArchetypeName)

	byLabel := map[string]Row{}
	for _, row := range r.Rows {
		byLabel[row.Label] = row
	}
	assert.Equal(t, -404.0, byLabel["Net Energy"].Value)
	assert.Equal(t, "0.1 years", byLabel["Payback Period"].Display)
	assert.Equal(t, "₹2.5 L", byLabel["Upfront Investment"].Display)

	require.Len(t, r.Selections, 2)
	assert.Equal(t, "technology", r.Selections[0].Kind)
	assert.Equal(t, catalog.TechTemperatureSensors, r.Selections[0].ID)
	assert.Equal(t, catalog.RenewableSolarPV, r.Selections[1].ID)
}

func TestBuildUniqueIDs(t *testing.T) {
	assert.NotEqual(t, southSolar().ID, southSolar().ID)
}

func TestXLSX(t *testing.T) {
	r := southSolar()
	data, err := XLSX(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, selectionsSheet}, f.GetSheetList())
	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Green Building Design Summary", title)
	id, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, r.ID, id)
	name, err := f.GetCellValue(selectionsSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, catalog.RenewableSolarPV, name)
}

func TestPDF(t *testing.T) {
	data, err := PDF(southSolar())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRender(t *testing.T) {
	r := southSolar()
	for _, f := range []Format{FormatXLSX, FormatPDF} {
		data, err := Render(r, f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, data)
	}

	_, err := Render(r, "docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	_, err = ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
