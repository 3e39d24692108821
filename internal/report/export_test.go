package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/dealer-insights/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	lat, lng := 43.65, -79.38
	dealers := []model.Dealer{
		{Name: "Maple Leaf Motors", Province: "ON", PostalCode: "M5V 3L9", Rating: 3.5, TotalReviews: 120, Latitude: &lat, Longitude: &lng},
		{Name: "Pacific Auto Group", Province: "BC", Rating: 4.8, TotalReviews: 340},
	}

	path := filepath.Join(t.TempDir(), "dealers.xlsx")
	require.NoError(t, WriteXLSX(path, dealers))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	sheet, ok := f.Sheet["Dealers"]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3) // header + 2 dealers
	assert.Equal(t, "Maple Leaf Motors", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "ON", sheet.Rows[1].Cells[1].String())

	summary, ok := f.Sheet["Summary"]
	require.True(t, ok)
	assert.Equal(t, "Total Dealers", summary.Rows[0].Cells[0].String())
	assert.Equal(t, "2", summary.Rows[0].Cells[1].String())
	assert.Equal(t, "4.15", summary.Rows[1].Cells[1].String())
}

func TestWriteXLSX_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, nil))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	summary := f.Sheet["Summary"]
	require.NotNil(t, summary)
	assert.Equal(t, "n/a", summary.Rows[1].Cells[1].String())
}
