package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"USN", "Name", "CIE"},
		Rows: []map[string]string{
			{"USN": "1MS21CS001", "Name": "Asha Rao", "CIE": "26"},
			{"USN": "1MS21CS002", "Name": "Vikram Shet"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	out := string(payload)
	assert.Contains(t, out, "USN,Name,CIE\n")
	assert.Contains(t, out, "1MS21CS001,Asha Rao,26\n")
	assert.Contains(t, out, "1MS21CS002,Vikram Shet,\n", "missing keys render empty")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleDataset(), "Operating Systems - CSE 3 A")
	require.NoError(t, err)
	assert.True(t, len(payload) > 0)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	require.Error(t, err)
}

func TestColumnWidthsProportionalToContent(t *testing.T) {
	widths := columnWidths(sampleDataset())
	require.Len(t, widths, 3)

	total := 0.0
	for _, w := range widths {
		total += w
	}
	assert.InDelta(t, pdfTableWidth, total, 0.001)
	assert.Greater(t, widths[1], widths[2], "name column outweighs the score column")
}
