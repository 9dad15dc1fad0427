package co2trends

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTablePrint(t *testing.T) {
	rep := runDefault(t)

	var buf bytes.Buffer
	require.Nil(t, rep.TablePrint(&buf))

	out := buf.String()
	assert.Contains(t, out, "Mauna Loa CO2 report, 1959-01 to 1997-12")
	assert.Contains(t, out, "Historical ppm")
	assert.Contains(t, out, "Forecast ppm")
	assert.Contains(t, out, "ppm/day")
	assert.Contains(t, out, "slope ratio late/early")
	assert.Contains(t, out, "R-squared")
	assert.Contains(t, out, "F-statistic")
}

func TestReportWriteJSON(t *testing.T) {
	rep := runDefault(t)

	var buf bytes.Buffer
	require.Nil(t, rep.WriteJSON(&buf))

	var decoded map[string]any
	require.Nil(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "forecast")
	assert.Contains(t, decoded, "history_stats")
	assert.Contains(t, decoded, "early_fit")
	assert.Contains(t, decoded, "diagnostics")
	assert.Contains(t, decoded, "month_year_matrix")
	assert.Contains(t, decoded, "diff")
}

func TestRenderCharts(t *testing.T) {
	rep := runDefault(t)

	var buf bytes.Buffer
	require.Nil(t, RenderCharts(&buf, rep))

	out := buf.String()
	assert.Contains(t, out, "CO2 Forecast")
	assert.Contains(t, out, "Year-over-Year Monthly CO2")
	assert.Contains(t, out, "Monthly CO2 Difference")
}
