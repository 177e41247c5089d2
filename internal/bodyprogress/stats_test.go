package bodyprogress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/bodyprogress"
)

func TestComputeStats(t *testing.T) {
	assert.Nil(t, bodyprogress.ComputeStats(nil))
	assert.Nil(t, bodyprogress.ComputeStats([]bodyprogress.Entry{{Date: "2024-01-01", Weight: 80}}))

	stats := bodyprogress.ComputeStats([]bodyprogress.Entry{
		{Date: "2024-03-01", Weight: 78.2},
		{Date: "2024-01-01", Weight: 82.5},
		{Date: "2024-02-10", Weight: 80},
	})
	require.NotNil(t, stats)
	assert.Equal(t, -4.3, stats.WeightChange)
	assert.Equal(t, 60, stats.TotalDays)
	assert.Equal(t, 3, stats.TotalEntries)
}

func TestChartSeries(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []bodyprogress.Entry{
		{Date: "2024-06-01", Weight: 79},
		{Date: "2023-12-14", Weight: 90},
		{Date: "2023-12-15", Weight: 84},
		{Date: "2024-02-03", Weight: 81.5},
	}

	points := bodyprogress.ChartSeries(entries, now)
	assert.Equal(t, []bodyprogress.ChartPoint{
		{Date: "2023-12-15", Label: "dic", Weight: 84},
		{Date: "2024-02-03", Label: "feb", Weight: 81.5},
		{Date: "2024-06-01", Label: "jun", Weight: 79},
	}, points)

	assert.Equal(t, []bodyprogress.ChartPoint{}, bodyprogress.ChartSeries(nil, now))
}
