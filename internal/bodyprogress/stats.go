package bodyprogress

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/fitjournal/internal/calendar"
)

type Stats struct {
	WeightChange float64 `json:"weightChange"`
	TotalDays    int     `json:"totalDays"`
	TotalEntries int     `json:"totalEntries"`
}

type ChartPoint struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

var monthLabels = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// chartMonths is the trailing window shown in the weight chart.
const chartMonths = 6

func byDateAsc(entries []Entry) []Entry {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Date < sorted[b].Date
	})
	return sorted
}

// ComputeStats compares the earliest and the latest entry. It returns
// nil with fewer than two entries.
func ComputeStats(entries []Entry) *Stats {
	if len(entries) < 2 {
		return nil
	}

	sorted := byDateAsc(entries)
	first, last := sorted[0], sorted[len(sorted)-1]

	stats := &Stats{
		WeightChange: math.Round((last.Weight-first.Weight)*10) / 10,
		TotalEntries: len(sorted),
	}
	firstDate, errFirst := time.Parse(calendar.DateLayout, first.Date)
	lastDate, errLast := time.Parse(calendar.DateLayout, last.Date)
	if errFirst == nil && errLast == nil {
		stats.TotalDays = int(math.Ceil(lastDate.Sub(firstDate).Hours() / 24))
	}
	return stats
}

// ChartSeries returns the weight of the entries of the last six months
// before now, oldest first.
func ChartSeries(entries []Entry, now time.Time) []ChartPoint {
	from := now.AddDate(0, -chartMonths, 0).Format(calendar.DateLayout)

	points := []ChartPoint{}
	for _, e := range byDateAsc(entries) {
		if e.Date < from {
			continue
		}
		date, err := time.Parse(calendar.DateLayout, e.Date)
		if err != nil {
			continue
		}
		points = append(points, ChartPoint{
			Date:   e.Date,
			Label:  monthLabels[date.Month()-1],
			Weight: e.Weight,
		})
	}
	return points
}
