package render

import (
	"fmt"

	"auction-dashboard/internal/models"
	"auction-dashboard/internal/surface"
	"auction-dashboard/internal/trend"
)

// statLabels is the fixed order of the statistics bar chart
var statLabels = []string{
	"Avg Winning Bid",
	"Avg Bids/Auction",
	"Max Winning Bid",
	"Min Winning Bid",
	"Active Auctions",
	"Concluded Auctions",
}

// palette is indexed like statLabels
var (
	paletteFill = []string{
		"rgba(75, 192, 192, 0.2)",
		"rgba(255, 99, 132, 0.2)",
		"rgba(54, 162, 235, 0.2)",
		"rgba(255, 206, 86, 0.2)",
		"rgba(153, 102, 255, 0.2)",
		"rgba(255, 159, 64, 0.2)",
	}
	paletteBorder = []string{
		"rgba(75, 192, 192, 1)",
		"rgba(255, 99, 132, 1)",
		"rgba(54, 162, 235, 1)",
		"rgba(255, 206, 86, 1)",
		"rgba(153, 102, 255, 1)",
		"rgba(255, 159, 64, 1)",
	}
)

// ChartConfig is the Chart.js configuration handed to the charting library
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData holds labels and datasets
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series of a chart
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     []string  `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth"`
	Fill            bool      `json:"fill"`
	Tension         float64   `json:"tension,omitempty"`
}

// ChartOptions carries the few options the dashboard sets
type ChartOptions struct {
	Animation bool        `json:"animation"`
	Scales    ChartScales `json:"scales"`
}

// ChartScales configures the axes
type ChartScales struct {
	Y Axis `json:"y"`
}

// Axis configures one axis
type Axis struct {
	BeginAtZero bool `json:"beginAtZero"`
}

// TrendChart is a line chart bound to its mount point
type TrendChart struct {
	Mount  string
	Config ChartConfig
}

// Extrema are shown as plain numbers, a chart adds nothing for a single value
type Extrema struct {
	MaxLabel string
	Max      string
	MinLabel string
	Min      string
}

// ChartSet is everything the statistics panel renders for one stats value
type ChartSet struct {
	Bar     ChartConfig
	Trends  []TrendChart
	Extrema Extrema
}

// ChartSetView builds the bar chart over every aggregate and one synthetic
// trend line per averaged metric. Trend labels bucket auctionCount.
func ChartSetView(stats models.AggregateStats, auctionCount int, synth *trend.Synthesizer, points int, loc *Locale) (ChartSet, error) {
	labels := make([]string, len(statLabels))
	for i, l := range statLabels {
		labels[i] = loc.T(l)
	}

	set := ChartSet{
		Bar: ChartConfig{
			Type: "bar",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{{
					Label: loc.T("Auction Statistics"),
					Data: []float64{
						stats.AverageWinningBid,
						stats.AverageBidsPerAuction,
						stats.MaxWinningBid,
						stats.MinWinningBid,
						float64(stats.TotalActiveAuctions),
						float64(stats.TotalConcludedAuctions),
					},
					BackgroundColor: append([]string(nil), paletteFill...),
					BorderColor:     append([]string(nil), paletteBorder...),
					BorderWidth:     1,
				}},
			},
			Options: ChartOptions{Scales: ChartScales{Y: Axis{BeginAtZero: true}}},
		},
		Extrema: Extrema{
			MaxLabel: loc.T("Max Winning Bid"),
			Max:      loc.Currency(stats.MaxWinningBid),
			MinLabel: loc.T("Min Winning Bid"),
			Min:      loc.Currency(stats.MinWinningBid),
		},
	}

	averaged := []struct {
		mount string
		label int
		value float64
	}{
		{mount: surface.TrendWinningBid, label: 0, value: stats.AverageWinningBid},
		{mount: surface.TrendBidsPerAuction, label: 1, value: stats.AverageBidsPerAuction},
	}
	for _, m := range averaged {
		series, err := synth.Synthesize(m.value, points, auctionCount)
		if err != nil {
			return ChartSet{}, fmt.Errorf("render: trend for %s: %w", m.mount, err)
		}
		set.Trends = append(set.Trends, TrendChart{
			Mount: m.mount,
			Config: ChartConfig{
				Type: "line",
				Data: ChartData{
					Labels: series.Labels,
					Datasets: []Dataset{{
						Label:       labels[m.label],
						Data:        series.Values,
						BorderColor: []string{paletteBorder[m.label]},
						BorderWidth: 2,
						Tension:     0.3,
					}},
				},
				Options: ChartOptions{Scales: ChartScales{Y: Axis{BeginAtZero: true}}},
			},
		})
	}

	return set, nil
}
