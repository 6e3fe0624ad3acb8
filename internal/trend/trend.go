// Package trend derives chart-ready series from point-in-time aggregates.
//
// The auction service only exposes the current value of each aggregate, so the
// series produced here are a visual approximation ending at that value. They are
// regenerated on every render and must never be stored or treated as history.
package trend

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/internal/models"
)

const (
	// DefaultPoints is the number of points in a synthetic series
	DefaultPoints = 12

	startRatio  = 0.7
	jitterRatio = 0.1
)

// Synthesizer builds synthetic trend series
type Synthesizer struct {
	rand func() float64 // uniform in [0, 1)
}

// Option configures a Synthesizer
type Option func(*Synthesizer)

// WithRand pins the randomness source, e.g. for reproducible tests
func WithRand(r func() float64) Option {
	return func(s *Synthesizer) {
		s.rand = r
	}
}

// NewSynthesizer creates a Synthesizer using math/rand unless overridden
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{rand: rand.Float64}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns pointCount values rising linearly from 0.7×current to current,
// each perturbed by up to ±10% of current except the last, which is exactly current.
// Labels bucket auctionCount evenly across the points.
func (s *Synthesizer) Synthesize(current float64, pointCount, auctionCount int) (models.TrendSeries, error) {
	if pointCount <= 0 {
		return models.TrendSeries{}, fmt.Errorf("synthesize %d points: %w", pointCount, dashboarderrors.ErrInvalidPointCount)
	}

	series := models.TrendSeries{
		Labels: Labels(auctionCount, pointCount),
		Values: make([]float64, pointCount),
	}

	last := pointCount - 1
	start := startRatio * current
	for i := 0; i < last; i++ {
		base := start + (current-start)*float64(i)/float64(last)
		jitter := (s.rand()*2 - 1) * jitterRatio * current
		series.Values[i] = base + jitter
	}
	series.Values[last] = current

	return series, nil
}

// Labels spreads auctionCount over pointCount ticks as rounded integers,
// ending at auctionCount. Zero auctions give a zero-filled sequence.
func Labels(auctionCount, pointCount int) []string {
	if pointCount <= 0 {
		return []string{}
	}
	labels := make([]string, pointCount)
	if pointCount == 1 {
		labels[0] = strconv.Itoa(auctionCount)
		return labels
	}
	last := float64(pointCount - 1)
	for i := range labels {
		v := math.Round(float64(auctionCount) * float64(i) / last)
		labels[i] = strconv.Itoa(int(v))
	}
	return labels
}
