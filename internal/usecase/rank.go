package usecase

import (
	"math"
	"sort"

	"flightsearch-service/internal/domain/entity"
)

// rankOptions orders options in place per the optimize mode. Sorts are
// stable so ties keep the order the mapping stage produced; an
// unrecognized mode ranks as balanced.
func rankOptions(options []entity.Option, mode entity.OptimizeMode) {
	switch mode {
	case entity.OptimizeCheapest:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Price < options[j].Price
		})
	case entity.OptimizeShortest:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].TotalDurationMin < options[j].TotalDurationMin
		})
	default:
		rankBalanced(options)
	}
}

// rankBalanced sorts ascending by an equal-weighted average of min-max
// normalized price and duration. The denominators are clamped to at least
// 1, so a spread under one unit is deliberately not scaled to a full 0-1
// range; consumers rely on today's tie distribution.
func rankBalanced(options []entity.Option) {
	if len(options) == 0 {
		return
	}

	minPrice, maxPrice := options[0].Price, options[0].Price
	minDuration, maxDuration := options[0].TotalDurationMin, options[0].TotalDurationMin
	for _, option := range options[1:] {
		if option.Price < minPrice {
			minPrice = option.Price
		}
		if option.Price > maxPrice {
			maxPrice = option.Price
		}
		if option.TotalDurationMin < minDuration {
			minDuration = option.TotalDurationMin
		}
		if option.TotalDurationMin > maxDuration {
			maxDuration = option.TotalDurationMin
		}
	}

	priceRange := math.Max(1, maxPrice-minPrice)
	durationRange := math.Max(1, float64(maxDuration-minDuration))

	// Scores live beside the options and are discarded after sorting;
	// they are not part of the Option shape
	scores := make([]float64, len(options))
	for i := range options {
		priceScore := (options[i].Price - minPrice) / priceRange
		durationScore := float64(options[i].TotalDurationMin-minDuration) / durationRange
		scores[i] = 0.5*priceScore + 0.5*durationScore
	}

	sort.Stable(&scoredOptions{options: options, scores: scores})
}

// scoredOptions keeps options paired with their transient scores while
// sorting
type scoredOptions struct {
	options []entity.Option
	scores  []float64
}

func (s *scoredOptions) Len() int { return len(s.options) }

func (s *scoredOptions) Less(i, j int) bool { return s.scores[i] < s.scores[j] }

func (s *scoredOptions) Swap(i, j int) {
	s.options[i], s.options[j] = s.options[j], s.options[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
