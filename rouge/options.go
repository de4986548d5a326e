//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// Scoring selects how match statistics are aggregated across references.
type Scoring string

const (
	// ScoringAverage pools match, reference, and candidate counts across all
	// references before computing ratios.
	ScoringAverage Scoring = "A"
	// ScoringBest uses only the reference with the highest match-to-reference
	// count ratio.
	ScoringBest Scoring = "B"
)

// options holds internal configuration for ROUGE-N scoring.
type options struct {
	// maxN is the largest n-gram order to compute.
	maxN int
	// scoring selects the reference aggregation mode.
	scoring Scoring
	// alpha is the recall/precision trade-off weight for the F-score.
	alpha float64
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		maxN:    4,
		scoring: ScoringAverage,
		alpha:   0.5,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures ROUGE-N scoring.
type Option func(*options)

// WithMaxN sets the largest n-gram order; ROUGE-1 through ROUGE-maxN are computed.
func WithMaxN(maxN int) Option {
	return func(o *options) {
		o.maxN = maxN
	}
}

// WithScoring sets the reference aggregation mode.
func WithScoring(scoring Scoring) Option {
	return func(o *options) {
		o.scoring = scoring
	}
}

// WithAlpha sets the recall/precision trade-off weight in [0, 1].
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}
