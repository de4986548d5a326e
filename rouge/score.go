//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge implements ROUGE-N scoring compatible with ROUGE-1.5.5.
package rouge

import "strconv"

// Scores holds recall, precision, and F-score for one ROUGE-N metric,
// rounded to five decimal digits.
type Scores struct {
	// R is the recall in range [0, 1].
	R float64 `json:"R"`
	// P is the precision in range [0, 1].
	P float64 `json:"P"`
	// F is the alpha-weighted F-score in range [0, 1].
	F float64 `json:"F"`
}

// RecallResult holds one incremental recall observation.
type RecallResult struct {
	// R is the unrounded recall contribution of the increment.
	R float64 `json:"R"`
	// Valid reports whether the increment contributed any tokens. When false,
	// R carries no value.
	Valid bool `json:"-"`
}

// fScore computes the alpha-weighted combination of precision and recall.
// Alpha toward 1 weighs the denominator toward recall, favoring precision;
// alpha toward 0 favors recall. Callers must ensure precision and recall are
// not both zero.
func fScore(precision, recall, alpha float64) float64 {
	return (precision * recall) / ((1-alpha)*precision + alpha*recall)
}

// round5 rounds v to five decimal digits using shortest-decimal formatting,
// matching the reference implementation's rounding of reported scores.
func round5(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 5, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
