//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package corpus scores many candidate/reference units with a shared scorer.
package corpus

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

// Unit is one evaluation unit: a candidate summary and its reference summaries.
type Unit struct {
	// ID identifies the unit in results; a UUID is assigned when empty.
	ID string
	// Candidate is the summary being evaluated.
	Candidate string
	// References are the ground-truth summaries for the unit.
	References []string
}

// Result holds the scores of one unit.
type Result struct {
	// ID is the unit identifier.
	ID string
	// Scores maps "ROUGE-1".."ROUGE-N" to the unit's scores.
	Scores map[string]rouge.Scores
}

// options holds corpus scoring configuration.
type options struct {
	// concurrency is the worker pool size.
	concurrency int
}

// Option configures corpus scoring.
type Option func(*options)

// WithConcurrency sets the number of workers scoring units in parallel.
func WithConcurrency(concurrency int) Option {
	return func(o *options) {
		o.concurrency = concurrency
	}
}

// Score evaluates every unit with the given scorer and returns results in
// unit order. Batch scoring is read-only on the scorer, so all workers share
// it. Units that fail to score are reported together after all units finish.
func Score(ctx context.Context, scorer *rouge.Rouge, units []Unit, opt ...Option) ([]Result, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scorer is nil")
	}
	opts := &options{concurrency: 1}
	for _, o := range opt {
		o(opts)
	}
	if opts.concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be greater than 0, got %d", opts.concurrency)
	}

	results := make([]Result, len(units))
	errs := make([]error, len(units))
	pool, err := newUnitScorePool(opts.concurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	if err := submitUnits(ctx, pool, scorer, units, results, errs); err != nil {
		return nil, err
	}

	var merr error
	for i, unitErr := range errs {
		if unitErr != nil {
			merr = multierror.Append(merr, fmt.Errorf("unit %s: %w", results[i].ID, unitErr))
		}
	}
	if merr != nil {
		return nil, merr
	}
	log.Debugf("corpus scoring finished: units=%d concurrency=%d", len(units), opts.concurrency)
	return results, nil
}
