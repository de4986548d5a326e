//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// ngramSep joins the tokens of an n-gram into its identity key. Tokens never
// contain it, so equal token sequences always produce equal keys.
const ngramSep = "\x00"

// Rouge computes ROUGE-N scores for candidate texts against reference texts.
// A Rouge is read-only after construction and safe for concurrent use;
// incremental state lives in Session values.
type Rouge struct {
	tok     tokenize.Tokenizer
	maxN    int
	scoring Scoring
	alpha   float64
}

// New creates a ROUGE-N scorer bound to the given tokenizer.
func New(tok tokenize.Tokenizer, opt ...Option) (*Rouge, error) {
	if tok == nil {
		return nil, fmt.Errorf("tokenizer is nil")
	}
	opts := newOptions(opt...)
	if opts.maxN < 1 {
		return nil, fmt.Errorf("max n-gram order must be at least 1, got %d", opts.maxN)
	}
	switch opts.scoring {
	case ScoringAverage, ScoringBest:
	default:
		return nil, fmt.Errorf("invalid scoring mode %q", opts.scoring)
	}
	if opts.alpha < 0 || opts.alpha > 1 {
		return nil, fmt.Errorf("alpha must be in [0, 1], got %v", opts.alpha)
	}
	return &Rouge{
		tok:     tok,
		maxN:    opts.maxN,
		scoring: opts.scoring,
		alpha:   opts.alpha,
	}, nil
}

// refStats holds per-reference match statistics for one n-gram order.
type refStats struct {
	// candCount is the candidate's total n-gram count.
	candCount int
	// refCount is the reference's total n-gram count.
	refCount int
	// matchCount is the multiset intersection size between candidate and reference.
	matchCount int
}

// NScore computes ROUGE-1 through ROUGE-maxN for a candidate text against one
// or more reference texts. Result keys are "ROUGE-1".."ROUGE-N" and each score
// is rounded to five decimal digits.
func (r *Rouge) NScore(ctx context.Context, refTexts []string, candText string) (map[string]Scores, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(refTexts) == 0 {
		return nil, fmt.Errorf("reference texts are empty")
	}

	candTokens := tokenize.Flatten(r.tok.TokenizeText(candText))
	refTokens := make([][]string, 0, len(refTexts))
	for _, ref := range refTexts {
		refTokens = append(refTokens, tokenize.Flatten(r.tok.TokenizeText(ref)))
	}

	results := make(map[string]Scores, r.maxN)
	for n := 1; n <= r.maxN; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candCounter := countNGrams(candTokens, n)
		candCount := totalCount(candCounter)
		stats := make([]refStats, 0, len(refTokens))
		for _, ref := range refTokens {
			refCounter := countNGrams(ref, n)
			stats = append(stats, refStats{
				candCount:  candCount,
				refCount:   totalCount(refCounter),
				matchCount: matchCount(candCounter, refCounter),
			})
		}

		var agg refStats
		switch r.scoring {
		case ScoringAverage:
			for _, s := range stats {
				agg.candCount += s.candCount
				agg.refCount += s.refCount
				agg.matchCount += s.matchCount
			}
		case ScoringBest:
			agg = bestStats(stats)
		}

		recall := 0.0
		if agg.refCount > 0 {
			recall = float64(agg.matchCount) / float64(agg.refCount)
		}
		precision := 0.0
		if agg.candCount > 0 {
			precision = float64(agg.matchCount) / float64(agg.candCount)
		}
		f := 0.0
		if agg.matchCount > 0 {
			f = fScore(precision, recall, r.alpha)
		}
		results[metricLabel(n)] = Scores{
			R: round5(recall),
			P: round5(precision),
			F: round5(f),
		}
	}
	return results, nil
}

// metricLabel returns the result key for an n-gram order.
func metricLabel(n int) string {
	return fmt.Sprintf("ROUGE-%d", n)
}

// countNGrams builds a multiset of n-grams over the flattened token stream.
func countNGrams(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	ngrams := make(map[string]int, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		ngrams[strings.Join(tokens[i:i+n], ngramSep)]++
	}
	return ngrams
}

// totalCount sums the counts of a multiset, including repeats.
func totalCount(counter map[string]int) int {
	total := 0
	for _, cnt := range counter {
		total += cnt
	}
	return total
}

// matchCount computes the multiset intersection size: for each candidate
// n-gram also present in the reference, the minimum of the two counts.
func matchCount(candCounter, refCounter map[string]int) int {
	matches := 0
	for key, candCnt := range candCounter {
		refCnt, ok := refCounter[key]
		if !ok {
			continue
		}
		if candCnt < refCnt {
			matches += candCnt
		} else {
			matches += refCnt
		}
	}
	return matches
}

// bestStats selects the reference maximizing match count over reference
// count. References with no n-grams contribute a zero ratio. The first
// maximum wins.
func bestStats(stats []refStats) refStats {
	best := refStats{}
	bestRatio := -1.0
	for _, s := range stats {
		ratio := 0.0
		if s.refCount > 0 {
			ratio = float64(s.matchCount) / float64(s.refCount)
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = s
		}
	}
	return best
}
