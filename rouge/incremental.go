//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"strings"

	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// Session holds incremental recall state across successive text increments.
// Create one with Rouge.ResetIncremental; each NScoreIncremental call extends
// it. A Session belongs to a single logical scoring session and must not be
// shared between concurrent sessions.
//
// Incremental matching deliberately differs from batch scoring: each new
// n-gram occurrence is counted once per reference table containing it, a
// membership test rather than a multiset minimum. Summed over all increments
// of a text this telescopes to the average-mode batch recall numerator.
// Precision, F-score, and best-mode aggregation are not defined here.
type Session struct {
	tok  tokenizerFunc
	maxN int
	// refCounters holds, per n-gram order (index n-1), one n-gram multiset per reference.
	refCounters [][]map[string]int
	// refCounts holds, per n-gram order (index n-1), the summed reference n-gram count.
	refCounts []int
	// prevTokens carries earlier tokens so n-grams spanning an increment
	// boundary can be completed. It starts with maxN-1 empty placeholders;
	// n-grams containing a placeholder never match any reference.
	prevTokens []string
}

// tokenizerFunc adapts the scorer's tokenizer for session use.
type tokenizerFunc func(text string) []string

// ResetIncremental builds a fresh incremental session for the given reference
// texts. Any session from an earlier reset is independent and stale; scores
// must not be mixed across sessions.
func (r *Rouge) ResetIncremental(refTexts []string) *Session {
	refTokens := make([][]string, 0, len(refTexts))
	for _, ref := range refTexts {
		refTokens = append(refTokens, tokenize.Flatten(r.tok.TokenizeText(ref)))
	}

	s := &Session{
		tok: func(text string) []string {
			return tokenize.Flatten(r.tok.TokenizeText(text))
		},
		maxN:        r.maxN,
		refCounters: make([][]map[string]int, r.maxN),
		refCounts:   make([]int, r.maxN),
		prevTokens:  make([]string, r.maxN-1),
	}
	for n := 1; n <= r.maxN; n++ {
		counters := make([]map[string]int, 0, len(refTokens))
		total := 0
		for _, tokens := range refTokens {
			counter := countNGrams(tokens, n)
			counters = append(counters, counter)
			total += totalCount(counter)
		}
		s.refCounters[n-1] = counters
		s.refCounts[n-1] = total
	}
	return s
}

// NScoreIncremental tokenizes one text increment and returns, per n-gram
// order, the recall contributed by the n-grams ending inside the new tokens.
// An increment that contributes no tokens yields results with Valid false.
// Result keys are "ROUGE-1".."ROUGE-N"; recall values are unrounded.
func (s *Session) NScoreIncremental(newText string) map[string]RecallResult {
	results := make(map[string]RecallResult, s.maxN)
	newTokens := s.tok(newText)
	if len(newTokens) == 0 {
		for n := 1; n <= s.maxN; n++ {
			results[metricLabel(n)] = RecallResult{}
		}
		return results
	}

	s.prevTokens = append(s.prevTokens, newTokens...)
	for n := 1; n <= s.maxN; n++ {
		// New n-grams are exactly the size-n windows ending inside the newly
		// appended region.
		window := len(newTokens) + n - 1
		if window > len(s.prevTokens) {
			window = len(s.prevTokens)
		}
		tail := s.prevTokens[len(s.prevTokens)-window:]
		matches := 0
		for i := 0; i+n <= len(tail); i++ {
			key := strings.Join(tail[i:i+n], ngramSep)
			for _, refCounter := range s.refCounters[n-1] {
				if _, ok := refCounter[key]; ok {
					matches++
				}
			}
		}
		recall := 0.0
		if s.refCounts[n-1] > 0 {
			recall = float64(matches) / float64(s.refCounts[n-1])
		}
		results[metricLabel(n)] = RecallResult{R: recall, Valid: true}
	}
	return results
}
