//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"path/filepath"

	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// Rouge155Args mirrors the ROUGE-1.5.5 command-line flags. Fields marked as
// accepted-only are recognized for flag compatibility but have no effect;
// the features they control (ROUGE-L/W, skip-bigram, BE scoring, bootstrap
// resampling, file integration) are not implemented.
type Rouge155Args struct {
	// ByteLimit (-b) keeps only the first n bytes of each summary; 0 is unlimited.
	ByteLimit int
	// WordLimit (-l) keeps only the first n words of each summary; 0 is unlimited.
	WordLimit int
	// Stemming (-m) stems summaries with the Porter stemmer before scoring.
	Stemming bool
	// StopwordRemoval (-s) removes stopwords from summaries before scoring.
	StopwordRemoval bool
	// MaxN (-n) computes ROUGE-1 up to ROUGE-MaxN.
	MaxN int
	// Scoring (-f) selects the scoring formula: "A" model average, "B" best model.
	Scoring Scoring
	// Alpha (-p) is the relative recall/precision importance for the F-score.
	Alpha float64

	// SkipRougeL (-x) is accepted only.
	SkipRougeL bool
	// ConfidenceInterval (-c) is accepted only.
	ConfidenceInterval float64
	// SamplingPoints (-r) is accepted only.
	SamplingPoints int
	// PerEvaluationAverage (-d) is accepted only.
	PerEvaluationAverage bool
	// Verbose (-v) is accepted only.
	Verbose bool
	// WeightedLCS (-w) is accepted only.
	WeightedLCS float64
	// DataDir (-e) overrides the directory holding the stopword list and
	// WordNet exception tables; empty uses the embedded data files.
	DataDir string
	// ConfigFormat (-z) is accepted only.
	ConfigFormat string
	// BasicElements (-t) is accepted only.
	BasicElements string
}

// DefaultRouge155Args returns the ROUGE-1.5.5 defaults: no truncation, no
// stemming, no stopword removal, ROUGE-1..4, model-average scoring, alpha 0.5.
func DefaultRouge155Args() Rouge155Args {
	return Rouge155Args{
		MaxN:                 4,
		Scoring:              ScoringAverage,
		Alpha:                0.5,
		ConfidenceInterval:   0.95,
		SamplingPoints:       1000,
		PerEvaluationAverage: true,
	}
}

// FromRouge155Args creates a scorer with a reference-compatible tokenizer
// configured from ROUGE-1.5.5 style arguments. Sentences are split per line.
func FromRouge155Args(args Rouge155Args) (*Rouge, error) {
	tokOpts := []tokenize.Rouge155Option{
		tokenize.WithByteLimit(args.ByteLimit),
		tokenize.WithWordLimit(args.WordLimit),
		tokenize.WithStemming(args.Stemming),
		tokenize.WithStopwordRemoval(args.StopwordRemoval),
		tokenize.WithSentenceSplit(tokenize.SplitSPL),
	}
	if args.DataDir != "" {
		tokOpts = append(tokOpts,
			tokenize.WithStopwordsPath(filepath.Join(args.DataDir, "smart_common_words.txt")),
			tokenize.WithExceptionsDir(filepath.Join(args.DataDir, "WordNet-2.0-Exceptions")),
		)
	}
	tok, err := tokenize.NewRouge155(tokOpts...)
	if err != nil {
		return nil, err
	}
	return New(tok,
		WithMaxN(args.MaxN),
		WithScoring(args.Scoring),
		WithAlpha(args.Alpha),
	)
}
