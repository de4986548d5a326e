//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Command rougescore computes ROUGE-N scores for a candidate summary file
// against one or more reference summary files, using flag letters compatible
// with the ROUGE-1.5.5 script.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

var args = rouge.DefaultRouge155Args()

var scoringFlag = string(rouge.ScoringAverage)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rougescore CANDIDATE REFERENCE [REFERENCE...]",
		Short: "Compute ROUGE-N scores compatible with ROUGE-1.5.5",
		Args:  cobra.MinimumNArgs(2),
		RunE:  run,
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&args.ByteLimit, "byte-limit", "b", args.ByteLimit,
		"only use the first n bytes of each summary (0 = unlimited)")
	flags.IntVarP(&args.WordLimit, "word-limit", "l", args.WordLimit,
		"only use the first n words of each summary (0 = unlimited)")
	flags.BoolVarP(&args.Stemming, "stemming", "m", args.Stemming,
		"stem summaries with the Porter stemmer before scoring")
	flags.BoolVarP(&args.StopwordRemoval, "stopword-removal", "s", args.StopwordRemoval,
		"remove stopwords from summaries before scoring")
	flags.IntVarP(&args.MaxN, "max-n", "n", args.MaxN,
		"compute ROUGE-1 up to ROUGE-n")
	flags.StringVarP(&scoringFlag, "scoring", "f", scoringFlag,
		"scoring formula: 'A' model average, 'B' best model")
	flags.Float64VarP(&args.Alpha, "alpha", "p", args.Alpha,
		"relative recall/precision importance for the F-score")
	flags.StringVarP(&args.DataDir, "data-dir", "e", args.DataDir,
		"directory with the stopword list and WordNet exception tables (empty = embedded)")

	// Accepted for ROUGE-1.5.5 flag compatibility; these features are not implemented.
	flags.BoolVarP(&args.SkipRougeL, "skip-rouge-l", "x", args.SkipRougeL, "accepted, no effect")
	flags.Float64VarP(&args.ConfidenceInterval, "confidence", "c", args.ConfidenceInterval, "accepted, no effect")
	flags.IntVarP(&args.SamplingPoints, "sampling-points", "r", args.SamplingPoints, "accepted, no effect")
	flags.BoolVarP(&args.PerEvaluationAverage, "per-evaluation", "d", args.PerEvaluationAverage, "accepted, no effect")
	flags.BoolVarP(&args.Verbose, "verbose", "v", args.Verbose, "accepted, no effect")
	flags.Float64VarP(&args.WeightedLCS, "weighted-lcs", "w", args.WeightedLCS, "accepted, no effect")
	flags.StringVarP(&args.ConfigFormat, "config-format", "z", args.ConfigFormat, "accepted, no effect")
	flags.StringVarP(&args.BasicElements, "basic-elements", "t", args.BasicElements, "accepted, no effect")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, fileArgs []string) error {
	args.Scoring = rouge.Scoring(scoringFlag)
	scorer, err := rouge.FromRouge155Args(args)
	if err != nil {
		return err
	}

	candidate, err := os.ReadFile(fileArgs[0])
	if err != nil {
		return fmt.Errorf("read candidate file: %w", err)
	}
	references := make([]string, 0, len(fileArgs)-1)
	for _, path := range fileArgs[1:] {
		ref, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read reference file: %w", err)
		}
		references = append(references, string(ref))
	}

	scores, err := scorer.NScore(cmd.Context(), references, string(candidate))
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return ngramOrder(labels[i]) < ngramOrder(labels[j])
	})
	for _, label := range labels {
		s := scores[label]
		fmt.Printf("%s R:%.5f P:%.5f F:%.5f\n", label, s.R, s.P, s.F)
	}
	return nil
}

// ngramOrder extracts n from a "ROUGE-n" label for sorting.
func ngramOrder(label string) int {
	n := 0
	fmt.Sscanf(strings.TrimPrefix(label, "ROUGE-"), "%d", &n)
	return n
}
