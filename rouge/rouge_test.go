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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// plainTokenizer builds a tokenizer without stemming or stopword removal so
// score expectations can be computed by hand.
func plainTokenizer(t *testing.T) *tokenize.Rouge155Tokenizer {
	t.Helper()
	tok, err := tokenize.NewRouge155(
		tokenize.WithStemming(false),
		tokenize.WithStopwordRemoval(false),
	)
	require.NoError(t, err)
	return tok
}

// TestNew_Validation verifies construction rejects bad configuration.
func TestNew_Validation(t *testing.T) {
	tok := plainTokenizer(t)

	_, err := New(nil)
	assert.ErrorContains(t, err, "tokenizer is nil")

	_, err = New(tok, WithMaxN(0))
	assert.ErrorContains(t, err, "max n-gram order")

	_, err = New(tok, WithScoring(Scoring("X")))
	assert.ErrorContains(t, err, "invalid scoring mode")

	_, err = New(tok, WithAlpha(1.5))
	assert.ErrorContains(t, err, "alpha must be in [0, 1]")

	_, err = New(tok, WithAlpha(-0.1))
	assert.ErrorContains(t, err, "alpha must be in [0, 1]")
}

// TestNScore_MultisetMatching verifies repeated n-grams match up to the
// minimum of candidate and reference counts.
func TestNScore_MultisetMatching(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(1))
	require.NoError(t, err)

	// "a" matches min(2, 1)=1 times, "b" matches min(1, 2)=1 times.
	results, err := scorer.NScore(context.Background(), []string{"a b b"}, "a a b")
	require.NoError(t, err)
	require.Contains(t, results, "ROUGE-1")
	assert.InDelta(t, 0.66667, results["ROUGE-1"].R, 1e-12)
	assert.InDelta(t, 0.66667, results["ROUGE-1"].P, 1e-12)
	assert.InDelta(t, 0.66667, results["ROUGE-1"].F, 1e-12)
}

// TestNScore_Bigrams verifies bigram counting over the flattened token stream.
func TestNScore_Bigrams(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(2))
	require.NoError(t, err)

	results, err := scorer.NScore(context.Background(), []string{"the cat ran"}, "the cat sat")
	require.NoError(t, err)
	assert.InDelta(t, 0.66667, results["ROUGE-1"].F, 1e-12)
	// Only "the cat" matches out of two bigrams on each side.
	assert.InDelta(t, 0.5, results["ROUGE-2"].R, 1e-12)
	assert.InDelta(t, 0.5, results["ROUGE-2"].P, 1e-12)
	assert.InDelta(t, 0.5, results["ROUGE-2"].F, 1e-12)
}

// TestNScore_AverageVsBest verifies the two reference aggregation modes
// diverge on references of different lengths.
func TestNScore_AverageVsBest(t *testing.T) {
	tok := plainTokenizer(t)
	refs := []string{"a a a a", "a"}

	average, err := New(tok, WithMaxN(1), WithScoring(ScoringAverage))
	require.NoError(t, err)
	results, err := average.NScore(context.Background(), refs, "a a")
	require.NoError(t, err)
	// Pooled: matches 2+1=3, reference count 4+1=5, candidate count 2+2=4.
	assert.InDelta(t, 0.6, results["ROUGE-1"].R, 1e-12)
	assert.InDelta(t, 0.75, results["ROUGE-1"].P, 1e-12)
	assert.InDelta(t, 0.66667, results["ROUGE-1"].F, 1e-12)

	best, err := New(tok, WithMaxN(1), WithScoring(ScoringBest))
	require.NoError(t, err)
	results, err = best.NScore(context.Background(), refs, "a a")
	require.NoError(t, err)
	// The single-token reference wins with ratio 1/1 over 2/4.
	assert.InDelta(t, 1.0, results["ROUGE-1"].R, 1e-12)
	assert.InDelta(t, 0.5, results["ROUGE-1"].P, 1e-12)
}

// TestNScore_Alpha verifies the F-score weighting at its extremes: alpha 1
// yields precision, alpha 0 yields recall.
func TestNScore_Alpha(t *testing.T) {
	tok := plainTokenizer(t)
	refs := []string{"a b c d"}

	precisionOnly, err := New(tok, WithMaxN(1), WithAlpha(1))
	require.NoError(t, err)
	results, err := precisionOnly.NScore(context.Background(), refs, "a b")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, results["ROUGE-1"].F, 1e-12)

	recallOnly, err := New(tok, WithMaxN(1), WithAlpha(0))
	require.NoError(t, err)
	results, err = recallOnly.NScore(context.Background(), refs, "a b")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, results["ROUGE-1"].F, 1e-12)

	balanced, err := New(tok, WithMaxN(1), WithAlpha(0.5))
	require.NoError(t, err)
	results, err = balanced.NScore(context.Background(), refs, "a b")
	require.NoError(t, err)
	assert.InDelta(t, 0.66667, results["ROUGE-1"].F, 1e-12)
}

// TestNScore_NoMatches verifies the F-score zero guard when nothing matches.
func TestNScore_NoMatches(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(1))
	require.NoError(t, err)

	results, err := scorer.NScore(context.Background(), []string{"p q"}, "x y")
	require.NoError(t, err)
	assert.Equal(t, Scores{}, results["ROUGE-1"])
}

// TestNScore_EmptyCandidate verifies an empty candidate scores zero without error.
func TestNScore_EmptyCandidate(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(2))
	require.NoError(t, err)

	results, err := scorer.NScore(context.Background(), []string{"a b"}, "")
	require.NoError(t, err)
	assert.Equal(t, Scores{}, results["ROUGE-1"])
	assert.Equal(t, Scores{}, results["ROUGE-2"])
}

// TestNScore_ShortTokens verifies orders longer than the token streams score
// zero instead of failing.
func TestNScore_ShortTokens(t *testing.T) {
	scorer, err := New(plainTokenizer(t))
	require.NoError(t, err)

	results, err := scorer.NScore(context.Background(), []string{"a"}, "a")
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.InDelta(t, 1.0, results["ROUGE-1"].F, 1e-12)
	for _, label := range []string{"ROUGE-2", "ROUGE-3", "ROUGE-4"} {
		assert.Equal(t, Scores{}, results[label], label)
	}
}

// TestNScore_InputErrors verifies context and argument validation.
func TestNScore_InputErrors(t *testing.T) {
	scorer, err := New(plainTokenizer(t))
	require.NoError(t, err)

	//nolint:staticcheck // verifying explicit nil context rejection.
	_, err = scorer.NScore(nil, []string{"a"}, "a")
	assert.ErrorContains(t, err, "context is nil")

	_, err = scorer.NScore(context.Background(), nil, "a")
	assert.ErrorContains(t, err, "reference texts are empty")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = scorer.NScore(ctx, []string{"a"}, "a")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestNScore_Deterministic verifies repeated scoring yields identical results.
func TestNScore_Deterministic(t *testing.T) {
	scorer, err := New(plainTokenizer(t))
	require.NoError(t, err)

	refs := []string{"the quick brown fox", "a lazy dog sleeps"}
	cand := "the quick dog sleeps"
	first, err := scorer.NScore(context.Background(), refs, cand)
	require.NoError(t, err)
	second, err := scorer.NScore(context.Background(), refs, cand)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestRound5 verifies reported scores are rounded to five decimal digits.
func TestRound5(t *testing.T) {
	assert.InDelta(t, 0.66667, round5(2.0/3.0), 1e-12)
	assert.InDelta(t, 0.33333, round5(1.0/3.0), 1e-12)
	assert.InDelta(t, 0.5, round5(0.5), 1e-12)
	assert.InDelta(t, 1.0, round5(1.0), 1e-12)
}

// TestFromRouge155Args verifies the flag-style constructor wires defaults
// through to scoring.
func TestFromRouge155Args(t *testing.T) {
	scorer, err := FromRouge155Args(DefaultRouge155Args())
	require.NoError(t, err)

	results, err := scorer.NScore(context.Background(), []string{"the cat sat"}, "the cat sat")
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.InDelta(t, 1.0, results["ROUGE-1"].F, 1e-12)
	assert.InDelta(t, 1.0, results["ROUGE-3"].F, 1e-12)
	// Three tokens yield no 4-grams.
	assert.Equal(t, Scores{}, results["ROUGE-4"])
}

// TestFromRouge155Args_Errors verifies bad flag values fail construction.
func TestFromRouge155Args_Errors(t *testing.T) {
	args := DefaultRouge155Args()
	args.Scoring = Scoring("X")
	_, err := FromRouge155Args(args)
	assert.ErrorContains(t, err, "invalid scoring mode")

	args = DefaultRouge155Args()
	args.Stemming = true
	args.DataDir = "/nonexistent"
	_, err = FromRouge155Args(args)
	assert.ErrorContains(t, err, "load exception table")
}
