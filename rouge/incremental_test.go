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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNScoreIncremental_Telescoping verifies that per-increment recall sums to
// the average-mode batch recall over the whole candidate.
func TestNScoreIncremental_Telescoping(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(2))
	require.NoError(t, err)

	refs := []string{"the quick brown fox jumps over the lazy dog"}
	increments := []string{"the quick brown fox", "leaps over the lazy dog"}

	session := scorer.ResetIncremental(refs)
	sums := make(map[string]float64)
	for _, increment := range increments {
		results := session.NScoreIncremental(increment)
		for label, result := range results {
			require.True(t, result.Valid)
			sums[label] += result.R
		}
	}

	batch, err := scorer.NScore(context.Background(), refs, strings.Join(increments, " "))
	require.NoError(t, err)
	require.Len(t, sums, 2)
	for label, sum := range sums {
		assert.InDelta(t, batch[label].R, sum, 1e-4, label)
	}
}

// TestNScoreIncremental_BoundarySpanning verifies n-grams straddling an
// increment boundary are credited to the increment that completes them.
func TestNScoreIncremental_BoundarySpanning(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(2))
	require.NoError(t, err)

	session := scorer.ResetIncremental([]string{"the quick brown fox"})

	// First increment: bigrams "the quick" and "quick brown" match; the
	// leading placeholder pair does not.
	results := session.NScoreIncremental("the quick brown")
	require.True(t, results["ROUGE-2"].Valid)
	assert.InDelta(t, 2.0/3.0, results["ROUGE-2"].R, 1e-12)

	// Second increment completes "brown fox" across the boundary.
	results = session.NScoreIncremental("fox")
	require.True(t, results["ROUGE-2"].Valid)
	assert.InDelta(t, 1.0/3.0, results["ROUGE-2"].R, 1e-12)
}

// TestNScoreIncremental_EmptyIncrement verifies increments contributing no
// tokens yield invalid results and do not disturb session state.
func TestNScoreIncremental_EmptyIncrement(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(2))
	require.NoError(t, err)

	session := scorer.ResetIncremental([]string{"the quick brown fox"})

	for _, increment := range []string{"", "..."} {
		results := session.NScoreIncremental(increment)
		require.Len(t, results, 2)
		for label, result := range results {
			assert.False(t, result.Valid, label)
			assert.Zero(t, result.R, label)
		}
	}

	// State is unchanged: the next real increment scores as if it were first.
	results := session.NScoreIncremental("the quick")
	require.True(t, results["ROUGE-1"].Valid)
	assert.InDelta(t, 0.5, results["ROUGE-1"].R, 1e-12)
}

// TestResetIncremental_FreshState verifies a new session discards prior
// increments.
func TestResetIncremental_FreshState(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(1))
	require.NoError(t, err)
	refs := []string{"a b c d"}

	first := scorer.ResetIncremental(refs)
	initial := first.NScoreIncremental("a b")
	_ = first.NScoreIncremental("c d")

	second := scorer.ResetIncremental(refs)
	assert.Equal(t, initial, second.NScoreIncremental("a b"))
}

// TestNScoreIncremental_MultipleReferences verifies an n-gram is credited once
// per reference containing it.
func TestNScoreIncremental_MultipleReferences(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(1))
	require.NoError(t, err)

	// "a" appears in both references; pooled reference count is 4.
	session := scorer.ResetIncremental([]string{"a b", "a c"})
	results := session.NScoreIncremental("a")
	require.True(t, results["ROUGE-1"].Valid)
	assert.InDelta(t, 0.5, results["ROUGE-1"].R, 1e-12)
}

// TestNScoreIncremental_NoReferenceNGrams verifies the recall zero guard when
// the references contribute no n-grams of a given order.
func TestNScoreIncremental_NoReferenceNGrams(t *testing.T) {
	scorer, err := New(plainTokenizer(t), WithMaxN(2))
	require.NoError(t, err)

	// Single-token references have no bigrams.
	session := scorer.ResetIncremental([]string{"a"})
	results := session.NScoreIncremental("a b")
	require.True(t, results["ROUGE-2"].Valid)
	assert.Zero(t, results["ROUGE-2"].R)
	assert.InDelta(t, 1.0, results["ROUGE-1"].R, 1e-12)
}
