//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPunktTokenizer_WholeText verifies the single-sentence mode.
func TestPunktTokenizer_WholeText(t *testing.T) {
	tokenizer, err := NewPunkt()
	require.NoError(t, err)

	tokenized := tokenizer.TokenizeText("The quick brown fox. It jumps over the lazy dog.")
	require.Len(t, tokenized, 1)
	assert.Equal(t, []string{
		"The", "quick", "brown", "fox",
		"It", "jumps", "over", "the", "lazy", "dog",
	}, tokenized[0])
}

// TestPunktTokenizer_Sentences verifies Punkt sentence boundary detection,
// including abbreviations that must not end a sentence.
func TestPunktTokenizer_Sentences(t *testing.T) {
	tokenizer, err := NewPunktSentences()
	require.NoError(t, err)

	tokenized := tokenizer.TokenizeText("Dr. Smith went home. She was tired.")
	require.Len(t, tokenized, 2)
	assert.Equal(t, []string{"Dr", "Smith", "went", "home"}, tokenized[0])
	assert.Equal(t, []string{"She", "was", "tired"}, tokenized[1])
}

// TestSplitWords verifies that punctuation and whitespace separate word runs.
func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"it", "s", "a", "test"}, splitWords("it's a test."))
	assert.Empty(t, splitWords("..."))
}
