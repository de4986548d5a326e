//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package tokenize turns raw text into tokenized sentences for ROUGE scoring.
//
// The default Rouge155Tokenizer replicates the normalization pipeline of the
// ROUGE-1.5.5 reference tool so that downstream scores are numerically
// compatible with it. Alternative tokenizers only have to satisfy the
// Tokenizer contract; their scores will differ from the reference tool.
package tokenize

// Tokenizer tokenizes raw text into sentences of word tokens.
type Tokenizer interface {
	// TokenizeText splits text into sentences, each an ordered list of tokens.
	TokenizeText(text string) [][]string
}

// Flatten erases sentence boundaries and returns the token stream of a
// tokenized text in order.
func Flatten(sentences [][]string) []string {
	total := 0
	for _, s := range sentences {
		total += len(s)
	}
	tokens := make([]string, 0, total)
	for _, s := range sentences {
		tokens = append(tokens, s...)
	}
	return tokens
}
