//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenize

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// punktOnce ensures the English Punkt model is loaded once.
	punktOnce sync.Once
	// punktTokenizer holds the initialized sentence tokenizer instance.
	punktTokenizer *sentences.DefaultSentenceTokenizer
	// punktErr caches any initialization error.
	punktErr error
)

// loadPunktEnglish loads the embedded English Punkt training data.
func loadPunktEnglish() (*sentences.DefaultSentenceTokenizer, error) {
	punktOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			punktErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			punktErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		punktTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if punktErr != nil {
		return nil, punktErr
	}
	return punktTokenizer, nil
}

// PunktTokenizer tokenizes text with the English Punkt sentence model and a
// letter/digit word splitter. It satisfies the Tokenizer contract only; it
// does not replicate the reference tool's normalization, so scores computed
// with it differ numerically from ROUGE-1.5.5.
type PunktTokenizer struct {
	// splitSentences selects whether text is split into Punkt sentences or
	// kept as one sentence.
	splitSentences bool

	tok *sentences.DefaultSentenceTokenizer
}

// NewPunkt creates a tokenizer that treats the whole text as one sentence.
func NewPunkt() (*PunktTokenizer, error) {
	return &PunktTokenizer{}, nil
}

// NewPunktSentences creates a tokenizer that splits text into Punkt sentences.
func NewPunktSentences() (*PunktTokenizer, error) {
	tok, err := loadPunktEnglish()
	if err != nil {
		return nil, err
	}
	return &PunktTokenizer{splitSentences: true, tok: tok}, nil
}

// TokenizeText splits text into sentences and word tokens. Word tokens keep
// their original case; punctuation and whitespace are separators.
func (t *PunktTokenizer) TokenizeText(text string) [][]string {
	var raw []string
	if t.splitSentences {
		for _, sent := range t.tok.Tokenize(text) {
			raw = append(raw, strings.TrimSpace(sent.Text))
		}
	} else {
		raw = []string{text}
	}
	tokenized := make([][]string, 0, len(raw))
	for _, sentence := range raw {
		tokenized = append(tokenized, splitWords(sentence))
	}
	return tokenized
}

// splitWords splits a sentence into maximal runs of letters and digits.
func splitWords(sentence string) []string {
	return strings.FieldsFunc(sentence, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
