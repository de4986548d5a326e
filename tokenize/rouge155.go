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
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-rouge-go/data"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// exceptionFiles lists the WordNet-2.0 part-of-speech exception tables
// required when stemming is enabled.
var exceptionFiles = []string{"adj.exc", "adv.exc", "noun.exc", "verb.exc"}

// nonWordCharRE matches every character the reference tool erases before
// splitting a sentence into words.
var nonWordCharRE = regexp.MustCompile(`[^A-Za-z0-9-]`)

// Rouge155Tokenizer replicates the text normalization of ROUGE-1.5.5:
// sentence splitting, character filtering, case folding, stopword removal,
// WordNet-exception-aware Porter stemming, and byte/word truncation.
// It is safe for concurrent use once constructed.
type Rouge155Tokenizer struct {
	byteLimit       int
	wordLimit       int
	stemming        bool
	stopwordRemoval bool
	split           SentenceSplit

	// stopwords holds the SMART common-words set; empty unless stopword
	// removal is enabled.
	stopwords map[string]struct{}
	// exceptions maps irregular word forms to the base form that is stemmed
	// instead; empty unless stemming is enabled.
	exceptions map[string]string
}

// rouge155Options holds construction settings for the Rouge155Tokenizer.
type rouge155Options struct {
	byteLimit       int
	wordLimit       int
	stemming        bool
	stopwordRemoval bool
	split           SentenceSplit
	stopwordsPath   string
	exceptionsDir   string
}

// Rouge155Option configures a Rouge155Tokenizer.
type Rouge155Option func(*rouge155Options)

// WithByteLimit keeps only the first n bytes of tokenized text; 0 disables truncation.
func WithByteLimit(n int) Rouge155Option {
	return func(o *rouge155Options) {
		o.byteLimit = n
	}
}

// WithWordLimit keeps only the first n tokens of tokenized text; 0 disables truncation.
func WithWordLimit(n int) Rouge155Option {
	return func(o *rouge155Options) {
		o.wordLimit = n
	}
}

// WithStemming enables or disables Porter stemming with WordNet exceptions.
func WithStemming(stemming bool) Rouge155Option {
	return func(o *rouge155Options) {
		o.stemming = stemming
	}
}

// WithStopwordRemoval enables or disables SMART common-word removal.
func WithStopwordRemoval(removal bool) Rouge155Option {
	return func(o *rouge155Options) {
		o.stopwordRemoval = removal
	}
}

// WithSentenceSplit sets the sentence splitting mode.
func WithSentenceSplit(mode SentenceSplit) Rouge155Option {
	return func(o *rouge155Options) {
		o.split = mode
	}
}

// WithStopwordsPath loads the stopword list from path instead of the embedded
// SMART common-words file.
func WithStopwordsPath(path string) Rouge155Option {
	return func(o *rouge155Options) {
		o.stopwordsPath = path
	}
}

// WithExceptionsDir loads the WordNet exception tables from dir instead of the
// embedded WordNet-2.0-Exceptions files.
func WithExceptionsDir(dir string) Rouge155Option {
	return func(o *rouge155Options) {
		o.exceptionsDir = dir
	}
}

// NewRouge155 creates a reference-compatible tokenizer. Stemming and stopword
// removal are enabled by default and sentences are split per line, matching
// the defaults of the reference tool's tokenization. Data tables are loaded
// once here; a missing or unreadable table is a construction error, so the
// tokenization hot path never touches the filesystem.
func NewRouge155(opt ...Rouge155Option) (*Rouge155Tokenizer, error) {
	opts := &rouge155Options{
		stemming:        true,
		stopwordRemoval: true,
		split:           SplitSPL,
	}
	for _, o := range opt {
		o(opts)
	}
	if err := validateSplit(opts.split); err != nil {
		return nil, err
	}

	t := &Rouge155Tokenizer{
		byteLimit:       opts.byteLimit,
		wordLimit:       opts.wordLimit,
		stemming:        opts.stemming,
		stopwordRemoval: opts.stopwordRemoval,
		split:           opts.split,
	}
	if t.stopwordRemoval {
		stopwords, err := loadStopwords(opts.stopwordsPath)
		if err != nil {
			return nil, err
		}
		t.stopwords = stopwords
	}
	if t.stemming {
		exceptions, err := loadExceptions(opts.exceptionsDir)
		if err != nil {
			return nil, err
		}
		t.exceptions = exceptions
	}
	log.Debugf("rouge155 tokenizer ready: split=%q stem=%t stopwords=%t byteLimit=%d wordLimit=%d",
		t.split, t.stemming, t.stopwordRemoval, t.byteLimit, t.wordLimit)
	return t, nil
}

// loadStopwords reads the stopword list from path, or from the embedded SMART
// common-words file when path is empty.
func loadStopwords(path string) (map[string]struct{}, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = data.Asset("smart_common_words.txt")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load stopword list: %w", err)
	}
	stopwords := make(map[string]struct{})
	for _, line := range strings.Split(string(raw), "\n") {
		stopwords[line] = struct{}{}
	}
	return stopwords, nil
}

// loadExceptions reads the four WordNet part-of-speech exception tables from
// dir, or from the embedded tables when dir is empty. All missing tables are
// reported together.
func loadExceptions(dir string) (map[string]string, error) {
	exceptions := make(map[string]string)
	var merr error
	for _, name := range exceptionFiles {
		var raw []byte
		var err error
		if dir == "" {
			raw, err = data.Asset("WordNet-2.0-Exceptions/" + name)
		} else {
			raw, err = os.ReadFile(filepath.Join(dir, name))
		}
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("load exception table %s: %w", name, err))
			continue
		}
		for _, line := range strings.Split(string(raw), "\n") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			exceptions[fields[0]] = fields[1]
		}
	}
	if merr != nil {
		return nil, merr
	}
	return exceptions, nil
}

// TokenizeText applies the full normalization pipeline and returns a list of
// sentences, each an ordered list of surviving tokens.
func (t *Rouge155Tokenizer) TokenizeText(text string) [][]string {
	sentences := splitSentences(t.split, text)
	tokenized := make([][]string, 0, len(sentences))
	for _, sentence := range sentences {
		words := strings.Fields(normalizeText(sentence))
		tokens := make([]string, 0, len(words))
		for _, word := range words {
			token, keep := t.normalizeWord(word)
			if keep {
				tokens = append(tokens, token)
			}
		}
		tokenized = append(tokenized, tokens)
	}
	if t.byteLimit > 0 {
		tokenized = truncateBytes(tokenized, t.byteLimit)
	}
	if t.wordLimit > 0 {
		tokenized = truncateWords(tokenized, t.wordLimit)
	}
	return tokenized
}

// Stem exposes the configured stemming transformation, consulting the WordNet
// exception tables before applying the Porter rules. It returns word
// unchanged when stemming is disabled.
func (t *Rouge155Tokenizer) Stem(word string) string {
	if !t.stemming {
		return word
	}
	if base, ok := t.exceptions[word]; ok {
		return porterStem(base)
	}
	return porterStem(word)
}

// IsStopword reports whether word is removed by the configured stopword set.
// It always reports false when stopword removal is disabled.
func (t *Rouge155Tokenizer) IsStopword(word string) bool {
	if !t.stopwordRemoval {
		return false
	}
	_, ok := t.stopwords[word]
	return ok
}

// normalizeText applies sentence-level normalization: hyphens are isolated
// with surrounding spaces and every remaining non-alphanumeric,
// non-hyphen character becomes a space.
func normalizeText(sentence string) string {
	sentence = strings.ReplaceAll(sentence, "-", " - ")
	return nonWordCharRE.ReplaceAllString(sentence, " ")
}

// normalizeWord lowercases a raw word and applies, in order, stopword
// removal, the leading-character requirement, and stemming. The second return
// value is false when the word is dropped entirely.
func (t *Rouge155Tokenizer) normalizeWord(word string) (string, bool) {
	word = strings.ToLower(word)
	if t.IsStopword(word) {
		return "", false
	}
	if !validTokenStart(word) {
		return "", false
	}
	if t.stemming {
		word = t.Stem(word)
	}
	if word == "" {
		return "", false
	}
	return word, true
}

// validTokenStart reports whether the word starts with a lowercase letter, a
// digit, or '$'.
func validTokenStart(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '$'
}

// truncateBytes keeps sentences until the UTF-8 byte length of their
// concatenated tokens reaches limit. The sentence that crosses the limit is
// cut token by token, and the crossing token is cut to the remaining byte
// budget without splitting a multi-byte character.
func truncateBytes(tokenized [][]string, limit int) [][]string {
	byteLen := 0
	truncated := make([][]string, 0, len(tokenized))
	for _, sentence := range tokenized {
		sentenceLen := 0
		for _, token := range sentence {
			sentenceLen += len(token)
		}
		if byteLen+sentenceLen > limit {
			kept := make([]string, 0, len(sentence))
			for _, token := range sentence {
				if byteLen+len(token) >= limit {
					kept = append(kept, cutToken(token, limit-byteLen))
					truncated = append(truncated, kept)
					byteLen = limit
					break
				}
				kept = append(kept, token)
				byteLen += len(token)
			}
		} else {
			truncated = append(truncated, sentence)
			byteLen += sentenceLen
		}
		if byteLen == limit {
			break
		}
	}
	return truncated
}

// cutToken cuts token to at most budget bytes, dropping any trailing partial
// multi-byte character.
func cutToken(token string, budget int) string {
	if budget >= len(token) {
		return token
	}
	cut := token[:budget]
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size > 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}

// truncateWords keeps sentences until the token count reaches limit. The
// sentence that crosses the limit keeps only its first remaining tokens.
func truncateWords(tokenized [][]string, limit int) [][]string {
	wordLen := 0
	truncated := make([][]string, 0, len(tokenized))
	for _, sentence := range tokenized {
		if wordLen+len(sentence) > limit {
			truncated = append(truncated, sentence[:limit-wordLen])
			wordLen = limit
		} else {
			truncated = append(truncated, sentence)
			wordLen += len(sentence)
		}
		if wordLen == limit {
			break
		}
	}
	return truncated
}
