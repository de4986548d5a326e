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
	"regexp"
	"strings"
)

// SentenceSplit selects how the Rouge155Tokenizer splits text into sentences.
// The mode names follow the ROUGE-1.5.5 evaluation config formats.
type SentenceSplit string

const (
	// SplitNone treats the whole text as a single sentence.
	SplitNone SentenceSplit = ""
	// SplitSPL splits text into one sentence per line.
	SplitSPL SentenceSplit = "SPL"
	// SplitSEE extracts sentence text from SEE anchor-tag markup.
	SplitSEE SentenceSplit = "SEE"
	// SplitISI is declared for config compatibility but not implemented.
	SplitISI SentenceSplit = "ISI"
	// SplitSimple is declared for config compatibility but not implemented.
	SplitSimple SentenceSplit = "SIMPLE"
)

// seeAnchorRE matches SEE sentence anchors. The sentence text is carried by
// the last capture group, mirroring the reference tool's pattern.
var seeAnchorRE = regexp.MustCompile(
	`<a size="[0-9]+" name="[0-9]+">\[[0-9]+\]</a>\s+<a href="#[0-9]+" id=[0-9]+>([^<]+)` +
		`|<a name="[0-9]+">\[[0-9]+\]</a>\s+<a href="#[0-9]+" id=[0-9]+>([^<]+)`)

// validateSplit checks that the sentence split mode is recognized and
// implemented. Declared-but-unimplemented modes fail here so that a
// misconfigured tokenizer is rejected at construction, never at scoring time.
func validateSplit(mode SentenceSplit) error {
	switch mode {
	case SplitNone, SplitSPL, SplitSEE:
		return nil
	case SplitISI, SplitSimple:
		return fmt.Errorf("sentence split mode %q is not implemented", mode)
	default:
		return fmt.Errorf("invalid sentence split mode %q", mode)
	}
}

// splitSentences splits text into sentence strings using the given mode.
func splitSentences(mode SentenceSplit, text string) []string {
	switch mode {
	case SplitSPL:
		return strings.Split(text, "\n")
	case SplitSEE:
		matches := seeAnchorRE.FindAllStringSubmatch(text, -1)
		sentences := make([]string, 0, len(matches))
		for _, m := range matches {
			sentences = append(sentences, m[len(m)-1])
		}
		return sentences
	default:
		return []string{text}
	}
}
