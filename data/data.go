//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package data embeds the ROUGE-1.5.5 data files used by the default
// tokenizer: the SMART common-words stopword list and the WordNet-2.0
// stemming exception tables.
package data

import "embed"

//go:embed smart_common_words.txt WordNet-2.0-Exceptions
var dataFS embed.FS

// Asset returns an embedded data file by its ROUGE data-directory name,
// for example "smart_common_words.txt" or "WordNet-2.0-Exceptions/noun.exc".
func Asset(name string) ([]byte, error) {
	return dataFS.ReadFile(name)
}
