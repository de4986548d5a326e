//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenize

import "strings"

// porterStem applies the Porter stemming algorithm with Martin Porter's
// published extensions (MARTIN_EXTENSIONS) to an ASCII word. This is the
// variant the ROUGE-1.5.5 MorphStem step relies on, so words such as "dies"
// stem to "di" rather than the NLTK-extension "die".
func porterStem(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	s := porterStemmer{}
	word = s.step1a(word)
	word = s.step1b(word)
	word = s.step1c(word)
	word = s.step2(word)
	word = s.step3(word)
	word = s.step4(word)
	word = s.step5a(word)
	word = s.step5b(word)
	return word
}

// porterStemmer implements the MARTIN_EXTENSIONS Porter stemming rules.
type porterStemmer struct{}

// isConsonant reports whether the character at i is a consonant under the Porter rules.
func (s porterStemmer) isConsonant(word string, i int) bool {
	if i < 0 || i >= len(word) {
		return false
	}
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !s.isConsonant(word, i-1)
	default:
		return true
	}
}

// containsVowel reports whether the string contains a vowel under the Porter rules.
func (s porterStemmer) containsVowel(stem string) bool {
	for i := 0; i < len(stem); i++ {
		if !s.isConsonant(stem, i) {
			return true
		}
	}
	return false
}

// measure computes the Porter "m" measure for the string.
func (s porterStemmer) measure(stem string) int {
	if stem == "" {
		return 0
	}
	m := 0
	prevWasVowel := false
	for i := 0; i < len(stem); i++ {
		if s.isConsonant(stem, i) {
			if prevWasVowel {
				m++
			}
			prevWasVowel = false
			continue
		}
		prevWasVowel = true
	}
	return m
}

// hasPositiveMeasure reports whether the string has a Porter measure greater than zero.
func (s porterStemmer) hasPositiveMeasure(stem string) bool {
	return s.measure(stem) > 0
}

// endsDoubleConsonant reports whether the string ends with a double consonant.
func (s porterStemmer) endsDoubleConsonant(word string) bool {
	if len(word) < 2 {
		return false
	}
	if word[len(word)-1] != word[len(word)-2] {
		return false
	}
	return s.isConsonant(word, len(word)-1)
}

// endsCVC reports whether the string ends with a consonant-vowel-consonant
// pattern whose final consonant is not w, x, or y. Two-letter words never
// qualify; that extra clause belongs to the NLTK-extensions variant only.
func (s porterStemmer) endsCVC(word string) bool {
	if len(word) < 3 {
		return false
	}
	last := word[len(word)-1]
	return s.isConsonant(word, len(word)-3) &&
		!s.isConsonant(word, len(word)-2) &&
		s.isConsonant(word, len(word)-1) &&
		last != 'w' && last != 'x' && last != 'y'
}

// replaceSuffix replaces a suffix with a replacement and returns the updated string.
func (s porterStemmer) replaceSuffix(word, suffix, replacement string) string {
	if suffix == "" {
		return word + replacement
	}
	if !strings.HasSuffix(word, suffix) {
		return word
	}
	return word[:len(word)-len(suffix)] + replacement
}

// porterRule represents a suffix replacement rule with an optional stem condition.
type porterRule struct {
	// suffix is the matched suffix; "*d" matches a trailing double consonant.
	suffix string
	// replacement is appended after removing suffix.
	replacement string
	// condition is checked against the stem before replacement.
	condition func(stem string) bool
}

// applyRuleList applies the first matching rule and returns the transformed word.
func (s porterStemmer) applyRuleList(word string, rules []porterRule) string {
	for _, rule := range rules {
		if rule.suffix == "*d" {
			if !s.endsDoubleConsonant(word) {
				continue
			}
			stem := word[:len(word)-2]
			if rule.condition == nil || rule.condition(stem) {
				return stem + rule.replacement
			}
			return word
		}

		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := s.replaceSuffix(word, rule.suffix, "")
		if rule.condition == nil || rule.condition(stem) {
			return stem + rule.replacement
		}
		return word
	}
	return word
}

// step1a applies Porter step 1a rules.
func (s porterStemmer) step1a(word string) string {
	return s.applyRuleList(word, []porterRule{
		{suffix: "sses", replacement: "ss"},
		{suffix: "ies", replacement: "i"},
		{suffix: "ss", replacement: "ss"},
		{suffix: "s", replacement: ""},
	})
}

// step1b applies Porter step 1b rules.
func (s porterStemmer) step1b(word string) string {
	if strings.HasSuffix(word, "eed") {
		stem := s.replaceSuffix(word, "eed", "")
		if s.measure(stem) > 0 {
			return stem + "ee"
		}
		return word
	}

	removed := false
	intermediateStem := ""
	for _, suffix := range []string{"ed", "ing"} {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		candidateStem := s.replaceSuffix(word, suffix, "")
		if s.containsVowel(candidateStem) {
			intermediateStem = candidateStem
			removed = true
			break
		}
	}
	if !removed {
		return word
	}

	last := intermediateStem[len(intermediateStem)-1:]
	return s.applyRuleList(intermediateStem, []porterRule{
		{suffix: "at", replacement: "ate"},
		{suffix: "bl", replacement: "ble"},
		{suffix: "iz", replacement: "ize"},
		{
			suffix:      "*d",
			replacement: last,
			condition: func(stem string) bool {
				ch := intermediateStem[len(intermediateStem)-1]
				return ch != 'l' && ch != 's' && ch != 'z'
			},
		},
		{
			suffix:      "",
			replacement: "e",
			condition: func(stem string) bool {
				return s.measure(stem) == 1 && s.endsCVC(stem)
			},
		},
	})
}

// step1c applies Porter step 1c rules.
func (s porterStemmer) step1c(word string) string {
	return s.applyRuleList(word, []porterRule{
		{
			suffix:      "y",
			replacement: "i",
			condition: func(stem string) bool {
				return s.containsVowel(stem)
			},
		},
	})
}

// step2 applies Porter step 2 rules.
func (s porterStemmer) step2(word string) string {
	hasPositive := func(stem string) bool { return s.hasPositiveMeasure(stem) }
	return s.applyRuleList(word, []porterRule{
		{suffix: "ational", replacement: "ate", condition: hasPositive},
		{suffix: "tional", replacement: "tion", condition: hasPositive},
		{suffix: "enci", replacement: "ence", condition: hasPositive},
		{suffix: "anci", replacement: "ance", condition: hasPositive},
		{suffix: "izer", replacement: "ize", condition: hasPositive},
		{suffix: "bli", replacement: "ble", condition: hasPositive},
		{suffix: "alli", replacement: "al", condition: hasPositive},
		{suffix: "entli", replacement: "ent", condition: hasPositive},
		{suffix: "eli", replacement: "e", condition: hasPositive},
		{suffix: "ousli", replacement: "ous", condition: hasPositive},
		{suffix: "ization", replacement: "ize", condition: hasPositive},
		{suffix: "ation", replacement: "ate", condition: hasPositive},
		{suffix: "ator", replacement: "ate", condition: hasPositive},
		{suffix: "alism", replacement: "al", condition: hasPositive},
		{suffix: "iveness", replacement: "ive", condition: hasPositive},
		{suffix: "fulness", replacement: "ful", condition: hasPositive},
		{suffix: "ousness", replacement: "ous", condition: hasPositive},
		{suffix: "aliti", replacement: "al", condition: hasPositive},
		{suffix: "iviti", replacement: "ive", condition: hasPositive},
		{suffix: "biliti", replacement: "ble", condition: hasPositive},
		{suffix: "logi", replacement: "log", condition: hasPositive},
	})
}

// step3 applies Porter step 3 rules.
func (s porterStemmer) step3(word string) string {
	hasPositive := func(stem string) bool { return s.hasPositiveMeasure(stem) }
	return s.applyRuleList(word, []porterRule{
		{suffix: "icate", replacement: "ic", condition: hasPositive},
		{suffix: "ative", replacement: "", condition: hasPositive},
		{suffix: "alize", replacement: "al", condition: hasPositive},
		{suffix: "iciti", replacement: "ic", condition: hasPositive},
		{suffix: "ical", replacement: "ic", condition: hasPositive},
		{suffix: "ful", replacement: "", condition: hasPositive},
		{suffix: "ness", replacement: "", condition: hasPositive},
	})
}

// step4 applies Porter step 4 rules.
func (s porterStemmer) step4(word string) string {
	measureGT1 := func(stem string) bool { return s.measure(stem) > 1 }
	return s.applyRuleList(word, []porterRule{
		{suffix: "al", replacement: "", condition: measureGT1},
		{suffix: "ance", replacement: "", condition: measureGT1},
		{suffix: "ence", replacement: "", condition: measureGT1},
		{suffix: "er", replacement: "", condition: measureGT1},
		{suffix: "ic", replacement: "", condition: measureGT1},
		{suffix: "able", replacement: "", condition: measureGT1},
		{suffix: "ible", replacement: "", condition: measureGT1},
		{suffix: "ant", replacement: "", condition: measureGT1},
		{suffix: "ement", replacement: "", condition: measureGT1},
		{suffix: "ment", replacement: "", condition: measureGT1},
		{suffix: "ent", replacement: "", condition: measureGT1},
		{
			suffix:      "ion",
			replacement: "",
			condition: func(stem string) bool {
				return s.measure(stem) > 1 && len(stem) > 0 && (stem[len(stem)-1] == 's' || stem[len(stem)-1] == 't')
			},
		},
		{suffix: "ou", replacement: "", condition: measureGT1},
		{suffix: "ism", replacement: "", condition: measureGT1},
		{suffix: "ate", replacement: "", condition: measureGT1},
		{suffix: "iti", replacement: "", condition: measureGT1},
		{suffix: "ous", replacement: "", condition: measureGT1},
		{suffix: "ive", replacement: "", condition: measureGT1},
		{suffix: "ize", replacement: "", condition: measureGT1},
	})
}

// step5a applies Porter step 5a rules.
func (s porterStemmer) step5a(word string) string {
	if strings.HasSuffix(word, "e") {
		stem := s.replaceSuffix(word, "e", "")
		m := s.measure(stem)
		if m > 1 {
			return stem
		}
		if m == 1 && !s.endsCVC(stem) {
			return stem
		}
	}
	return word
}

// step5b applies Porter step 5b rules.
func (s porterStemmer) step5b(word string) string {
	return s.applyRuleList(word, []porterRule{
		{
			suffix:      "ll",
			replacement: "l",
			condition: func(stem string) bool {
				return s.measure(word[:len(word)-1]) > 1
			},
		},
	})
}
