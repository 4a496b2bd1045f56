package faq

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes is the shortest token most signals consider; shorter ones are particles.
const minTokenRunes = 2

// Tokenize splits lower-cased text on whitespace and the punctuation set ，。！？、,.!?.
// Empty fragments are dropped, single-rune tokens are kept.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, isDelimiter)
}

func isDelimiter(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '，', '。', '！', '？', '、', ',', '.', '!', '?':
		return true
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
