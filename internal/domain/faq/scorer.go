package faq

import (
	"math"
	"strings"
)

// Weights holds the tunable constants of the similarity score. They were chosen
// empirically; DefaultWeights reproduces the reference ranking.
type Weights struct {
	KeywordSubstring float64
	PromptSubstring  float64
	KeywordToken     float64
	PromptOverlap    float64
	TokenSetMember   float64
	LCS              float64
	// LengthDivisor and LengthExponent define the prompt length factor
	// (|prompt| / LengthDivisor) ^ -LengthExponent.
	LengthDivisor  float64
	LengthExponent float64
}

// DefaultWeights returns the reference weights.
func DefaultWeights() Weights {
	return Weights{
		KeywordSubstring: 5,
		PromptSubstring:  3,
		KeywordToken:     2,
		PromptOverlap:    2,
		TokenSetMember:   0.5,
		LCS:              2,
		LengthDivisor:    20,
		LengthExponent:   0.5,
	}
}

// query is a lower-cased question prepared once per match and shared by every candidate.
type query struct {
	text   string
	tokens []string
	set    map[string]struct{}
	runes  []rune
}

func newQuery(question string) query {
	lower := strings.ToLower(question)
	tokens := Tokenize(lower)
	return query{
		text:   lower,
		tokens: tokens,
		set:    tokenSet(tokens),
		runes:  []rune(lower),
	}
}

// Scorer computes the weighted multi-signal similarity between a question and one entry.
type Scorer struct {
	w Weights
}

// NewScorer builds a scorer with the given weights.
func NewScorer(w Weights) Scorer {
	return Scorer{w: w}
}

// Score lower-cases its inputs and returns the normalized similarity.
func (s Scorer) Score(question, keywords, prompt string) float64 {
	return s.score(newQuery(question), strings.ToLower(keywords), strings.ToLower(prompt))
}

func (s Scorer) score(q query, keywords, prompt string) float64 {
	promptTokens := Tokenize(prompt)

	sum := substringBonus(q.text, keywords, prompt, s.w) +
		keywordTokenBonus(q.text, keywords, s.w) +
		promptOverlap(q.text, promptTokens, s.w) +
		tokenSetBonus(q.tokens, q.set, promptTokens, s.w)
	if prompt == "" {
		return sum
	}
	sum += lcsRatio(q.runes, []rune(prompt), s.w)
	return sum * lengthFactor(runeLen(prompt), s.w)
}

// substringBonus rewards a question that contains the whole keyword or prompt field.
func substringBonus(question, keywords, prompt string, w Weights) float64 {
	var bonus float64
	if keywords != "" && strings.Contains(question, keywords) {
		bonus += w.KeywordSubstring
	}
	if prompt != "" && strings.Contains(question, prompt) {
		bonus += w.PromptSubstring
	}
	return bonus
}

// keywordTokenBonus adds a fixed amount per keyword token found in the question. Uncapped.
func keywordTokenBonus(question, keywords string, w Weights) float64 {
	var bonus float64
	for _, tok := range Tokenize(keywords) {
		if runeLen(tok) >= minTokenRunes && strings.Contains(question, tok) {
			bonus += w.KeywordToken
		}
	}
	return bonus
}

// promptOverlap is the share of prompt tokens found in the question. Short tokens
// count toward the denominator but never match.
func promptOverlap(question string, promptTokens []string, w Weights) float64 {
	if len(promptTokens) == 0 {
		return 0
	}
	matched := 0
	for _, tok := range promptTokens {
		if runeLen(tok) >= minTokenRunes && strings.Contains(question, tok) {
			matched++
		}
	}
	return float64(matched) / float64(len(promptTokens)) * w.PromptOverlap
}

// tokenSetBonus counts whole-token equality in both directions.
func tokenSetBonus(questionTokens []string, questionSet map[string]struct{}, promptTokens []string, w Weights) float64 {
	if len(promptTokens) == 0 {
		return 0
	}
	promptSet := tokenSet(promptTokens)
	var bonus float64
	for _, tok := range questionTokens {
		if _, ok := promptSet[tok]; ok && runeLen(tok) >= minTokenRunes {
			bonus += w.TokenSetMember
		}
	}
	for _, tok := range promptTokens {
		if _, ok := questionSet[tok]; ok && runeLen(tok) >= minTokenRunes {
			bonus += w.TokenSetMember
		}
	}
	return bonus
}

// lcsRatio is the character-level LCS relative to the longer text.
func lcsRatio(question, prompt []rune, w Weights) float64 {
	longest := max(len(question), len(prompt))
	if longest == 0 {
		return 0
	}
	return float64(LCSLength(question, prompt)) / float64(longest) * w.LCS
}

// lengthFactor damps long prompts and amplifies short ones.
func lengthFactor(promptRunes int, w Weights) float64 {
	if promptRunes == 0 || w.LengthDivisor <= 0 {
		return 1
	}
	return math.Pow(float64(promptRunes)/w.LengthDivisor, -w.LengthExponent)
}
