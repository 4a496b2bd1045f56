package faq

import "strings"

// Matcher ranks knowledge base entries against a question.
type Matcher struct {
	scorer Scorer
}

// NewMatcher constructs a matcher using the given weights.
func NewMatcher(w Weights) *Matcher {
	return &Matcher{scorer: NewScorer(w)}
}

// FindBestMatch scores every entry in order and returns the first one with the
// strictly highest score. A nil or empty knowledge base yields a zero result.
// The caller decides whether the score is good enough to answer with.
func (m *Matcher) FindBestMatch(question string, lang Language, kb *KnowledgeBase) MatchResult {
	if kb.Len() == 0 {
		return MatchResult{}
	}
	lang = ParseLanguage(string(lang))
	q := newQuery(question)

	var best MatchResult
	for i := range kb.entries {
		entry := &kb.entries[i]
		score := m.scorer.score(q, strings.ToLower(entry.Keywords(lang)), strings.ToLower(entry.Prompt(lang)))
		if score > best.Score {
			best = MatchResult{Entry: entry, Score: score}
		}
	}
	return best
}
