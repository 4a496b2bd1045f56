package faq

import "time"

// Language identifies which half of a bilingual entry is used.
type Language string

const (
	// LanguageZh is the canonical language; every entry carries zh text.
	LanguageZh Language = "zh"
	// LanguageJa selects the Japanese keywords and answers.
	LanguageJa Language = "ja"
)

// ParseLanguage maps a raw tag onto a supported language, defaulting to zh.
func ParseLanguage(raw string) Language {
	if Language(raw) == LanguageJa {
		return LanguageJa
	}
	return LanguageZh
}

// Entry is one knowledge base record. JSON names follow the qa-database.json layout.
type Entry struct {
	ID         int64  `json:"id"`
	PromptZh   string `json:"promptZh"`
	PromptJa   string `json:"promptTranslated"`
	KeywordsZh string `json:"questionKeywordsZh"`
	KeywordsJa string `json:"questionKeywordsJa"`
	AnswerZh   string `json:"answerZh"`
	AnswerJa   string `json:"answerJa"`
}

// Keywords returns the keyword field for lang.
func (e Entry) Keywords(lang Language) string {
	if lang == LanguageJa {
		return e.KeywordsJa
	}
	return e.KeywordsZh
}

// Prompt returns the example phrasing for lang.
func (e Entry) Prompt(lang Language) string {
	if lang == LanguageJa {
		return e.PromptJa
	}
	return e.PromptZh
}

// Answer returns the verbatim answer for lang.
func (e Entry) Answer(lang Language) string {
	if lang == LanguageJa {
		return e.AnswerJa
	}
	return e.AnswerZh
}

// MatchResult is the engine output. Entry is nil when nothing scored above zero.
type MatchResult struct {
	Entry *Entry
	Score float64
}

// AnswerRequest is the answerQuestion input.
type AnswerRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

// AnswerResponse carries either a matched answer or the localized fallback.
type AnswerResponse struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	ID         *int64   `json:"id"`
	Language   Language `json:"language"`
}

// Summary is the listFAQs projection of an entry.
type Summary struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Prompt   string `json:"prompt"`
}

// SearchRequest is the searchFAQs input.
type SearchRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

// SearchHit is a searchFAQs result row.
type SearchHit struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
}

// Status describes the knowledge base snapshot currently being served.
type Status struct {
	Source   string    `json:"source"`
	Entries  int       `json:"entries"`
	LoadedAt time.Time `json:"loadedAt"`
}

// ReloadResult reports a completed reload.
type ReloadResult struct {
	Previous Status `json:"previous"`
	Current  Status `json:"current"`
}
