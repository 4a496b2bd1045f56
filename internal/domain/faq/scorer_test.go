package faq

import (
	"math"
	"testing"
)

const scoreTolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= scoreTolerance
}

func TestSubstringBonus(t *testing.T) {
	w := DefaultWeights()
	cases := []struct {
		name     string
		question string
		keywords string
		prompt   string
		want     float64
	}{
		{name: "keywords contained", question: "无法注册新用户怎么办", keywords: "无法注册新用户", want: 5},
		{name: "prompt contained", question: "请问我不会生图", prompt: "我不会生图", want: 3},
		{name: "both contained", question: "我不会生图", keywords: "不会生图", prompt: "我不会生图", want: 8},
		{name: "empty fields never match", question: "anything", want: 0},
		{name: "not contained", question: "abc", keywords: "abd", prompt: "xyz", want: 0},
	}
	for _, tc := range cases {
		if got := substringBonus(tc.question, tc.keywords, tc.prompt, w); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestKeywordTokenBonus(t *testing.T) {
	w := DefaultWeights()
	if got := keywordTokenBonus("please reset my password now", "reset password", w); got != 4 {
		t.Fatalf("expected 4 got %v", got)
	}
	if got := keywordTokenBonus("a b c", "a b", w); got != 0 {
		t.Fatalf("single rune keyword tokens should be ignored, got %v", got)
	}
	if got := keywordTokenBonus("新規登録が出来ない", "新規、登録、出来ない", w); got != 6 {
		t.Fatalf("expected 6 got %v", got)
	}
}

func TestPromptOverlap(t *testing.T) {
	w := DefaultWeights()
	got := promptOverlap("how to reset password", []string{"reset", "my", "password", "x"}, w)
	if !approxEqual(got, 1.0) {
		t.Fatalf("expected 1.0 got %v", got)
	}
	if got := promptOverlap("anything", nil, w); got != 0 {
		t.Fatalf("expected 0 for empty prompt tokens got %v", got)
	}
}

func TestTokenSetBonus(t *testing.T) {
	w := DefaultWeights()
	questionTokens := []string{"reset", "my", "password"}
	got := tokenSetBonus(questionTokens, tokenSet(questionTokens), []string{"reset", "password", "a"}, w)
	if !approxEqual(got, 2.0) {
		t.Fatalf("expected 2.0 got %v", got)
	}

	// substring containment is not token equality
	questionTokens = []string{"resetting"}
	if got := tokenSetBonus(questionTokens, tokenSet(questionTokens), []string{"reset"}, w); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
}

func TestLCSRatio(t *testing.T) {
	w := DefaultWeights()
	if got := lcsRatio([]rune("abcde"), []rune("ace"), w); !approxEqual(got, 1.2) {
		t.Fatalf("expected 1.2 got %v", got)
	}
	if got := lcsRatio(nil, nil, w); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
}

func TestLengthFactor(t *testing.T) {
	w := DefaultWeights()
	cases := []struct {
		runes int
		want  float64
	}{
		{runes: 0, want: 1},
		{runes: 5, want: 2},
		{runes: 20, want: 1},
		{runes: 80, want: 0.5},
	}
	for _, tc := range cases {
		if got := lengthFactor(tc.runes, w); !approxEqual(got, tc.want) {
			t.Fatalf("length %d: expected %v got %v", tc.runes, tc.want, got)
		}
	}
}

func TestScorerScore(t *testing.T) {
	s := NewScorer(DefaultWeights())
	cases := []struct {
		name     string
		question string
		keywords string
		prompt   string
		want     float64
	}{
		{name: "full hit", question: "我不会生图", keywords: "我不会生图", prompt: "我不会生图，可以教教我吗", want: 12.69477874590209},
		{name: "single shared rune", question: "新规登录不能进行", keywords: "我不会生图", prompt: "我不会生图，可以教教我吗", want: 0.2151657414559676},
		{name: "no prompt skips normalization", question: "Reset Password", keywords: "RESET", want: 7},
		{name: "nothing in common", question: "hello weather", keywords: "无法注册新用户", prompt: "我不会生图", want: 0},
	}
	for _, tc := range cases {
		if got := s.Score(tc.question, tc.keywords, tc.prompt); !approxEqual(got, tc.want) {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestScorerKeywordSubstringIsMonotonic(t *testing.T) {
	s := NewScorer(DefaultWeights())
	question := "how do i reset password on the app"
	prompt := "forgot my login"
	with := s.Score(question, "reset password", prompt)
	without := s.Score(question, "", prompt)
	if with <= without {
		t.Fatalf("expected keyword hit to raise score: with=%v without=%v", with, without)
	}
}

func TestScorerNonNegative(t *testing.T) {
	s := NewScorer(DefaultWeights())
	for _, e := range DefaultEntries() {
		for _, q := range []string{"", "新规登录不能进行", "hello", "画像生成上手くいかない"} {
			if got := s.Score(q, e.KeywordsZh, e.PromptZh); got < 0 {
				t.Fatalf("negative score %v for %q against %d", got, q, e.ID)
			}
		}
	}
}
