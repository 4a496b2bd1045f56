package faq

import "testing"

func TestLCSLength(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"abcde", "ace", 3},
		{"abc", "def", 0},
		{"新规登录不能进行", "我不会生图，可以教教我吗", 1},
		{"新规登录不能进行", "ログアウトしたのに新規プロフ・登出后无法返回新建个人资料和新注册页面。", 2},
		{"AGGTAB", "GXTXAYB", 4},
	}

	for _, tc := range cases {
		if got := LCSLength([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Fatalf("LCS(%q, %q): expected %d got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestLCSLengthSymmetricAndReflexive(t *testing.T) {
	samples := []string{"", "a", "abcbdab", "bdcaba", "无法注册新用户", "新規登録が出来ない", "hello world"}
	for _, a := range samples {
		ra := []rune(a)
		if got := LCSLength(ra, ra); got != len(ra) {
			t.Fatalf("LCS(%q, itself): expected %d got %d", a, len(ra), got)
		}
		for _, b := range samples {
			rb := []rune(b)
			if LCSLength(ra, rb) != LCSLength(rb, ra) {
				t.Fatalf("LCS not symmetric for %q and %q", a, b)
			}
		}
	}
}
