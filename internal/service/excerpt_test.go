package service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractTerms(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"hazard", []string{"hazard"}},
		{"hazard -training", []string{"hazard", "training"}},
		{"+hot -work --- +", []string{"hot", "work"}},
		{"  static\telectricity  ", []string{"static", "electricity"}},
	}
	for _, tc := range cases {
		got := ExtractTerms(tc.query)
		if len(got) != len(tc.want) {
			t.Errorf("ExtractTerms(%q) = %v, want %v", tc.query, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ExtractTerms(%q)[%d] = %q, want %q", tc.query, i, got[i], tc.want[i])
			}
		}
	}
}

func TestBuildExcerpt_EmptyQuery(t *testing.T) {
	short := "a short text"
	if got := BuildExcerpt(short, "", 180); got != short {
		t.Errorf("got %q, want full text", got)
	}

	long := strings.Repeat("x", 500)
	got := BuildExcerpt(long, "", 180)
	if utf8.RuneCountInString(got) != 280 {
		t.Errorf("len = %d, want 280", utf8.RuneCountInString(got))
	}
	if strings.Contains(got, "…") {
		t.Errorf("开头截断不应带省略标记")
	}
}

func TestBuildExcerpt_NoHitFallsBackToHead(t *testing.T) {
	text := strings.Repeat("y", 400)
	got := BuildExcerpt(text, "absent", 180)
	if utf8.RuneCountInString(got) != 280 {
		t.Errorf("len = %d, want 280", utf8.RuneCountInString(got))
	}
}

func TestBuildExcerpt_HitNearStart(t *testing.T) {
	// 命中位置 h <= radius：窗口从 0 开始，无前置省略标记
	text := "hazard " + strings.Repeat("a", 500)
	got := BuildExcerpt(text, "hazard", 180)
	if !strings.Contains(got, "hazard") {
		t.Fatalf("excerpt 应包含命中词: %q", got)
	}
	if strings.HasPrefix(got, "…") {
		t.Errorf("窗口起点为 0 时不应有前置省略标记")
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("窗口未到文本末尾时应有后置省略标记")
	}
}

func TestBuildExcerpt_HitInMiddle(t *testing.T) {
	text := strings.Repeat("a", 300) + "hazard" + strings.Repeat("b", 300)
	got := BuildExcerpt(text, "hazard", 180)
	if !strings.Contains(got, "hazard") {
		t.Fatalf("excerpt 应包含命中词: %q", got)
	}
	if !strings.HasPrefix(got, "…") || !strings.HasSuffix(got, "…") {
		t.Errorf("两侧都被截断时应有两个省略标记: %q", got)
	}
	// 窗口最长 2*radius+1 个字符，另加两个标记
	if n := utf8.RuneCountInString(got); n > 2*180+1+2 {
		t.Errorf("len = %d, 超出窗口上限", n)
	}
}

func TestBuildExcerpt_CaseInsensitive(t *testing.T) {
	text := "Static ELECTRICITY ignited the vapor."
	got := BuildExcerpt(text, "electricity", 180)
	if got != text {
		t.Errorf("短文本整体命中应原样返回: %q", got)
	}
}

// 多词项取最早的命中位置。
func TestBuildExcerpt_EarliestHitWins(t *testing.T) {
	text := strings.Repeat("x", 250) + " alpha " + strings.Repeat("y", 250) + " beta"
	got := BuildExcerpt(text, "beta alpha", 100)
	if !strings.Contains(got, "alpha") {
		t.Errorf("应以最早命中 alpha 为中心: %q", got)
	}
	if strings.Contains(got, "beta") {
		t.Errorf("窗口不应覆盖到更晚的 beta: %q", got)
	}
}

func TestBuildExcerpt_EmptyText(t *testing.T) {
	if got := BuildExcerpt("", "hazard", 180); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
