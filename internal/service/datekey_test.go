package service

import "testing"

func TestMonthNumber_Numeric(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if got := MonthNumber(m); got != m {
			t.Errorf("MonthNumber(%d) = %d, want %d", m, got, m)
		}
		if got := MonthNumber(float64(m)); got != m {
			t.Errorf("MonthNumber(%v float64) = %d, want %d", m, got, m)
		}
	}
}

func TestMonthNumber_NumericString(t *testing.T) {
	cases := map[string]int{
		"1": 1, "6": 6, "12": 12,
		" 3 ": 3, "03": 3,
	}
	for in, want := range cases {
		if got := MonthNumber(in); got != want {
			t.Errorf("MonthNumber(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMonthNumber_Invalid(t *testing.T) {
	cases := []interface{}{0, 13, -1, "", nil, "not-a-month", "13", "0", true, []int{3}}
	for _, in := range cases {
		if got := MonthNumber(in); got != 0 {
			t.Errorf("MonthNumber(%v) = %d, want 0", in, got)
		}
	}
}

func TestMonthNumber_Names(t *testing.T) {
	cases := map[string]int{
		"january": 1, "jan": 1,
		"february": 2, "feb": 2,
		"march": 3, "mar": 3,
		"april": 4, "apr": 4,
		"may":  5,
		"june": 6, "jun": 6,
		"july": 7, "jul": 7,
		"august": 8, "aug": 8,
		"september": 9, "sep": 9, "sept": 9,
		"october": 10, "oct": 10,
		"november": 11, "nov": 11,
		"december": 12, "dec": 12,
	}
	for name, want := range cases {
		if got := MonthNumber(name); got != want {
			t.Errorf("MonthNumber(%q) = %d, want %d", name, got, want)
		}
		// 大小写不敏感且容忍两侧空白
		upper := " " + name + " "
		if got := MonthNumber(upper); got != want {
			t.Errorf("MonthNumber(%q) = %d, want %d", upper, got, want)
		}
		if got := MonthNumber("December"); got != 12 {
			t.Fatalf("MonthNumber(December) = %d, want 12", got)
		}
	}
}

func TestPublishedKey(t *testing.T) {
	cases := []struct {
		year  interface{}
		month interface{}
		want  int
	}{
		{2022, "December", 202212},
		{2022, 3, 202203},
		{2022, nil, 202200},
		{nil, "march", 3},
		{nil, nil, 0},
		{"2015", "07", 201507},
		{2001, "bogus", 200100},
	}
	for _, tc := range cases {
		if got := PublishedKey(tc.year, tc.month); got != tc.want {
			t.Errorf("PublishedKey(%v, %v) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

// 键在年份上严格单调，且同年内随归一化月份单调。
func TestPublishedKey_Monotonic(t *testing.T) {
	for m := 0; m <= 12; m++ {
		if PublishedKey(2021, m) >= PublishedKey(2022, m) {
			t.Errorf("key(2021,%d) should be < key(2022,%d)", m, m)
		}
	}
	for m := 1; m <= 12; m++ {
		if PublishedKey(2022, m-1) >= PublishedKey(2022, m) {
			t.Errorf("key(2022,%d) should be < key(2022,%d)", m-1, m)
		}
	}
}

// 场景：December（名称）排在 3（数字）之前。
func TestPublishedKey_HeterogeneousMonths(t *testing.T) {
	keyDec := PublishedKey(2022, "December")
	keyMar := PublishedKey(2022, 3)
	if keyDec != 202212 || keyMar != 202203 {
		t.Fatalf("keys = %d, %d; want 202212, 202203", keyDec, keyMar)
	}
	if keyDec <= keyMar {
		t.Errorf("December 应排在 3 月之前")
	}
}
