package service

import "testing"

func TestParseByteRange(t *testing.T) {
	const size = 1000
	cases := []struct {
		name   string
		header string
		start  int64
		end    int64
		ok     bool
	}{
		{"empty header", "", 0, 0, false},
		{"closed range", "bytes=0-499", 0, 499, true},
		{"interior range", "bytes=200-300", 200, 300, true},
		{"open end", "bytes=500-", 500, 999, true},
		{"suffix range", "bytes=-100", 900, 999, true},
		{"suffix longer than object", "bytes=-5000", 0, 999, true},
		{"end clamped to size", "bytes=900-2000", 900, 999, true},
		{"start beyond size", "bytes=1000-", 0, 0, false},
		{"reversed range", "bytes=500-100", 0, 0, false},
		{"multi range unsupported", "bytes=0-1,5-9", 0, 0, false},
		{"missing unit", "0-499", 0, 0, false},
		{"wrong unit", "chunks=0-499", 0, 0, false},
		{"garbage", "bytes=abc-def", 0, 0, false},
		{"zero suffix", "bytes=-0", 0, 0, false},
		{"bare dash", "bytes=-", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := parseByteRange(tc.header, size)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if start != tc.start || end != tc.end {
				t.Errorf("range = %d-%d, want %d-%d", start, end, tc.start, tc.end)
			}
			if start < 0 || end >= size || start > end {
				t.Errorf("区间 %d-%d 超出对象边界", start, end)
			}
		})
	}
}
