package model

import "testing"

func TestDisplayName(t *testing.T) {
	suffixes := []string{".NS"}
	tests := []struct {
		in   string
		want string
	}{
		{"RELIANCE.NS", "RELIANCE"},
		{"NVDA", "NVDA"},
		{"bitcoin", "BITCOIN"},
		{"TCS.NS", "TCS"},
		{"NS", "NS"},
		{"A.NSX", "A.NSX"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in, suffixes); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName_NoSuffixes(t *testing.T) {
	if got := DisplayName("RELIANCE.NS", nil); got != "RELIANCE.NS" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestRising(t *testing.T) {
	tests := []struct {
		change float64
		want   bool
	}{
		{2.5, true},
		{0.0001, true},
		{0, false},
		{-3.1, false},
	}
	for _, tt := range tests {
		q := AssetQuote{Name: "X", ChangePercent: tt.change}
		if q.Rising() != tt.want {
			t.Errorf("change %.4f: Rising() = %v, want %v", tt.change, q.Rising(), tt.want)
		}
	}
}
