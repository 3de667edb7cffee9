package format

import (
	"errors"
	"strings"
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024 KB"},
		{1048576, "1 MB"},
		{123456789, "117.74 MB"},
		{5 << 30, "5 GB"},
		{1 << 40, "1 TB"},
		{1 << 50, "1024 TB"},
		{-5, "0 B"},
	}
	for _, tt := range tests {
		if got := Size(tt.bytes); got != tt.want {
			t.Errorf("Size(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestSizeUnitMatchesMagnitude(t *testing.T) {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	for i, unit := range units {
		lo := int64(1) << (10 * i)
		for _, b := range []int64{lo, lo + lo/3, lo*1024 - 1} {
			if i == len(units)-1 && b == lo*1024-1 {
				continue
			}
			got := Size(b)
			if !strings.HasSuffix(got, " "+unit) {
				t.Errorf("Size(%d) = %q, want unit %s", b, got, unit)
			}
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42", 42},
		{"1 KB", 1024},
		{"1.5 KB", 1536},
		{"1.5kb", 1536},
		{"10MiB", 10 << 20},
		{" 2 GB ", 2 << 30},
		{"3 B", 3},
		{"1 EB", 1 << 60},
		{"2e", 2 << 60},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if err != nil {
			t.Errorf("ParseSize(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "12 parsecs"} {
		if _, err := ParseSize(in); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("ParseSize(%q): expected ErrInvalidSize, got %v", in, err)
		}
	}
}

func TestParseSizeRoundTrip(t *testing.T) {
	for _, b := range []int64{1024, 1536, 1 << 20, 3 << 30} {
		n, err := ParseSize(Size(b))
		if err != nil {
			t.Fatalf("ParseSize(Size(%d)): %v", b, err)
		}
		if n != b {
			t.Errorf("round trip of %d gave %d", b, n)
		}
	}
}
