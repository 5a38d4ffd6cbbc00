package crypto

import (
	"math"
	"testing"
)

func TestEstimateEntropyBits(t *testing.T) {
	tests := []struct {
		name     string
		password string
		opts     GeneratorOptions
		want     float64
	}{
		{
			name:     "empty password",
			password: "",
			opts:     GeneratorOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			want:     0,
		},
		{
			name:     "empty password no classes",
			password: "",
			opts:     GeneratorOptions{},
			want:     0,
		},
		{
			name:     "lowercase only",
			password: "abcdefgh",
			opts:     GeneratorOptions{Lowercase: true},
			want:     8 * math.Log2(26),
		},
		{
			name:     "no classes falls back to lowercase",
			password: "abcdefgh",
			opts:     GeneratorOptions{},
			want:     8 * math.Log2(26),
		},
		{
			name:     "numbers only",
			password: "1234",
			opts:     GeneratorOptions{Numbers: true},
			want:     4 * math.Log2(10),
		},
		{
			name:     "all classes",
			password: "Ab1!Ab1!Ab1!Ab1!",
			opts:     GeneratorOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			want:     16 * math.Log2(89),
		},
		{
			name:     "options decide charset not content",
			password: "aaaa",
			opts:     GeneratorOptions{Uppercase: true, Lowercase: true},
			want:     4 * math.Log2(52),
		},
		{
			name:     "counts runes",
			password: "héllo",
			opts:     GeneratorOptions{Lowercase: true},
			want:     5 * math.Log2(26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateEntropyBits(tt.password, tt.opts)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateEntropyBits(%q) = %v, want %v", tt.password, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
				t.Errorf("EstimateEntropyBits(%q) = %v, want finite non-negative", tt.password, got)
			}
		})
	}
}

func TestCharsetSize(t *testing.T) {
	tests := []struct {
		opts GeneratorOptions
		want int
	}{
		{GeneratorOptions{}, 26},
		{GeneratorOptions{Uppercase: true}, 26},
		{GeneratorOptions{Symbols: true}, 27},
		{GeneratorOptions{Uppercase: true, Lowercase: true, Numbers: true}, 62},
		{GeneratorOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}, 89},
	}

	for _, tt := range tests {
		if got := CharsetSize(tt.opts); got != tt.want {
			t.Errorf("CharsetSize(%+v) = %d, want %d", tt.opts, got, tt.want)
		}
	}
}
