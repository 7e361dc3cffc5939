package tokens

import (
	"strings"
	"testing"
)

func TestNewEstimatingCounter(t *testing.T) {
	c := NewEstimatingCounter()

	if c.CharsPerToken != DefaultCharsPerToken {
		t.Errorf("expected CharsPerToken %v, got %v", DefaultCharsPerToken, c.CharsPerToken)
	}
}

func TestNewEstimatingCounterWithRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{name: "custom ratio", ratio: 3.0, expected: 3.0},
		{name: "zero ratio uses default", ratio: 0, expected: DefaultCharsPerToken},
		{name: "negative ratio uses default", ratio: -1, expected: DefaultCharsPerToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEstimatingCounterWithRatio(tt.ratio)
			if c.CharsPerToken != tt.expected {
				t.Errorf("expected CharsPerToken %v, got %v", tt.expected, c.CharsPerToken)
			}
		})
	}
}

func TestEstimatingCounter_Count(t *testing.T) {
	c := NewEstimatingCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty string", text: "", expected: 0},
		{name: "single character", text: "a", expected: 0},          // 0.25 rounds to 0
		{name: "two characters", text: "ab", expected: 1},           // 0.5 rounds to 1
		{name: "four characters", text: "test", expected: 1},        // 4/4
		{name: "hello world", text: "Hello World", expected: 3},     // 2.75 rounds to 3
		{name: "multi-byte runes count once", text: "héllo wörld", expected: 3},
		{name: "cjk", text: "日本語のテキスト", expected: 2}, // 8 runes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Count(tt.text)
			if result != tt.expected {
				t.Errorf("Count(%q) = %d, expected %d", tt.text, result, tt.expected)
			}
		})
	}
}

func TestEstimatingCounter_Count_CustomRatio(t *testing.T) {
	c := NewEstimatingCounterWithRatio(3.0)

	text := "Hello World" // 11 chars
	expected := 4         // 11/3 = 3.67 rounds to 4

	if result := c.Count(text); result != expected {
		t.Errorf("Count(%q) with ratio 3.0 = %d, expected %d", text, result, expected)
	}
}

func TestEstimatingCounter_Split(t *testing.T) {
	c := NewEstimatingCounter()
	text := strings.Repeat("estimate tokens roughly. ", 40)

	pieces, err := c.Split(text, 16)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(pieces) < 2 {
		t.Fatalf("expected multiple pieces, got %d", len(pieces))
	}
	if got := strings.Join(pieces, ""); got != text {
		t.Errorf("pieces do not rebuild the input")
	}
	for i, p := range pieces {
		if n := c.Count(p); n >= 16 {
			t.Errorf("piece %d has %d tokens, expected < 16", i, n)
		}
	}
}

func TestWordCounter_Count(t *testing.T) {
	c := NewWordCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty", text: "", expected: 0},
		{name: "whitespace only", text: " \t\n ", expected: 0},
		{name: "single word", text: "one", expected: 1},
		{name: "mixed whitespace", text: "  one  two\tthree\nfour ", expected: 4},
		{name: "punctuation sticks to words", text: "Hello, world!", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := c.Count(tt.text); result != tt.expected {
				t.Errorf("Count(%q) = %d, expected %d", tt.text, result, tt.expected)
			}
		})
	}
}

func TestWordCounter_Split(t *testing.T) {
	pieces, err := NewWordCounter().Split("one two three four five", 3)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	expected := []string{"one two", " three four", " five"}
	if len(pieces) != len(expected) {
		t.Fatalf("Split() = %q, expected %q", pieces, expected)
	}
	for i := range expected {
		if pieces[i] != expected[i] {
			t.Errorf("piece %d = %q, expected %q", i, pieces[i], expected[i])
		}
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens("Hello World"); got != 3 {
		t.Errorf("EstimateTokens() = %d, expected 3", got)
	}
}

func BenchmarkEstimatingCounter_Count(b *testing.B) {
	c := NewEstimatingCounter()
	text := strings.Repeat("benchmark text ", 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Count(text)
	}
}

func BenchmarkWordCounter_Count(b *testing.B) {
	c := NewWordCounter()
	text := strings.Repeat("benchmark text ", 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Count(text)
	}
}
