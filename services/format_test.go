package services

import "testing"

func TestFormatUSD_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "$0"},
		{"small integer", 5, "$5"},
		{"hundreds", 999, "$999"},
		{"thousands", 11750, "$11,750"},
		{"rounds half up", 9922.5, "$9,923"},
		{"rounds down", 9922.4, "$9,922"},
		{"millions", 1234567, "$1,234,567"},
		{"negative", -250, "-$250"},
		{"negative thousands", -12500, "-$12,500"},
		{"exact thousands boundary", 1000, "$1,000"},
		{"monthly payment cents dropped", 223.92, "$224"},
		{"monthly payment rounds down", 118.2, "$118"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUSD(tt.input)
			if got != tt.expect {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"single digit", "5", "5"},
		{"three digits", "999", "999"},
		{"four digits", "1234", "1,234"},
		{"six digits", "123456", "123,456"},
		{"seven digits", "1234567", "1,234,567"},
		{"ten digits", "1234567890", "1,234,567,890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupThousands(tt.input)
			if got != tt.expect {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
