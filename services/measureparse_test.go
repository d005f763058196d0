package services

import (
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`134' 1"`, 134.1},
		{`103' 8"`, 103.7},
		{`50'`, 50},
		{`12' 6"`, 12.5},
		{"-", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseLength(tt.input); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("parseLength(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSquares(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"24½", 24.5},
		{"22¾", 22.75},
		{"20¼", 20.25},
		{"15⅓", 15.33},
		{"18", 18},
		{"-", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseSquares(tt.input); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("parseSquares(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSqft(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1703 ft²", 1703},
		{"2,054 ft²", 2054},
		{"88 ft²", 88},
		{"no area here", 0},
	}

	for _, tt := range tests {
		if got := parseSqft(tt.input); got != tt.want {
			t.Errorf("parseSqft(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

const sampleReportText = `319 Walden Station Drive, Macon, GA
Complete Measurements
MODEL ID: 99213
JOHN SMITH
PROPERTY ID: 15712345
Facades 2,054 ft²
Openings 351 ft²
Zero Waste 2054 ft² 20¾
+10% 2259 ft² 22¾
+18% 2424 ft² 24½
Inside Qty 6
Outside Qty 9
Eaves Fascia 134' 1"
Level Frieze 103' 8"
Rakes Fascia 88' 6"
Sloped Frieze 36' 5"
Soffit Breakdown
1 eave 16" 103' 8" 138 ft²
5 eave 76" 13' 11" 88 ft²
6 eave 72" 12' 0" 72 ft²
`

func TestParseMeasurementText(t *testing.T) {
	m := ParseMeasurementText(sampleReportText)

	if m.PropertyAddress != "319 Walden Station Drive, Macon, GA" {
		t.Errorf("PropertyAddress = %q", m.PropertyAddress)
	}
	if m.CustomerName != "John Smith" {
		t.Errorf("CustomerName = %q, want John Smith", m.CustomerName)
	}
	if m.PropertyID != "15712345" {
		t.Errorf("PropertyID = %q", m.PropertyID)
	}

	if m.SidingSquaresZeroWaste != 20.75 {
		t.Errorf("SidingSquaresZeroWaste = %v, want 20.75", m.SidingSquaresZeroWaste)
	}
	if m.SidingSquares10Waste != 22.75 {
		t.Errorf("SidingSquares10Waste = %v, want 22.75", m.SidingSquares10Waste)
	}
	if m.SidingSquares18Waste != 24.5 {
		t.Errorf("SidingSquares18Waste = %v, want 24.5", m.SidingSquares18Waste)
	}

	if m.FacadesAreaSqft != 2054 {
		t.Errorf("FacadesAreaSqft = %v, want 2054", m.FacadesAreaSqft)
	}
	if m.OpeningsSqft != 351 {
		t.Errorf("OpeningsSqft = %v, want 351", m.OpeningsSqft)
	}

	if m.InsideCornersCount != 6 || m.OutsideCornersCount != 9 {
		t.Errorf("corners = %v/%v, want 6/9", m.InsideCornersCount, m.OutsideCornersCount)
	}

	if m.EavesFasciaLength != 134.1 {
		t.Errorf("EavesFasciaLength = %v, want 134.1", m.EavesFasciaLength)
	}
	if m.GutterTotalLength != 134.1 {
		t.Errorf("GutterTotalLength = %v, want eaves fascia 134.1", m.GutterTotalLength)
	}
	if m.LevelFriezeLength != 103.7 {
		t.Errorf("LevelFriezeLength = %v, want 103.7", m.LevelFriezeLength)
	}
	if m.RakesFasciaLength != 88.5 {
		t.Errorf("RakesFasciaLength = %v, want 88.5", m.RakesFasciaLength)
	}
	if m.SlopedFriezeLength != 36.4 {
		t.Errorf("SlopedFriezeLength = %v, want 36.4", m.SlopedFriezeLength)
	}

	// Only the two rows deeper than 48" count as porch ceiling.
	if m.PorchCeilingSqft != 160 {
		t.Errorf("PorchCeilingSqft = %v, want 88+72 = 160", m.PorchCeilingSqft)
	}
	wantBeam := math.Round(4*math.Sqrt(160)*10) / 10
	if m.PorchBeamLf != wantBeam {
		t.Errorf("PorchBeamLf = %v, want %v", m.PorchBeamLf, wantBeam)
	}
}

func TestParseMeasurementTextEmpty(t *testing.T) {
	m := ParseMeasurementText("nothing useful in here")
	if m != (Measurements{}) {
		t.Errorf("empty report produced %+v", m)
	}
}
