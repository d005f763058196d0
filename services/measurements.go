package services

import "math"

// Measurements holds the values extracted from an aerial measurement
// report. Every field is optional; zero means the report did not yield
// that value. Pointer-free by choice: no report ever legitimately
// measures an exact zero for these.
type Measurements struct {
	PropertyAddress string `json:"propertyAddress,omitempty"`
	PropertyID      string `json:"propertyId,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`

	// Siding squares at the three waste allowances from the waste
	// totals table.
	SidingSquaresZeroWaste float64 `json:"sidingSquaresZeroWaste,omitempty"`
	SidingSquares10Waste   float64 `json:"sidingSquares10Waste,omitempty"`
	SidingSquares18Waste   float64 `json:"sidingSquares18Waste,omitempty"`

	FacadesAreaSqft float64 `json:"facadesAreaSqft,omitempty"`
	OpeningsSqft    float64 `json:"openingsSqft,omitempty"`

	InsideCornersCount  float64 `json:"insideCornersCount,omitempty"`
	OutsideCornersCount float64 `json:"outsideCornersCount,omitempty"`

	// Roofline lengths in decimal feet.
	EavesFasciaLength  float64 `json:"eavesFasciaLength,omitempty"`
	RakesFasciaLength  float64 `json:"rakesFasciaLength,omitempty"`
	LevelFriezeLength  float64 `json:"levelFriezeLength,omitempty"`
	SlopedFriezeLength float64 `json:"slopedFriezeLength,omitempty"`

	SoffitTotalSqft float64 `json:"soffitTotalSqft,omitempty"`

	// Soffit rows deeper than 48 inches are porch ceilings.
	PorchCeilingSqft float64 `json:"porchCeilingSqft,omitempty"`
	PorchBeamLf      float64 `json:"porchBeamLf,omitempty"`

	// Eaves fascia doubles as the gutter run length.
	GutterTotalLength float64 `json:"gutterTotalLength,omitempty"`
}

// porchCeilingUnitSqft is the assumed coverage of one porch ceiling
// charge unit.
const porchCeilingUnitSqft = 100

// ApplyMeasurements copies extracted report values onto quote inputs.
// Only fields the report actually yielded are touched; everything else
// keeps its current value. Adjusted squares and gutter work are never
// auto-filled, the estimator sets those by hand.
func ApplyMeasurements(in *QuoteInputs, m Measurements) {
	if m.PropertyAddress != "" {
		in.PropertyAddress = m.PropertyAddress
	}
	if m.CustomerName != "" {
		in.CustomerName = m.CustomerName
	}
	if m.PropertyID != "" {
		in.PropertyID = m.PropertyID
	}

	// Base squares prefer the zero-waste figure; otherwise divide the
	// waste allowance back out and keep one decimal.
	switch {
	case m.SidingSquaresZeroWaste > 0:
		in.SidingSquares = m.SidingSquaresZeroWaste
	case m.SidingSquares10Waste > 0:
		in.SidingSquares = math.Round(m.SidingSquares10Waste/1.10*10) / 10
	case m.SidingSquares18Waste > 0:
		in.SidingSquares = math.Round(m.SidingSquares18Waste/1.18*10) / 10
	}

	if m.InsideCornersCount > 0 {
		in.InsideCorners = m.InsideCornersCount
	}
	if m.OutsideCornersCount > 0 {
		in.OutsideCorners = m.OutsideCornersCount
	}

	if m.PorchCeilingSqft > 0 {
		in.PorchCeilingCount = math.Ceil(m.PorchCeilingSqft / porchCeilingUnitSqft)
	}
	if m.PorchBeamLf > 0 {
		in.PorchBeamLf = math.Round(m.PorchBeamLf)
	}

	// Frieze board runs are the soffit lengths; eaves and rakes fascia
	// are the fascia board lengths.
	if m.LevelFriezeLength > 0 || m.SlopedFriezeLength > 0 {
		in.SoffitLf = math.Round(m.LevelFriezeLength + m.SlopedFriezeLength)
	}
	if m.EavesFasciaLength > 0 || m.RakesFasciaLength > 0 {
		in.FasciaLf = math.Round(m.EavesFasciaLength + m.RakesFasciaLength)
	}
}
