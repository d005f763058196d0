package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parsers for the text dump of an aerial measurement report. The report
// mixes feet-and-inches lengths (134' 1"), unicode-fraction square
// counts (24½), and comma-grouped areas (2,054 ft²).

var (
	lengthRe  = regexp.MustCompile(`(\d+)'?\s*(\d+)?"?`)
	sqftRe    = regexp.MustCompile(`([\d,]+)\s*(?:ft²|sq)`)
	squaresRe = regexp.MustCompile(`(\d+)([½¼¾⅓⅔])?`)

	addressRe  = regexp.MustCompile(`(?i)(\d+\s+[\w\s]+(?:Drive|Dr|Street|St|Road|Rd|Avenue|Ave|Lane|Ln|Way|Circle|Cir|Court|Ct|Boulevard|Blvd),\s*[\w\s]+,\s*[A-Z]{2})`)
	addrLineRe = regexp.MustCompile(`(?i)^\d+\s+\w+.*(?:Drive|Dr|Street|St|Road|Rd|Avenue|Ave|Lane|Ln|Way)`)
	nameRe     = regexp.MustCompile(`MODEL ID:\s*\d+\s*\n([A-Z][A-Z\s]+)\n`)
	propIDRe   = regexp.MustCompile(`(?i)PROPERTY\s*ID[:\s]*(\d+)`)

	zeroWasteRe = regexp.MustCompile(`Zero\s*Waste\s*[\d,]+\s*ft²\s*(\d+[½¼¾⅓⅔]?)`)
	tenWasteRe  = regexp.MustCompile(`\+10%\s*[\d,]+\s*ft²\s*(\d+[½¼¾⅓⅔]?)`)
	eighteenRe  = regexp.MustCompile(`\+18%\s*[\d,]+\s*ft²\s*(\d+[½¼¾⅓⅔]?)`)

	insideQtyRe  = regexp.MustCompile(`(?i)Inside\s*Qty\s*(\d+)`)
	outsideQtyRe = regexp.MustCompile(`(?i)Outside\s*Qty\s*(\d+)`)

	facadesRe  = regexp.MustCompile(`(?i)Facades\s*([\d,]+)\s*ft²`)
	openingsRe = regexp.MustCompile(`(?i)Openings\s*([\d,]+)\s*ft²`)

	eavesFasciaRe  = regexp.MustCompile(`(?i)Eaves\s*Fascia\s*(\d+'\s*\d*"?)`)
	rakesFasciaRe  = regexp.MustCompile(`(?i)Rakes\s*Fascia\s*(\d+'\s*\d*"?)`)
	levelFriezeRe  = regexp.MustCompile(`(?i)Level\s*Frieze\s*(\d+'\s*\d*"?)`)
	slopedFriezeRe = regexp.MustCompile(`(?i)Sloped\s*Frieze\s*(\d+'\s*\d*"?)`)

	// Soffit breakdown rows: "5 eave 76" 13' 11" 88 ft²". The first
	// inch figure is the soffit depth.
	soffitRowRe = regexp.MustCompile(`(?i)\d+\s+(?:eave|rake)\s+(\d+)"\s+[\d'\s"]+\s+(\d+)\s*ft²`)
)

// porchCeilingDepthInches is the soffit depth above which a breakdown
// row counts as porch ceiling rather than eave soffit.
const porchCeilingDepthInches = 48

var fractionValues = map[rune]float64{
	'½': 0.5, '¼': 0.25, '¾': 0.75, '⅓': 0.33, '⅔': 0.67,
}

// parseLength converts a feet-and-inches string like `134' 1"` to
// decimal feet, rounded to one decimal. Returns 0 for blanks and dashes.
func parseLength(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	m := lengthRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	feet, _ := strconv.Atoi(m[1])
	inches := 0
	if m[2] != "" {
		inches, _ = strconv.Atoi(m[2])
	}
	return math.Round((float64(feet)+float64(inches)/12)*10) / 10
}

// parseSqft converts an area string like `1,703 ft²` to a float.
func parseSqft(s string) float64 {
	m := sqftRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	return v
}

// parseSquares converts a squares string like `24½` to a float. The
// report writes square counts with unicode vulgar fractions.
func parseSquares(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	m := squaresRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	whole, _ := strconv.Atoi(m[1])
	frac := 0.0
	if m[2] != "" {
		frac = fractionValues[[]rune(m[2])[0]]
	}
	return float64(whole) + frac
}

// ParseMeasurementText extracts measurements from the text dump of a
// measurement report. Missing sections leave their fields zero; the
// caller decides what a partial extraction is worth.
func ParseMeasurementText(text string) Measurements {
	var m Measurements

	if g := addressRe.FindStringSubmatch(text); g != nil {
		m.PropertyAddress = strings.TrimSpace(g[1])
	} else {
		// Fallback: a street-looking line near the top that is not the
		// report title.
		lines := strings.Split(strings.TrimSpace(text), "\n")
		for i, line := range lines {
			if i >= 3 {
				break
			}
			line = strings.TrimSpace(line)
			if addrLineRe.MatchString(line) && !strings.Contains(line, "Complete") {
				m.PropertyAddress = line
				break
			}
		}
	}

	if g := nameRe.FindStringSubmatch(text); g != nil {
		m.CustomerName = titleCase(strings.TrimSpace(g[1]))
	}
	if g := propIDRe.FindStringSubmatch(text); g != nil {
		m.PropertyID = g[1]
	}

	if g := zeroWasteRe.FindStringSubmatch(text); g != nil {
		m.SidingSquaresZeroWaste = parseSquares(g[1])
	}
	if g := tenWasteRe.FindStringSubmatch(text); g != nil {
		m.SidingSquares10Waste = parseSquares(g[1])
	}
	if g := eighteenRe.FindStringSubmatch(text); g != nil {
		m.SidingSquares18Waste = parseSquares(g[1])
	}

	if g := insideQtyRe.FindStringSubmatch(text); g != nil {
		n, _ := strconv.Atoi(g[1])
		m.InsideCornersCount = float64(n)
	}
	if g := outsideQtyRe.FindStringSubmatch(text); g != nil {
		n, _ := strconv.Atoi(g[1])
		m.OutsideCornersCount = float64(n)
	}

	if g := facadesRe.FindStringSubmatch(text); g != nil {
		m.FacadesAreaSqft = parseSqft(g[1] + " ft²")
	}
	if g := openingsRe.FindStringSubmatch(text); g != nil {
		m.OpeningsSqft = parseSqft(g[1] + " ft²")
	}

	if g := eavesFasciaRe.FindStringSubmatch(text); g != nil {
		m.EavesFasciaLength = parseLength(g[1])
		m.GutterTotalLength = m.EavesFasciaLength
	}
	if g := rakesFasciaRe.FindStringSubmatch(text); g != nil {
		m.RakesFasciaLength = parseLength(g[1])
	}
	if g := levelFriezeRe.FindStringSubmatch(text); g != nil {
		m.LevelFriezeLength = parseLength(g[1])
	}
	if g := slopedFriezeRe.FindStringSubmatch(text); g != nil {
		m.SlopedFriezeLength = parseLength(g[1])
	}

	// Deep soffit rows in the breakdown are porch ceilings.
	for _, row := range soffitRowRe.FindAllStringSubmatch(text, -1) {
		depth, _ := strconv.Atoi(row[1])
		area, _ := strconv.Atoi(row[2])
		if depth > porchCeilingDepthInches {
			m.PorchCeilingSqft += float64(area)
		}
	}
	if m.PorchCeilingSqft > 0 {
		// Beam run estimated as the perimeter of a square porch of the
		// same area.
		m.PorchBeamLf = math.Round(4*math.Sqrt(m.PorchCeilingSqft)*10) / 10
	}

	return m
}

// titleCase lowercases an all-caps name and capitalizes each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
