// Package services provides the quote calculation core: pricing, line
// items, discounts and financing, measurement mapping, and document export.
package services

// SidingProduct is one entry of the siding product catalog.
type SidingProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductCatalog maps product codes to display names and per-square prices.
type ProductCatalog map[string]SidingProduct

// PriceTable maps fee codes to unit rates in dollars. Rates may be
// fractional (metal screen is 3.50/LF). Missing codes read as zero.
type PriceTable map[string]float64

// defaultSidingPrice is charged when the product code is not in the catalog.
const defaultSidingPrice = 525

// DefaultProducts returns the built-in siding product catalog.
// Prices verified Jan 12, 2026.
func DefaultProducts() ProductCatalog {
	return ProductCatalog{
		"quest_046":           {Name: "Quest (.046)", Price: 590},
		"carvedwood_044":      {Name: "Carvedwood 44 (.044)", Price: 525},
		"structure_insulated": {Name: "Structure/Prodigy Insulated (.046)", Price: 810},
		"board_batten":        {Name: "Board & Batten", Price: 700},
		"shake":               {Name: "Cedar Discovery Shake", Price: 870},
		"tando":               {Name: "TandoStone Composite", Price: 1500},
	}
}

// Profiles lists the selectable siding profiles.
var Profiles = []string{"D-4", "D-5", "D-4.5 DL", "D-6", "S-7", "S-8", "T-3", `7" B&B`}

// DefaultPriceTable returns the built-in rate sheet.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		// Soffit & fascia
		"soffit_over_16":  20, // per LF for depths >16"
		"soffit_under_16": 19, // per LF for depths <=16"
		"fascia":          8,  // per LF
		"frieze":          6,  // per LF, separate from fascia
		"porch_beam":      16, // per LF
		"soldier_row":     9,  // per LF
		"porch_ceiling":   520,
		"bird_box":        30,
		"extra_bend":      2, // per LF
		"remove_soffit":   4, // per LF
		// Siding
		"inside_corner":  30,
		"outside_corner": 30,
		"fan_fold":       50,  // per sq
		"remove_dispose": 50,  // per sq
		"fullback":       120, // per sq
		// Wraps. Doors are flat rate, no wood/metal split.
		"window_wrap_wood":   125,
		"window_wrap_metal":  152,
		"door_wrap":          150,
		"transom_wrap_wood":  125,
		"transom_wrap_metal": 152,
		"garage_single":      175,
		"garage_double":      250,
		// Accessories
		"vent":            140, // gable vents
		"cover_utilities": 140,
		"light_panel":     30,
		"receptacle":      19,
		"faucet":          19,
		"dryer_vent":      37,
		"shutters":        250, // per pair
		"columns_8ft":     350,
		"columns_10ft":    400,
		// Gutters
		"new_gutters":    16,
		"gutter_cap":     8,
		"metal_screen":   3.5,
		"remove_gutters": 2, // per LF
		"rehang_gutters": 2, // per LF, billed on top of remove
		// Other
		"rotten_wood": 3, // per LF
		"osb_sheet":   135,
		"fur_out":     250,
		"house_wrap":  0, // qty tracked only, no charge
		"cleanup":     250,
		"trailer":     150,
	}
}

// QuoteInputs is the complete user-controlled state of one quote. All
// quantities default to zero; fan-fold is the only toggle that defaults on.
// Quantities are not validated: negative entries flow through the math as
// negative charges.
type QuoteInputs struct {
	// Identity (pass-through, no computation)
	CustomerName    string `json:"customerName"`
	PropertyAddress string `json:"propertyAddress"`
	PropertyID      string `json:"propertyId"`

	// Product selection
	SidingProduct string `json:"sidingProduct"`
	SidingProfile string `json:"sidingProfile"`
	SidingColor   string `json:"sidingColor"`
	G8Color       string `json:"g8Color"`

	// Siding measurements. SidingSquares is the zero-waste base from the
	// measurement report; AdjustedSquares is what gets ordered and charged
	// (the estimator applies the waste factor by hand).
	SidingSquares   float64 `json:"sidingSquares"`
	AdjustedSquares float64 `json:"adjustedSquares"`
	InsideCorners   float64 `json:"insideCorners"`
	OutsideCorners  float64 `json:"outsideCorners"`

	// Labor options, each billed per adjusted square when enabled.
	IncludeFanFold       bool `json:"includeFanFold"`
	IncludeRemoveDispose bool `json:"includeRemoveDispose"`
	IncludeFullback      bool `json:"includeFullback"`

	// Soffit & fascia
	SoffitLf          float64 `json:"soffitLf"`
	SoffitWidthOver16 bool    `json:"soffitWidthOver16"`
	FasciaLf          float64 `json:"fasciaLf"`
	FriezeLf          float64 `json:"friezeLf"`
	PorchBeamLf       float64 `json:"porchBeamLf"`
	SoldierRowLf      float64 `json:"soldierRowLf"`
	PorchCeilingCount float64 `json:"porchCeilingCount"`
	BirdBoxCount      float64 `json:"birdBoxCount"`
	ExtraBendLf       float64 `json:"extraBendLf"`
	RemoveSoffitLf    float64 `json:"removeSoffitLf"`

	// Wraps. WrapsAreMetal switches windows and transoms together;
	// doors are always flat rate.
	WrapsAreMetal     bool    `json:"wrapsAreMetal"`
	WindowWrapCount   float64 `json:"windowWrapCount"`
	DoorWrapCount     float64 `json:"doorWrapCount"`
	TransomWrapCount  float64 `json:"transomWrapCount"`
	GarageSingleCount float64 `json:"garageSingleCount"`
	GarageDoubleCount float64 `json:"garageDoubleCount"`

	// Accessories
	VentCount           float64 `json:"ventCount"`
	CoverUtilitiesCount float64 `json:"coverUtilitiesCount"`
	LightPanelCount     float64 `json:"lightPanelCount"`
	ReceptacleCount     float64 `json:"receptacleCount"`
	FaucetCount         float64 `json:"faucetCount"`
	DryerVentCount      float64 `json:"dryerVentCount"`
	ShutterPairs        float64 `json:"shutterPairs"`
	Columns8ftCount     float64 `json:"columns8ftCount"`
	Columns10ftCount    float64 `json:"columns10ftCount"`

	// Gutters
	NewGutterLf    float64 `json:"newGutterLf"`
	GutterCapLf    float64 `json:"gutterCapLf"`
	MetalScreenLf  float64 `json:"metalScreenLf"`
	RehangGutterLf float64 `json:"rehangGutterLf"`

	// Other
	RottenWoodLf   float64 `json:"rottenWoodLf"`
	OsbSheets      float64 `json:"osbSheets"`
	FurOutCount    float64 `json:"furOutCount"`
	HouseWrapRolls float64 `json:"houseWrapRolls"`
	TrailerNeeded  bool    `json:"trailerNeeded"`
	ExtraLabor     float64 `json:"extraLabor"`

	// Payment discounts
	PayWithCheck bool `json:"payWithCheck"`
	IsMilitary   bool `json:"isMilitary"`
}

// NewQuoteInputs returns a QuoteInputs with the documented defaults applied.
func NewQuoteInputs() QuoteInputs {
	return QuoteInputs{
		SidingProduct:  "carvedwood_044",
		SidingProfile:  "D-4",
		SidingColor:    "Harbor Gray",
		G8Color:        "Charcoal",
		IncludeFanFold: true,
	}
}

// Totals is the derived snapshot of all subtotals for one quote. The two
// customer-facing package totals and the five legacy category subtotals are
// alternate groupings of the same charges; both sum to GrandTotal.
type Totals struct {
	SidingPackageTotal       float64 `json:"sidingPackageTotal"`
	SoffitFasciaPackageTotal float64 `json:"soffitFasciaPackageTotal"`

	SidingTotal  float64 `json:"sidingTotal"`
	SoffitTotal  float64 `json:"soffitTotal"`
	WrapsTotal   float64 `json:"wrapsTotal"`
	GuttersTotal float64 `json:"guttersTotal"`
	OtherTotal   float64 `json:"otherTotal"`

	GrandTotal float64 `json:"grandTotal"`
}

// SidingUnitPrice resolves the per-square price for a product code, falling
// back to the default price for unrecognized codes. No error is signalled;
// the fallback is deliberate.
func SidingUnitPrice(products ProductCatalog, code string) float64 {
	if p, ok := products[code]; ok {
		return p.Price
	}
	return defaultSidingPrice
}

// HasWork reports whether the quote includes enough physical work to charge
// the disposal/cleanup fee. Frieze, gutters, and accessories alone do not
// trigger it.
func HasWork(in QuoteInputs) bool {
	return in.AdjustedSquares > 0 || in.SoffitLf > 0 || in.FasciaLf > 0
}

// ComputeTotals calculates every subtotal for a quote in one linear pass.
// It is pure: no I/O, no error cases, no rounding inside subtotals.
func ComputeTotals(in QuoteInputs, prices PriceTable, products ProductCatalog) Totals {
	sidingPrice := SidingUnitPrice(products, in.SidingProduct)

	// Siding: the adjusted (order/charge) squares drive every per-square
	// charge, never the raw measured value.
	sidingTotal := in.AdjustedSquares * sidingPrice
	if in.IncludeFanFold {
		sidingTotal += in.AdjustedSquares * prices["fan_fold"]
	}
	if in.IncludeRemoveDispose {
		sidingTotal += in.AdjustedSquares * prices["remove_dispose"]
	}
	if in.IncludeFullback {
		sidingTotal += in.AdjustedSquares * prices["fullback"]
	}
	sidingTotal += in.InsideCorners * prices["inside_corner"]
	sidingTotal += in.OutsideCorners * prices["outside_corner"]

	// Soffit & fascia
	soffitPrice := prices["soffit_under_16"]
	if in.SoffitWidthOver16 {
		soffitPrice = prices["soffit_over_16"]
	}
	soffitTotal := in.SoffitLf * soffitPrice
	soffitTotal += in.FasciaLf * prices["fascia"]
	soffitTotal += in.FriezeLf * prices["frieze"]
	soffitTotal += in.PorchBeamLf * prices["porch_beam"]
	soffitTotal += in.SoldierRowLf * prices["soldier_row"]
	soffitTotal += in.PorchCeilingCount * prices["porch_ceiling"]
	soffitTotal += in.BirdBoxCount * prices["bird_box"]
	soffitTotal += in.ExtraBendLf * prices["extra_bend"]
	soffitTotal += in.RemoveSoffitLf * prices["remove_soffit"]

	// Wraps
	windowPrice := prices["window_wrap_wood"]
	transomPrice := prices["transom_wrap_wood"]
	if in.WrapsAreMetal {
		windowPrice = prices["window_wrap_metal"]
		transomPrice = prices["transom_wrap_metal"]
	}
	wrapsTotal := in.WindowWrapCount * windowPrice
	wrapsTotal += in.DoorWrapCount * prices["door_wrap"]
	wrapsTotal += in.TransomWrapCount * transomPrice
	wrapsTotal += in.GarageSingleCount * prices["garage_single"]
	wrapsTotal += in.GarageDoubleCount * prices["garage_double"]

	// Gutters. Rehang footage is billed twice: once to take the run down,
	// once to put it back up.
	guttersTotal := in.NewGutterLf * prices["new_gutters"]
	guttersTotal += in.GutterCapLf * prices["gutter_cap"]
	guttersTotal += in.MetalScreenLf * prices["metal_screen"]
	guttersTotal += in.RehangGutterLf * prices["remove_gutters"]
	guttersTotal += in.RehangGutterLf * prices["rehang_gutters"]

	// Accessories and misc
	otherTotal := in.VentCount * prices["vent"]
	otherTotal += in.CoverUtilitiesCount * prices["cover_utilities"]
	otherTotal += in.LightPanelCount * prices["light_panel"]
	otherTotal += in.ReceptacleCount * prices["receptacle"]
	otherTotal += in.FaucetCount * prices["faucet"]
	otherTotal += in.DryerVentCount * prices["dryer_vent"]
	otherTotal += in.ShutterPairs * prices["shutters"]
	otherTotal += in.Columns8ftCount * prices["columns_8ft"]
	otherTotal += in.Columns10ftCount * prices["columns_10ft"]
	otherTotal += in.RottenWoodLf * prices["rotten_wood"]
	otherTotal += in.OsbSheets * prices["osb_sheet"]
	otherTotal += in.FurOutCount * prices["fur_out"]
	otherTotal += in.HouseWrapRolls * prices["house_wrap"]
	if HasWork(in) {
		otherTotal += prices["cleanup"]
		if in.TrailerNeeded {
			otherTotal += prices["trailer"]
		}
	}
	otherTotal += in.ExtraLabor

	// Customer-facing packages regroup the same charges: the siding
	// package absorbs wraps, accessories, and misc; the soffit/fascia
	// package absorbs gutters.
	sidingPackage := sidingTotal + wrapsTotal + otherTotal
	soffitFasciaPackage := soffitTotal + guttersTotal

	return Totals{
		SidingPackageTotal:       sidingPackage,
		SoffitFasciaPackageTotal: soffitFasciaPackage,
		SidingTotal:              sidingTotal,
		SoffitTotal:              soffitTotal,
		WrapsTotal:               wrapsTotal,
		GuttersTotal:             guttersTotal,
		OtherTotal:               otherTotal,
		GrandTotal:               sidingPackage + soffitFasciaPackage,
	}
}
