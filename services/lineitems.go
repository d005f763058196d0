package services

import "fmt"

// LineItem is one billable row on the itemized quote. Total equals
// Qty * Rate except for the flat cleanup/trailer/extra-labor rows
// (qty 1, rate = total) and the zero-rate house wrap tracking row.
type LineItem struct {
	Name  string  `json:"name"`
	Qty   float64 `json:"qty"`
	Rate  float64 `json:"rate"`
	Total float64 `json:"total"`
}

// GenerateLineItems produces the ordered billable rows for the itemized
// document: siding, soffit/fascia, wraps, gutters, accessories, other,
// cleanup/trailer, extra labor. A field contributes a row only when its
// quantity is strictly positive; cleanup is instead gated on HasWork.
// Summing every Total reproduces ComputeTotals' grand total exactly.
func GenerateLineItems(in QuoteInputs, prices PriceTable, products ProductCatalog) []LineItem {
	sidingPrice := SidingUnitPrice(products, in.SidingProduct)
	var items []LineItem

	add := func(name string, qty, rate float64) {
		items = append(items, LineItem{Name: name, Qty: qty, Rate: rate, Total: qty * rate})
	}
	addFlat := func(name string, amount float64) {
		items = append(items, LineItem{Name: name, Qty: 1, Rate: amount, Total: amount})
	}

	// Siding
	if in.AdjustedSquares > 0 {
		name := "Siding"
		if p, ok := products[in.SidingProduct]; ok {
			name = fmt.Sprintf("%s Siding", p.Name)
		}
		add(name, in.AdjustedSquares, sidingPrice)
	}
	if in.IncludeFanFold && in.AdjustedSquares > 0 {
		add("Fan Fold Insulation", in.AdjustedSquares, prices["fan_fold"])
	}
	if in.IncludeRemoveDispose && in.AdjustedSquares > 0 {
		add("Remove & Dispose", in.AdjustedSquares, prices["remove_dispose"])
	}
	if in.IncludeFullback && in.AdjustedSquares > 0 {
		add("Fullback Insulation", in.AdjustedSquares, prices["fullback"])
	}
	if in.InsideCorners > 0 {
		add("Inside Corners", in.InsideCorners, prices["inside_corner"])
	}
	if in.OutsideCorners > 0 {
		add("Outside Corners", in.OutsideCorners, prices["outside_corner"])
	}

	// Soffit & fascia
	if in.SoffitLf > 0 {
		if in.SoffitWidthOver16 {
			add(`Soffit (>16")`, in.SoffitLf, prices["soffit_over_16"])
		} else {
			add(`Soffit (<=16")`, in.SoffitLf, prices["soffit_under_16"])
		}
	}
	if in.FasciaLf > 0 {
		add("Fascia", in.FasciaLf, prices["fascia"])
	}
	if in.FriezeLf > 0 {
		add("Frieze", in.FriezeLf, prices["frieze"])
	}
	if in.PorchBeamLf > 0 {
		add("Porch Beam", in.PorchBeamLf, prices["porch_beam"])
	}
	if in.SoldierRowLf > 0 {
		add("Soldier Row", in.SoldierRowLf, prices["soldier_row"])
	}
	if in.PorchCeilingCount > 0 {
		add("Porch Ceiling", in.PorchCeilingCount, prices["porch_ceiling"])
	}
	if in.BirdBoxCount > 0 {
		add("Bird Boxes", in.BirdBoxCount, prices["bird_box"])
	}
	if in.ExtraBendLf > 0 {
		add("Extra Bend", in.ExtraBendLf, prices["extra_bend"])
	}
	if in.RemoveSoffitLf > 0 {
		add("Remove Soffit", in.RemoveSoffitLf, prices["remove_soffit"])
	}

	// Wraps
	wrapKind := "Wood"
	windowPrice := prices["window_wrap_wood"]
	transomPrice := prices["transom_wrap_wood"]
	if in.WrapsAreMetal {
		wrapKind = "Metal"
		windowPrice = prices["window_wrap_metal"]
		transomPrice = prices["transom_wrap_metal"]
	}
	if in.WindowWrapCount > 0 {
		add(fmt.Sprintf("Window Wraps (%s)", wrapKind), in.WindowWrapCount, windowPrice)
	}
	if in.DoorWrapCount > 0 {
		add("Door Wraps", in.DoorWrapCount, prices["door_wrap"])
	}
	if in.TransomWrapCount > 0 {
		add(fmt.Sprintf("Transom Wraps (%s)", wrapKind), in.TransomWrapCount, transomPrice)
	}
	if in.GarageSingleCount > 0 {
		add("Single Garage Door Wraps", in.GarageSingleCount, prices["garage_single"])
	}
	if in.GarageDoubleCount > 0 {
		add("Double Garage Door Wraps", in.GarageDoubleCount, prices["garage_double"])
	}

	// Gutters
	if in.NewGutterLf > 0 {
		add("New Gutters", in.NewGutterLf, prices["new_gutters"])
	}
	if in.GutterCapLf > 0 {
		add("Gutter Cap", in.GutterCapLf, prices["gutter_cap"])
	}
	if in.MetalScreenLf > 0 {
		add("Metal Screen", in.MetalScreenLf, prices["metal_screen"])
	}
	if in.RehangGutterLf > 0 {
		// Two rows for the same footage: the run is billed for removal
		// and again for rehanging.
		add("Remove Existing Gutters", in.RehangGutterLf, prices["remove_gutters"])
		add("Rehang Gutters", in.RehangGutterLf, prices["rehang_gutters"])
	}

	// Accessories
	if in.VentCount > 0 {
		add("Gable Vents", in.VentCount, prices["vent"])
	}
	if in.CoverUtilitiesCount > 0 {
		add("Cover Utilities", in.CoverUtilitiesCount, prices["cover_utilities"])
	}
	if in.LightPanelCount > 0 {
		add("Light Panels", in.LightPanelCount, prices["light_panel"])
	}
	if in.ReceptacleCount > 0 {
		add("Receptacles", in.ReceptacleCount, prices["receptacle"])
	}
	if in.FaucetCount > 0 {
		add("Faucets", in.FaucetCount, prices["faucet"])
	}
	if in.DryerVentCount > 0 {
		add("Dryer Vents", in.DryerVentCount, prices["dryer_vent"])
	}
	if in.ShutterPairs > 0 {
		add("Shutter Pairs", in.ShutterPairs, prices["shutters"])
	}
	if in.Columns8ftCount > 0 {
		add("Square Columns 8ft", in.Columns8ftCount, prices["columns_8ft"])
	}
	if in.Columns10ftCount > 0 {
		add("Square Columns 10ft", in.Columns10ftCount, prices["columns_10ft"])
	}

	// Other
	if in.RottenWoodLf > 0 {
		add("Rotten Wood", in.RottenWoodLf, prices["rotten_wood"])
	}
	if in.OsbSheets > 0 {
		add("OSB Sheets", in.OsbSheets, prices["osb_sheet"])
	}
	if in.FurOutCount > 0 {
		add("Fur Out (Wall/Chimney)", in.FurOutCount, prices["fur_out"])
	}
	if in.HouseWrapRolls > 0 {
		// Informational row: material is included, no charge.
		items = append(items, LineItem{Name: "House Wrap (incl)", Qty: in.HouseWrapRolls, Rate: 0, Total: 0})
	}

	// Cleanup and trailer ride on the has-work predicate, not their own
	// quantities.
	if HasWork(in) {
		addFlat("Disposal & Cleanup", prices["cleanup"])
		if in.TrailerNeeded {
			addFlat("Trailer", prices["trailer"])
		}
	}

	if in.ExtraLabor > 0 {
		addFlat("Additional Labor", in.ExtraLabor)
	}

	return items
}
