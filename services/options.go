package services

// ColorOption is one selectable color with its swatch hex.
type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ColorGroup is a named section of the siding color chart.
type ColorGroup struct {
	Group  string        `json:"group"`
	Colors []ColorOption `json:"colors"`
}

// SidingColorGroups returns the siding color chart in display order.
func SidingColorGroups() []ColorGroup {
	return []ColorGroup{
		{Group: "Neutrals", Colors: []ColorOption{
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Almond", Hex: "#EFDECD"},
			{Name: "Ivory", Hex: "#FFFFF0"},
			{Name: "Sandstone", Hex: "#786D5F"},
			{Name: "Natural Linen", Hex: "#E0D8C8"},
			{Name: "Pebblestone Clay", Hex: "#B8A590"},
			{Name: "Wicker", Hex: "#C4A77D"},
			{Name: "Desert Sand", Hex: "#D2B48C"},
		}},
		{Group: "Grays", Colors: []ColorOption{
			{Name: "Pewter", Hex: "#8B8D8E"},
			{Name: "Harbor Gray", Hex: "#6B7280"},
			{Name: "Deep Granite", Hex: "#4B5563"},
			{Name: "Charcoal Smoke", Hex: "#374151"},
			{Name: "Sterling", Hex: "#9CA3AF"},
			{Name: "Graphite", Hex: "#1F2937"},
		}},
		{Group: "Blues", Colors: []ColorOption{
			{Name: "Newport Blue", Hex: "#264653"},
			{Name: "Coastal Blue", Hex: "#457B9D"},
			{Name: "Regatta", Hex: "#1D3557"},
			{Name: "Bayou", Hex: "#2C5F7C"},
			{Name: "Pacific Blue", Hex: "#118AB2"},
		}},
		{Group: "Greens", Colors: []ColorOption{
			{Name: "Cypress", Hex: "#4A5D4C"},
			{Name: "Juniper", Hex: "#3D5A45"},
			{Name: "Everest", Hex: "#2D4A3E"},
			{Name: "Sage", Hex: "#87A96B"},
			{Name: "Forest", Hex: "#228B22"},
		}},
		{Group: "Browns", Colors: []ColorOption{
			{Name: "Russet", Hex: "#80461B"},
			{Name: "Autumn Red", Hex: "#8B4513"},
			{Name: "Bordeaux", Hex: "#6B2D5B"},
			{Name: "Terra Cotta", Hex: "#E2725B"},
			{Name: "Teak", Hex: "#B38B6D"},
			{Name: "Montana Suede", Hex: "#9B7653"},
			{Name: "Sable", Hex: "#8B6914"},
			{Name: "Chestnut", Hex: "#954535"},
			{Name: "Timber", Hex: "#5D4E37"},
			{Name: "Maple", Hex: "#C04000"},
			{Name: "Walnut", Hex: "#5C4033"},
		}},
	}
}

// G8Colors returns the trim coil color options for wraps and gutters.
func G8Colors() []ColorOption {
	return []ColorOption{
		{Name: "White", Hex: "#FFFFFF"},
		{Name: "Almond", Hex: "#EFDECD"},
		{Name: "Brown", Hex: "#8B4513"},
		{Name: "Black", Hex: "#1a1a1a"},
		{Name: "Clay", Hex: "#B8A590"},
		{Name: "Pewter", Hex: "#8B8D8E"},
		{Name: "Musket Brown", Hex: "#5C4033"},
		{Name: "Forest Green", Hex: "#228B22"},
		{Name: "Royal Brown", Hex: "#523A28"},
		{Name: "Charcoal", Hex: "#374151"},
	}
}

// LookupColorHex finds the swatch hex for a color name, checking the
// siding chart first and the trim coil list second.
func LookupColorHex(name string) (string, bool) {
	for _, g := range SidingColorGroups() {
		for _, c := range g.Colors {
			if c.Name == name {
				return c.Hex, true
			}
		}
	}
	for _, c := range G8Colors() {
		if c.Name == name {
			return c.Hex, true
		}
	}
	return "", false
}
