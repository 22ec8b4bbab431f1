package section

// Rectangular section properties for a slab strip or beam stem.
// Dimensions in inches; compression tension sign handling lives in
// the stress package, this one is pure geometry.

type Properties struct {
	WidthIn     float64 `json:"width_in"`
	ThicknessIn float64 `json:"thickness_in"`
	AreaIn2     float64 `json:"area_in2"`
	InertiaIn4  float64 `json:"inertia_in4"`
	TopModulus  float64 `json:"top_modulus_in3"`
	BotModulus  float64 `json:"bot_modulus_in3"`
}

// Rectangle returns the gross properties of a b x h rectangle. The
// centroid sits at mid-depth so top and bottom moduli coincide.
func Rectangle(widthIn, thicknessIn float64) Properties {
	a := widthIn * thicknessIn
	i := widthIn * thicknessIn * thicknessIn * thicknessIn / 12.0
	s := widthIn * thicknessIn * thicknessIn / 6.0
	return Properties{
		WidthIn:     widthIn,
		ThicknessIn: thicknessIn,
		AreaIn2:     a,
		InertiaIn4:  i,
		TopModulus:  s,
		BotModulus:  s,
	}
}
