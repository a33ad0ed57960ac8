// Package scoring computes the carbon footprint score from the three
// consumption inputs using fixed published conversion factors.
package scoring

// Conversion factors, kg CO2 per unit of each input.
const (
	TransportationFactor = 0.14 // per km
	EnergyFactor         = 0.47 // per kWh
	WasteFactor          = 0.11 // per kg waste
)

// Breakdown holds the weighted contribution of each category.
type Breakdown struct {
	Transportation float64 `json:"transportation"`
	Energy         float64 `json:"energy"`
	Waste          float64 `json:"waste"`
}

// Result is the outcome of a footprint calculation.
type Result struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// Calculate returns the weighted footprint score for daily transportation
// in km, monthly energy usage in kWh and weekly waste in kg. The total is
// always the sum of the breakdown terms.
func Calculate(transportation, energy, waste float64) Result {
	b := Breakdown{
		Transportation: transportation * TransportationFactor,
		Energy:         energy * EnergyFactor,
		Waste:          waste * WasteFactor,
	}
	return Result{
		Total:     b.Transportation + b.Energy + b.Waste,
		Breakdown: b,
	}
}
