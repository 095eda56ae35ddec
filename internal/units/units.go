// Package units provides the IP/SI conversions used by the lifecycle-cost
// measure. The building model stores areas in square meters and cost rates in
// currency per square meter; the measure's declared arguments use square feet.
package units

// SquareMetersPerSquareFoot is the exact area conversion factor (1 ft² in m²).
const SquareMetersPerSquareFoot = 0.09290304

// SquareFeetToSquareMeters converts an area from ft² to m².
func SquareFeetToSquareMeters(area float64) float64 {
	return area * SquareMetersPerSquareFoot
}

// SquareMetersToSquareFeet converts an area from m² to ft².
func SquareMetersToSquareFeet(area float64) float64 {
	return area / SquareMetersPerSquareFoot
}

// CostPerSquareFootToSI converts a per-area rate from $/ft² to $/m².
// A per-area quantity scales by the inverse of the area conversion: a rate
// spread over a smaller unit area becomes larger per m².
func CostPerSquareFootToSI(rate float64) float64 {
	return rate / SquareMetersPerSquareFoot
}

// CostPerSquareMeterToIP converts a per-area rate from $/m² to $/ft².
func CostPerSquareMeterToIP(rate float64) float64 {
	return rate * SquareMetersPerSquareFoot
}
