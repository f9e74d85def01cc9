// Package geo provides latitude/longitude points and great-circle distances.
package geo

import "math"

// EarthRadiusMiles is the Earth radius used by Haversine.
const EarthRadiusMiles = 3956.0

// Point is a geographic location in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Haversine returns the great-circle distance between a and b in miles.
// The result is always >= 0.
func Haversine(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLng := radians(b.Lng) - radians(a.Lng)

	s := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	// rounding can push s a hair outside [0,1] for (near) antipodal points
	s = math.Min(1, math.Max(0, s))

	return 2 * math.Asin(math.Sqrt(s)) * EarthRadiusMiles
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
