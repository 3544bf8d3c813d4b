package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used for store distances.
const EarthRadiusMiles = 3959.0

type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// DistanceMiles is the great-circle distance between a and b, rounded to one
// decimal place.
func DistanceMiles(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(EarthRadiusMiles*c*10) / 10
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
