// Package geo computes great-circle distances between coordinate pairs.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for haversine distances.
// Some sources use 6373; 6371 is the canonical mean radius.
const EarthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance in kilometers
// between two points given in decimal degrees. Coordinate signs are
// preserved, so points in different hemispheres measure correctly.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	deltaPhi := radians(lat2 - lat1)
	deltaLambda := radians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
