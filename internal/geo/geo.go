// Package geo provides great-circle distance and the bounding-box
// prefilter used by nearby searches.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the Haversine formula.
const EarthRadiusMeters = 6371000.0

// metersPerDegree approximates one degree of latitude (111 km at the
// equator). The bounding box built from it is deliberately loose: it may
// admit candidates outside the radius, never exclude ones inside it.
const metersPerDegree = 111000.0

// Haversine returns the great-circle distance in meters between two points
// given in degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Bounds is a latitude/longitude window approximating a circular search
// radius. Both ranges are inclusive.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoundsAround returns the bounding box for a circle of radiusMeters
// centered at (lat, lng). Near the poles the cosine term vanishes and the
// longitude window would blow up; it is clamped to the full [-180, 180]
// range instead, degrading to a latitude-band scan rather than producing
// infinities.
func BoundsAround(lat, lng, radiusMeters float64) Bounds {
	latRange := radiusMeters / metersPerDegree

	cosLat := math.Cos(radians(lat))
	lngRange := 180.0
	if cosLat > 1e-9 {
		lngRange = radiusMeters / (metersPerDegree * cosLat)
		if lngRange > 180 {
			lngRange = 180
		}
	}

	b := Bounds{
		MinLat: lat - latRange,
		MaxLat: lat + latRange,
		MinLng: lng - lngRange,
		MaxLng: lng + lngRange,
	}
	if b.MinLat < -90 {
		b.MinLat = -90
	}
	if b.MaxLat > 90 {
		b.MaxLat = 90
	}
	if b.MinLng < -180 {
		b.MinLng = -180
	}
	if b.MaxLng > 180 {
		b.MaxLng = 180
	}
	return b
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
