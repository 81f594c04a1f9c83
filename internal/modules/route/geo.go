// README: Great-circle distance and nearest-origin ordering for pickup suggestions.
package route

import (
	"cmp"
	"math"
	"slices"

	"wasalny/internal/modules/catalog"
)

const earthRadiusKm = 6371.0

// DistanceKm is the haversine distance between two points in decimal degrees.
func DistanceKm(a, b catalog.Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// NearestOrigins orders the network's origins by distance from p. Origins
// without coordinates keep declaration order after the located ones.
func NearestOrigins(n Network, rt catalog.RouteType, p catalog.Point) []catalog.Location {
	origins := n.Origins(rt)
	dist := func(l catalog.Location) float64 {
		if l.Coordinates == nil {
			return math.Inf(1)
		}
		return DistanceKm(p, *l.Coordinates)
	}
	slices.SortStableFunc(origins, func(a, b catalog.Location) int {
		return cmp.Compare(dist(a), dist(b))
	})
	return origins
}
