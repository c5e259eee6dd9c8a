// Package zone — geo.go contains pure geographic computation helpers.
package zone

import "dispatch/internal/types"

// containsPoint reports whether p lies inside the polygon using the ray-cast
// (even-odd) rule. Points on an edge may land on either side; zone boundaries
// overlap slightly in practice so this is acceptable.
func containsPoint(polygon []types.Point, p types.Point) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Lat > p.Lat) != (pj.Lat > p.Lat) {
			crossLng := (pj.Lng-pi.Lng)*(p.Lat-pi.Lat)/(pj.Lat-pi.Lat) + pi.Lng
			if p.Lng < crossLng {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
