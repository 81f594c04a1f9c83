// README: Route resolution over the catalog; narrows origins and destinations and detects the route type of a pair.
package route

import "wasalny/internal/modules/catalog"

// Network is the view of the catalog the booking form needs: which places
// can be picked, and which partition a chosen pair belongs to.
type Network interface {
	// Origins lists selectable starting points. An empty route type means all.
	Origins(rt catalog.RouteType) []catalog.Location
	// Destinations lists places reachable from the given origin.
	Destinations(from string) []catalog.Location
	// RouteType reports the partition of a resolvable pair. The type is empty
	// when the network has no partitions.
	RouteType(from, to string) (catalog.RouteType, bool)
}

// inDeclarationOrder returns the catalog locations whose ids are in set,
// in catalog order.
func inDeclarationOrder(cat *catalog.Catalog, set map[string]bool) []catalog.Location {
	out := make([]catalog.Location, 0, len(set))
	for _, l := range cat.Locations() {
		if set[l.ID] {
			out = append(out, l)
		}
	}
	return out
}
