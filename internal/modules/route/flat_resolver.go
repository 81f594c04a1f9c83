// README: Flat route resolver for the dynamic model; exact directional match, no reverse fallback.
package route

import "wasalny/internal/modules/catalog"

type FlatResolver struct {
	cat *catalog.Catalog
}

func NewFlatResolver(cat *catalog.Catalog) *FlatResolver {
	return &FlatResolver{cat: cat}
}

func (r *FlatResolver) Resolve(from, to string) (catalog.Route, bool) {
	return r.cat.Route(from, to)
}

// Origins filters by the location's own route-type tag when both the tag and
// rt are set; untagged locations are always offered.
func (r *FlatResolver) Origins(rt catalog.RouteType) []catalog.Location {
	set := map[string]bool{}
	for _, rr := range r.cat.Routes() {
		set[rr.From] = true
	}
	out := inDeclarationOrder(r.cat, set)
	if rt == "" {
		return out
	}
	filtered := out[:0]
	for _, l := range out {
		if l.Type == "" || l.Type == rt {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func (r *FlatResolver) Destinations(from string) []catalog.Location {
	set := map[string]bool{}
	for _, rr := range r.cat.Routes() {
		if rr.From == from {
			set[rr.To] = true
		}
	}
	return inDeclarationOrder(r.cat, set)
}

// RouteType reports an empty type for any resolvable pair: flat routes carry
// no partition.
func (r *FlatResolver) RouteType(from, to string) (catalog.RouteType, bool) {
	_, ok := r.Resolve(from, to)
	return "", ok
}
