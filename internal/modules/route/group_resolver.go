// README: Route-group resolver; forward or reverse (bidirectional) membership match, first match wins.
package route

import (
	"slices"

	"wasalny/internal/modules/catalog"
)

type Match struct {
	Group   catalog.RouteGroup
	Reverse bool
}

type GroupResolver struct {
	cat    *catalog.Catalog
	groups []catalog.RouteGroup
}

func NewGroupResolver(cat *catalog.Catalog) *GroupResolver {
	return &GroupResolver{cat: cat, groups: cat.RouteGroups()}
}

// Resolve finds the group covering from -> to. Catalog validation rejects
// overlapping groups, so at most one group can match.
func (r *GroupResolver) Resolve(from, to string) (Match, bool) {
	if from == "" || to == "" || from == to {
		return Match{}, false
	}
	for _, g := range r.groups {
		if slices.Contains(g.FromLocations, from) && slices.Contains(g.ToLocations, to) {
			return Match{Group: g}, true
		}
		if g.Bidirectional && slices.Contains(g.FromLocations, to) && slices.Contains(g.ToLocations, from) {
			return Match{Group: g, Reverse: true}, true
		}
	}
	return Match{}, false
}

func (r *GroupResolver) Origins(rt catalog.RouteType) []catalog.Location {
	set := map[string]bool{}
	for _, g := range r.groups {
		if rt != "" && g.Type != rt {
			continue
		}
		for _, id := range g.FromLocations {
			set[id] = true
		}
		if g.Bidirectional {
			for _, id := range g.ToLocations {
				set[id] = true
			}
		}
	}
	return inDeclarationOrder(r.cat, set)
}

func (r *GroupResolver) Destinations(from string) []catalog.Location {
	set := map[string]bool{}
	for _, g := range r.groups {
		if slices.Contains(g.FromLocations, from) {
			for _, id := range g.ToLocations {
				set[id] = true
			}
		}
		if g.Bidirectional && slices.Contains(g.ToLocations, from) {
			for _, id := range g.FromLocations {
				set[id] = true
			}
		}
	}
	delete(set, from)
	return inDeclarationOrder(r.cat, set)
}

func (r *GroupResolver) RouteType(from, to string) (catalog.RouteType, bool) {
	m, ok := r.Resolve(from, to)
	if !ok {
		return "", false
	}
	return m.Group.Type, true
}
