// README: Catalog store backed by PostgreSQL (locations, vehicles, route groups, fares, flat routes).
package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS locations (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    name_ar     TEXT NOT NULL,
    route_type  TEXT NOT NULL DEFAULT '',
    lat         DOUBLE PRECISION,
    lng         DOUBLE PRECISION,
    position    INT NOT NULL
);
CREATE TABLE IF NOT EXISTS vehicles (
    category                  TEXT PRIMARY KEY,
    category_ar               TEXT NOT NULL,
    min_passengers            INT NOT NULL,
    max_passengers            INT NOT NULL,
    base_multiplier           DOUBLE PRECISION NOT NULL DEFAULT 1,
    price_per_extra_passenger DOUBLE PRECISION NOT NULL DEFAULT 0,
    position                  INT NOT NULL
);
CREATE TABLE IF NOT EXISTS route_groups (
    id            TEXT PRIMARY KEY,
    route_type    TEXT NOT NULL,
    name_ar       TEXT NOT NULL,
    bidirectional BOOLEAN NOT NULL DEFAULT FALSE,
    position      INT NOT NULL
);
CREATE TABLE IF NOT EXISTS route_group_locations (
    group_id    TEXT NOT NULL REFERENCES route_groups(id) ON DELETE CASCADE,
    location_id TEXT NOT NULL REFERENCES locations(id),
    side        TEXT NOT NULL CHECK (side IN ('from', 'to')),
    position    INT NOT NULL,
    PRIMARY KEY (group_id, location_id, side)
);
CREATE TABLE IF NOT EXISTS route_group_fares (
    group_id   TEXT NOT NULL REFERENCES route_groups(id) ON DELETE CASCADE,
    category   TEXT NOT NULL REFERENCES vehicles(category),
    one_way    DOUBLE PRECISION NOT NULL,
    round_trip DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (group_id, category)
);
CREATE TABLE IF NOT EXISTS routes (
    id            TEXT PRIMARY KEY,
    from_location TEXT NOT NULL REFERENCES locations(id),
    to_location   TEXT NOT NULL REFERENCES locations(id),
    name_ar       TEXT NOT NULL,
    distance_km   DOUBLE PRECISION NOT NULL DEFAULT 0,
    duration_min  INT NOT NULL DEFAULT 0,
    base_price    DOUBLE PRECISION NOT NULL,
    position      INT NOT NULL,
    UNIQUE (from_location, to_location)
);`

const (
	queryLocations      = `SELECT id, name, name_ar, route_type, lat, lng FROM locations ORDER BY position`
	queryVehicles       = `SELECT category, category_ar, min_passengers, max_passengers, base_multiplier, price_per_extra_passenger FROM vehicles ORDER BY position`
	queryGroups         = `SELECT id, route_type, name_ar, bidirectional FROM route_groups ORDER BY position`
	queryGroupLocations = `SELECT group_id, location_id, side FROM route_group_locations ORDER BY group_id, side, position`
	queryGroupFares     = `SELECT group_id, category, one_way, round_trip FROM route_group_fares`
	queryRoutes         = `SELECT id, from_location, to_location, name_ar, distance_km, duration_min, base_price FROM routes ORDER BY position`
)

func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("catalog store: init schema: %w", err)
	}
	return nil
}

// Load reads the tabular sections from the database. Calendar, services,
// discounts and settings are taken from base.
func (s *Store) Load(ctx context.Context, base Data) (*Catalog, error) {
	data := cloneData(base)

	locs, err := s.loadLocations(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.loadVehicles(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.loadRoutes(ctx)
	if err != nil {
		return nil, err
	}

	data.Locations = locs
	data.Vehicles = vehicles
	data.RouteGroups = groups
	data.Routes = routes
	// Discounts may name routes that the database no longer carries.
	data.Discounts = pruneDiscounts(data.Discounts, routes)
	return New(data)
}

func (s *Store) loadLocations(ctx context.Context) ([]Location, error) {
	rows, err := s.db.QueryContext(ctx, queryLocations)
	if err != nil {
		return nil, fmt.Errorf("catalog store: query locations: %w", err)
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var (
			l        Location
			rt       string
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.NameAr, &rt, &lat, &lng); err != nil {
			return nil, fmt.Errorf("catalog store: scan location: %w", err)
		}
		l.Type = RouteType(rt)
		if lat.Valid && lng.Valid {
			l.Coordinates = &Point{Lat: lat.Float64, Lng: lng.Float64}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) loadVehicles(ctx context.Context) ([]VehiclePricing, error) {
	rows, err := s.db.QueryContext(ctx, queryVehicles)
	if err != nil {
		return nil, fmt.Errorf("catalog store: query vehicles: %w", err)
	}
	defer rows.Close()

	var out []VehiclePricing
	for rows.Next() {
		var v VehiclePricing
		var cat string
		if err := rows.Scan(&cat, &v.CategoryAr, &v.MinPassengers, &v.MaxPassengers, &v.BaseMultiplier, &v.PricePerExtraPassenger); err != nil {
			return nil, fmt.Errorf("catalog store: scan vehicle: %w", err)
		}
		v.Category = VehicleCategory(cat)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) loadGroups(ctx context.Context) ([]RouteGroup, error) {
	rows, err := s.db.QueryContext(ctx, queryGroups)
	if err != nil {
		return nil, fmt.Errorf("catalog store: query route groups: %w", err)
	}
	var groups []RouteGroup
	index := map[string]int{}
	for rows.Next() {
		var g RouteGroup
		var rt string
		if err := rows.Scan(&g.ID, &rt, &g.NameAr, &g.Bidirectional); err != nil {
			rows.Close()
			return nil, fmt.Errorf("catalog store: scan route group: %w", err)
		}
		g.Type = RouteType(rt)
		g.Pricing = map[VehicleCategory]Fare{}
		index[g.ID] = len(groups)
		groups = append(groups, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog store: route groups: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, queryGroupLocations)
	if err != nil {
		return nil, fmt.Errorf("catalog store: query group locations: %w", err)
	}
	for rows.Next() {
		var groupID, locID, side string
		if err := rows.Scan(&groupID, &locID, &side); err != nil {
			rows.Close()
			return nil, fmt.Errorf("catalog store: scan group location: %w", err)
		}
		i, ok := index[groupID]
		if !ok {
			continue
		}
		if side == "from" {
			groups[i].FromLocations = append(groups[i].FromLocations, locID)
		} else {
			groups[i].ToLocations = append(groups[i].ToLocations, locID)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog store: group locations: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, queryGroupFares)
	if err != nil {
		return nil, fmt.Errorf("catalog store: query group fares: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var groupID, cat string
		var fare Fare
		if err := rows.Scan(&groupID, &cat, &fare.OneWay, &fare.RoundTrip); err != nil {
			return nil, fmt.Errorf("catalog store: scan group fare: %w", err)
		}
		if i, ok := index[groupID]; ok {
			groups[i].Pricing[VehicleCategory(cat)] = fare
		}
	}
	return groups, rows.Err()
}

func (s *Store) loadRoutes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.QueryContext(ctx, queryRoutes)
	if err != nil {
		return nil, fmt.Errorf("catalog store: query routes: %w", err)
	}
	defer rows.Close()

	var out []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.From, &r.To, &r.NameAr, &r.DistanceKm, &r.DurationMinutes, &r.BasePriceEGP); err != nil {
			return nil, fmt.Errorf("catalog store: scan route: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Seed replaces the tabular sections with data in one transaction.
func (s *Store) Seed(ctx context.Context, data Data) (err error) {
	if err := Validate(data); err != nil {
		return fmt.Errorf("catalog store: seed: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"route_group_fares", "route_group_locations", "route_groups", "routes", "vehicles", "locations"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("catalog store: clear %s: %w", table, err)
		}
	}

	for i, l := range data.Locations {
		var lat, lng sql.NullFloat64
		if l.Coordinates != nil {
			lat = sql.NullFloat64{Float64: l.Coordinates.Lat, Valid: true}
			lng = sql.NullFloat64{Float64: l.Coordinates.Lng, Valid: true}
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO locations (id, name, name_ar, route_type, lat, lng, position) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.ID, l.Name, l.NameAr, string(l.Type), lat, lng, i); err != nil {
			return fmt.Errorf("catalog store: insert location %s: %w", l.ID, err)
		}
	}
	for i, v := range data.Vehicles {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO vehicles (category, category_ar, min_passengers, max_passengers, base_multiplier, price_per_extra_passenger, position) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			string(v.Category), v.CategoryAr, v.MinPassengers, v.MaxPassengers, v.BaseMultiplier, v.PricePerExtraPassenger, i); err != nil {
			return fmt.Errorf("catalog store: insert vehicle %s: %w", v.Category, err)
		}
	}
	for i, g := range data.RouteGroups {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO route_groups (id, route_type, name_ar, bidirectional, position) VALUES ($1, $2, $3, $4, $5)`,
			g.ID, string(g.Type), g.NameAr, g.Bidirectional, i); err != nil {
			return fmt.Errorf("catalog store: insert route group %s: %w", g.ID, err)
		}
		sides := []struct {
			name string
			ids  []string
		}{{"from", g.FromLocations}, {"to", g.ToLocations}}
		for _, side := range sides {
			for pos, id := range side.ids {
				if _, err = tx.ExecContext(ctx,
					`INSERT INTO route_group_locations (group_id, location_id, side, position) VALUES ($1, $2, $3, $4)`,
					g.ID, id, side.name, pos); err != nil {
					return fmt.Errorf("catalog store: insert group location %s/%s: %w", g.ID, id, err)
				}
			}
		}
		// Fares go in vehicle declaration order.
		for _, v := range data.Vehicles {
			fare, ok := g.Pricing[v.Category]
			if !ok {
				continue
			}
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO route_group_fares (group_id, category, one_way, round_trip) VALUES ($1, $2, $3, $4)`,
				g.ID, string(v.Category), fare.OneWay, fare.RoundTrip); err != nil {
				return fmt.Errorf("catalog store: insert fare %s/%s: %w", g.ID, v.Category, err)
			}
		}
	}
	for i, r := range data.Routes {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO routes (id, from_location, to_location, name_ar, distance_km, duration_min, base_price, position) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			r.ID, r.From, r.To, r.NameAr, r.DistanceKm, r.DurationMinutes, r.BasePriceEGP, i); err != nil {
			return fmt.Errorf("catalog store: insert route %s: %w", r.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("catalog store: commit: %w", err)
	}
	return nil
}

func pruneDiscounts(rules []DiscountRule, routes []Route) []DiscountRule {
	known := make(map[string]bool, len(routes))
	for _, r := range routes {
		known[r.ID] = true
	}
	out := rules[:0]
	for _, d := range rules {
		if len(d.Conditions.SpecificRoutes) == 0 {
			out = append(out, d)
			continue
		}
		var ids []string
		for _, id := range d.Conditions.SpecificRoutes {
			if known[id] {
				ids = append(ids, id)
			}
		}
		// A route-restricted rule with no surviving routes would otherwise apply everywhere.
		if len(ids) == 0 {
			continue
		}
		d.Conditions.SpecificRoutes = ids
		out = append(out, d)
	}
	return out
}
