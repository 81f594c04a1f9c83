// README: Catalog handlers: pickable locations, destinations, vehicles and services.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/route"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	network route.Network
}

func NewCatalogHandler(cat *catalog.Catalog, network route.Network) *CatalogHandler {
	return &CatalogHandler{catalog: cat, network: network}
}

// Locations lists origins, optionally narrowed to a route type and ordered
// by distance from lat/lng.
func (h *CatalogHandler) Locations(c *gin.Context) {
	rt := catalog.RouteType(c.Query("route_type"))
	switch rt {
	case "", catalog.RouteTypeInternal, catalog.RouteTypeTravel:
	default:
		writeError(c, http.StatusBadRequest, "invalid route_type")
		return
	}

	latQ, lngQ := c.Query("lat"), c.Query("lng")
	if latQ == "" && lngQ == "" {
		writeJSON(c, http.StatusOK, gin.H{"locations": h.network.Origins(rt)})
		return
	}
	lat, errLat := strconv.ParseFloat(latQ, 64)
	lng, errLng := strconv.ParseFloat(lngQ, 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		writeError(c, http.StatusBadRequest, "invalid coordinates")
		return
	}
	locs := route.NearestOrigins(h.network, rt, catalog.Point{Lat: lat, Lng: lng})
	writeJSON(c, http.StatusOK, gin.H{"locations": locs})
}

func (h *CatalogHandler) Destinations(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		writeError(c, http.StatusBadRequest, "missing from")
		return
	}
	if _, ok := h.catalog.Location(from); !ok {
		writeError(c, http.StatusNotFound, "unknown location")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"locations": h.network.Destinations(from)})
}

func (h *CatalogHandler) Vehicles(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"vehicles": h.catalog.Vehicles()})
}

func (h *CatalogHandler) Services(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"services": h.catalog.Services()})
}
