package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furnihome/internal/geo"
	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/service"
)

type StoreHTTP struct {
	Svc *service.StoreService
}

func boolParam(c echo.Context, name string) (bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func (h *StoreHTTP) GetStores(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_stores")

	var q service.StoreQuery

	lat, lng := c.QueryParam("lat"), c.QueryParam("lng")
	switch {
	case lat != "" && lng != "":
		la, errLat := strconv.ParseFloat(lat, 64)
		ln, errLng := strconv.ParseFloat(lng, 64)
		if errLat != nil || errLng != nil {
			l.Warn("get_stores_failed", "status", 400, "reason", "lat/lng are not numbers", "lat", lat, "lng", lng)
			return echo.NewHTTPError(http.StatusBadRequest, "lat and lng must be numbers")
		}
		q.Origin = &geo.Point{Lat: la, Lng: ln}
	case lat != "" || lng != "":
		l.Warn("get_stores_failed", "status", 400, "reason", "partial coordinates")
		return echo.NewHTTPError(http.StatusBadRequest, "lat and lng must be given together")
	}

	var err error
	for name, dst := range map[string]*bool{
		"openNow":              &q.OpenNow,
		"wheelchairAccessible": &q.WheelchairAccessible,
		"freeParking":          &q.FreeParking,
	} {
		if *dst, err = boolParam(c, name); err != nil {
			l.Warn("get_stores_failed", "status", 400, "reason", "invalid flag", "param", name, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, name+" must be true or false")
		}
	}

	stores, err := h.Svc.FindStores(ctx, q)
	if err != nil {
		return fail(l, "get_stores_failed", err)
	}
	return c.JSON(http.StatusOK, stores)
}
