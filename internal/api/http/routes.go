package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nettikantis/TravelCompanionApp/internal/store"
	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

var validate = validator.New()

// Services bundles the capability orchestrators and the bookmark store the
// HTTP layer dispatches into.
type Services struct {
	Geocode   *travel.GeocodeService
	Places    *travel.PlacesService
	Weather   *travel.WeatherService
	Routes    *travel.RouteService
	Currency  *travel.CurrencyService
	Bookmarks store.BookmarkStore

	// DefaultUnits applies when a weather request names no unit system.
	DefaultUnits string
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	api := app.Group("/api")

	api.Get("/geocode", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 1)
		results, err := svc.Geocode.Geocode(c.Context(), c.Query("q"), limit)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"results": results})
	})

	api.Get("/places", func(c *fiber.Ctx) error {
		var req placesQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		results, err := svc.Places.Search(c.Context(), travel.PlaceQuery{
			Lat:          *req.Lat,
			Lon:          *req.Lon,
			Query:        req.Query,
			RadiusMeters: req.Radius,
			Limit:        req.Limit,
			Source:       req.Source,
		})
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"results": results})
	})

	api.Get("/weather", func(c *fiber.Ctx) error {
		var req coordQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		units := c.Query("units", svc.DefaultUnits)
		report, err := svc.Weather.Report(c.Context(), *req.Lat, *req.Lon, units)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(report)
	})

	api.Get("/travel", func(c *fiber.Ctx) error {
		var req travelQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := svc.Routes.Plan(c.Context(),
			travel.Coordinate{Lat: *req.OriginLat, Lon: *req.OriginLon},
			travel.Coordinate{Lat: *req.DestLat, Lon: *req.DestLon},
			req.Mode,
		)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(result)
	})

	api.Get("/currency", func(c *fiber.Ctx) error {
		base := c.Query("base", travel.DefaultBaseCurrency)
		var symbols []string
		if raw := strings.TrimSpace(c.Query("symbols")); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s != "" {
					symbols = append(symbols, strings.ToUpper(s))
				}
			}
		}

		table, err := svc.Currency.Rates(c.Context(), base, symbols)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(table)
	})

	registerBookmarkRoutes(api, svc.Bookmarks)
}

// mapServiceError translates orchestrator errors into HTTP statuses.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, travel.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, travel.ErrUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "no provider could serve the request")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// coordQuery holds the lat/lon pair most endpoints require.
type coordQuery struct {
	Lat *float64 `validate:"required"`
	Lon *float64 `validate:"required"`
}

func (q *coordQuery) bind(c *fiber.Ctx) error {
	var err error
	if q.Lat, err = queryFloat(c, "lat"); err != nil {
		return err
	}
	if q.Lon, err = queryFloat(c, "lon"); err != nil {
		return err
	}
	return validate.Struct(q)
}

// placesQuery holds query parameters for the places endpoint.
type placesQuery struct {
	coordQuery
	Query  string
	Radius int
	Limit  int
	Source string
}

func (q *placesQuery) bind(c *fiber.Ctx) error {
	if err := q.coordQuery.bind(c); err != nil {
		return err
	}
	q.Query = c.Query("query")
	q.Radius = c.QueryInt("radius", 0)
	q.Limit = c.QueryInt("limit", 0)
	q.Source = c.Query("source", "auto")
	return nil
}

// travelQuery holds query parameters for the routing endpoint.
type travelQuery struct {
	OriginLat *float64 `validate:"required"`
	OriginLon *float64 `validate:"required"`
	DestLat   *float64 `validate:"required"`
	DestLon   *float64 `validate:"required"`
	Mode      string
}

func (q *travelQuery) bind(c *fiber.Ctx) error {
	var err error
	if q.OriginLat, err = queryFloat(c, "origin_lat"); err != nil {
		return err
	}
	if q.OriginLon, err = queryFloat(c, "origin_lon"); err != nil {
		return err
	}
	if q.DestLat, err = queryFloat(c, "dest_lat"); err != nil {
		return err
	}
	if q.DestLon, err = queryFloat(c, "dest_lon"); err != nil {
		return err
	}
	q.Mode = c.Query("mode", "driving")
	return validate.Struct(q)
}

// queryFloat parses an optional float query parameter, distinguishing
// "absent" from zero.
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q is not a number", key, raw)
	}
	return &v, nil
}
