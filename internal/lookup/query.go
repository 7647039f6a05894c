package lookup

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"skycast/internal/types"
)

// QueryKind tells which location key a Query carries
type QueryKind int

const (
	QueryByName QueryKind = iota + 1
	QueryByCoordinates
)

func (k QueryKind) String() string {
	switch k {
	case QueryByName:
		return "name"
	case QueryByCoordinates:
		return "coordinates"
	default:
		return "unknown"
	}
}

// Query identifies the place to look up, either by name or by coordinates.
// Build one with ByName or ByCoordinates.
type Query struct {
	kind   QueryKind
	place  string
	coords types.Coords
}

// ByName builds a query keyed by place name. Surrounding whitespace is trimmed.
func ByName(place string) Query {
	return Query{kind: QueryByName, place: strings.TrimSpace(place)}
}

// ByCoordinates builds a query keyed by latitude and longitude
func ByCoordinates(latitude, longitude float64) Query {
	return Query{kind: QueryByCoordinates, coords: types.NewCoords(latitude, longitude)}
}

func (q Query) Kind() QueryKind {
	return q.kind
}

// Place is empty for coordinate queries
func (q Query) Place() string {
	return q.place
}

// Coordinates is the zero value for name queries
func (q Query) Coordinates() types.Coords {
	return q.coords
}

// Validate rejects queries that must not reach the network
func (q Query) Validate() error {
	switch q.kind {
	case QueryByName:
		if q.place == "" {
			return ErrEmptyPlace
		}
		return nil
	case QueryByCoordinates:
		return q.coords.Validate()
	default:
		return ErrUnknownQuery
	}
}

// values renders the location parameters of the upstream request
func (q Query) values() url.Values {
	v := url.Values{}
	switch q.kind {
	case QueryByName:
		v.Set("q", q.place)
	case QueryByCoordinates:
		v.Set("lat", formatCoordinate(q.coords.Latitude))
		v.Set("lon", formatCoordinate(q.coords.Longitude))
	}
	return v
}

func (q Query) String() string {
	switch q.kind {
	case QueryByName:
		return fmt.Sprintf("name(%q)", q.place)
	case QueryByCoordinates:
		return fmt.Sprintf("coordinates(%s, %s)", formatCoordinate(q.coords.Latitude), formatCoordinate(q.coords.Longitude))
	default:
		return "unknown"
	}
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
