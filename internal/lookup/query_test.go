package lookup

import (
	"errors"
	"math"
	"testing"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      Query
		wantKind   QueryKind
		wantParams map[string]string
		wantString string
	}{
		{
			name:       "name is trimmed",
			query:      ByName("  New York  "),
			wantKind:   QueryByName,
			wantParams: map[string]string{"q": "New York"},
			wantString: `name("New York")`,
		},
		{
			name:       "coordinates keep full precision",
			query:      ByCoordinates(39.11539, -107.6584),
			wantKind:   QueryByCoordinates,
			wantParams: map[string]string{"lat": "39.11539", "lon": "-107.6584"},
			wantString: "coordinates(39.11539, -107.6584)",
		},
		{
			name:       "integral coordinates",
			query:      ByCoordinates(0, 10),
			wantKind:   QueryByCoordinates,
			wantParams: map[string]string{"lat": "0", "lon": "10"},
			wantString: "coordinates(0, 10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.query.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", tt.query.Kind(), tt.wantKind)
			}
			values := tt.query.values()
			if len(values) != len(tt.wantParams) {
				t.Errorf("values() = %v, want %v", values, tt.wantParams)
			}
			for key, want := range tt.wantParams {
				if got := values.Get(key); got != want {
					t.Errorf("values().Get(%q) = %q, want %q", key, got, want)
				}
			}
			if got := tt.query.String(); got != tt.wantString {
				t.Errorf("String() = %v, want %v", got, tt.wantString)
			}
		})
	}
}

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{name: "name", query: ByName("Paris")},
		{name: "blank name", query: ByName(" \t "), wantErr: ErrEmptyPlace},
		{name: "coordinates", query: ByCoordinates(48.8534, 2.3488)},
		{name: "NaN latitude", query: ByCoordinates(math.NaN(), 0), wantErr: ErrInvalidLatitude},
		{name: "NaN longitude", query: ByCoordinates(0, math.NaN()), wantErr: ErrInvalidLongitude},
		{name: "infinite latitude", query: ByCoordinates(math.Inf(-1), 0), wantErr: ErrInvalidLatitude},
		{name: "zero value", query: Query{}, wantErr: ErrUnknownQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.query.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
