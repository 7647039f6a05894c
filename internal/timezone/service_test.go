package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Paris, France",
			latitude:  48.8534,
			longitude: 2.3488,
			want:      "Europe/Paris",
		},
		{
			name:      "Almaty, Kazakhstan",
			latitude:  43.25,
			longitude: 76.9167,
			want:      "Asia/Almaty",
		},
		{
			name:      "Aspen, Colorado",
			latitude:  39.11539,
			longitude: -107.65840,
			want:      "America/Denver",
		},
		{
			name:      "Sydney, Australia",
			latitude:  -33.8679,
			longitude: 151.2073,
			want:      "Australia/Sydney",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewService_ReturnsSharedInstance(t *testing.T) {
	first, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	second, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if first != second {
		t.Error("NewService() returned different instances")
	}
}
