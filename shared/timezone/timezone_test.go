package timezone_test

import (
	"errors"
	"hotelhills/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339 keeps the given instant",
			value: "2024-01-01T14:00:00Z",
			want:  time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			value: "2024-01-02T10:00:00+07:00",
			want:  time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC),
		},
		{
			name:  "datetime-local without seconds",
			value: "2024-03-01T14:00",
			want:  time.Date(2024, 3, 1, 14, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name:  "plain date",
			value: "2024-03-04",
			want:  time.Date(2024, 3, 4, 0, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name:    "garbage",
			value:   "next tuesday",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseFlexible(tt.value)

			if tt.wantErr {
				if !errors.Is(err, timezone.ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
