package park

import (
	"time"

	"backend-parkhub/internal/shared/geo"
)

type Location struct {
	Address     string          `json:"address"`
	Coordinates geo.Coordinates `json:"coordinates"`
	City        string          `json:"city"`
	Country     string          `json:"country"`
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Photos struct {
	Main    *string  `json:"main"`
	Gallery []string `json:"gallery"`
}

type Hours struct {
	AlwaysOpen bool   `json:"always_open"`
	Schedule   string `json:"schedule"`
}

type Park struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       Location        `json:"location"`
	Description    string          `json:"description"`
	Hours          Hours           `json:"hours"`
	Rating         Rating          `json:"rating"`
	Photos         Photos          `json:"photos"`
	Elements       map[string]bool `json:"elements"`
	CustomElements []string        `json:"custom_elements"`
	Amenities      map[string]bool `json:"amenities"`
	Policies       map[string]bool `json:"policies"`
	Surface        string          `json:"surface"`
	Condition      string          `json:"condition"`
	WeatherNotes   map[string]any  `json:"weather_notes"`
	AgeRange       string          `json:"age_range"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CreatedBy      string          `json:"created_by"`

	// Distance from the query center in meters, set by the geo stages only.
	Distance *float64 `json:"distance,omitempty"`
}

type CreateRequest struct {
	Name           string          `json:"name" validate:"required"`
	Location       Location        `json:"location"`
	Description    string          `json:"description"`
	Hours          *Hours          `json:"hours"`
	Photos         *Photos         `json:"photos"`
	Elements       map[string]bool `json:"elements"`
	CustomElements []string        `json:"custom_elements"`
	Amenities      map[string]bool `json:"amenities"`
	Policies       map[string]bool `json:"policies"`
	Surface        string          `json:"surface"`
	Condition      string          `json:"condition"`
	WeatherNotes   map[string]any  `json:"weather_notes"`
	AgeRange       string          `json:"age_range"`
}

type RateRequest struct {
	Rating float64 `json:"rating"`
}
