package bulletin

import "time"

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ContactInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Bulletin struct {
	ID          string       `json:"id"`
	ParkID      string       `json:"parkId"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AgeRange    *string      `json:"ageRange"`
	TimeRange   *TimeRange   `json:"timeRange"`
	ContactInfo *ContactInfo `json:"contactInfo"`
	CreatedBy   string       `json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

// Board is the per-park bulletin document. LastID drives the per-park
// sequential bulletin ids, independent of the global park counter.
type Board struct {
	ParkID    string     `json:"parkId"`
	Bulletins []Bulletin `json:"bulletins"`
	LastID    int        `json:"lastId"`
}

type CreateRequest struct {
	Type         string       `json:"type" validate:"required"`
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	AgeRange     *string      `json:"ageRange"`
	TimeRange    *TimeRange   `json:"timeRange"`
	ContactInfo  *ContactInfo `json:"contactInfo"`
	DaysToExpire int          `json:"daysToExpire"`
}

type UpdateRequest struct {
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AgeRange    *string      `json:"ageRange"`
	TimeRange   *TimeRange   `json:"timeRange"`
	ContactInfo *ContactInfo `json:"contactInfo"`
}
