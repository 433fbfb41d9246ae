package comment

import "time"

// Comment authorship is free text, not tied to a user record.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Rating    *float64  `json:"rating"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Thread is the per-park comments document.
type Thread struct {
	ParkID   string    `json:"parkId"`
	Comments []Comment `json:"comments"`
}

type CreateRequest struct {
	Author string   `json:"author"`
	Text   string   `json:"text"`
	Rating *float64 `json:"rating"`
}

type UpdateRequest struct {
	Text   string   `json:"text"`
	Rating *float64 `json:"rating"`
}

type Listing struct {
	ParkID   string    `json:"parkId"`
	Total    int       `json:"total"`
	Comments []Comment `json:"comments"`
}
