package domain

import "time"

type Cabinet struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// ComponentCount is filled by listings only.
	ComponentCount int `json:"component_count"`
}

// Transfer describes the cabinet assignment before and after a store or remove.
type Transfer struct {
	PreviousCabinetID *int64 `json:"previous_cabinet_id"`
	NewCabinetID      *int64 `json:"new_cabinet_id"`
}
