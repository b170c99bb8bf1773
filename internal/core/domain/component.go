package domain

import "time"

type ComponentStatus string

const (
	ComponentStatusStored   ComponentStatus = "eingelagert"
	ComponentStatusUnstored ComponentStatus = "ausgelagert"
)

type Component struct {
	ID                  int64           `json:"id"`
	Barcode             string          `json:"barcode"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Project             string          `json:"project,omitempty"`
	ResponsibleEngineer string          `json:"responsible_engineer,omitempty"`
	Standard            string          `json:"standard,omitempty"`
	Quantity            int             `json:"quantity"`
	Status              ComponentStatus `json:"status"`
	CabinetID           *int64          `json:"cabinet_id"`
	CabinetName         string          `json:"cabinet_name,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Stored reports whether the component is currently assigned to a cabinet.
func (c *Component) Stored() bool {
	return c.CabinetID != nil
}
