package port

import (
	"context"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

type DatabaseRepository interface {
	// GetComponent retrieves a component with its cabinet name joined, nil if missing
	GetComponent(ctx context.Context, barcode string) (*domain.Component, error)

	// ListComponents returns all components ordered by name and barcode
	ListComponents(ctx context.Context) ([]domain.Component, error)

	// SearchComponents matches the term against barcode, name and descriptive fields
	SearchComponents(ctx context.Context, term string, limit int) ([]domain.Component, error)

	// CreateComponent inserts a component and returns its id
	CreateComponent(ctx context.Context, c domain.Component) (int64, error)

	// UpdateComponent overwrites the descriptive fields of a component, false if missing
	UpdateComponent(ctx context.Context, c domain.Component) (bool, error)

	// DeleteComponent removes a component and its activity records, false if missing
	DeleteComponent(ctx context.Context, barcode string) (bool, error)

	// SetComponentCabinet assigns (or clears, with nil) the cabinet of a component
	SetComponentCabinet(ctx context.Context, barcode string, cabinetID *int64) error

	// GetCabinet retrieves a cabinet by id, nil if missing
	GetCabinet(ctx context.Context, id int64) (*domain.Cabinet, error)

	// ListCabinets returns all cabinets with their component counts
	ListCabinets(ctx context.Context) ([]domain.Cabinet, error)

	// CreateCabinet inserts a cabinet and returns its id
	CreateCabinet(ctx context.Context, c domain.Cabinet) (int64, error)

	// UpdateCabinet overwrites a cabinet, false if missing
	UpdateCabinet(ctx context.Context, c domain.Cabinet) (bool, error)

	// DeleteCabinet removes a cabinet and unassigns its components, false if missing
	DeleteCabinet(ctx context.Context, id int64) (bool, error)

	// CabinetContents lists the components assigned to a cabinet
	CabinetContents(ctx context.Context, id int64) ([]domain.Component, error)

	// ListActivities returns the activity records of a component, newest first
	ListActivities(ctx context.Context, barcode string) ([]domain.ActivityRecord, error)

	// CreateActivity inserts an activity record and returns its id
	CreateActivity(ctx context.Context, a domain.ActivityRecord) (int64, error)

	// UpdateActivity overwrites an activity record, false if missing
	UpdateActivity(ctx context.Context, a domain.ActivityRecord) (bool, error)

	// DeleteActivity removes an activity record, false if missing
	DeleteActivity(ctx context.Context, id int64) (bool, error)

	// Statistics aggregates counts over cabinets and components
	Statistics(ctx context.Context) (*domain.Statistics, error)
}
