package port

import (
	"context"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

// Inventory is what a scan station needs from the inventory service.
// GetComponent signals an unknown barcode with domain.ErrComponentNotFound.
type Inventory interface {
	GetComponent(ctx context.Context, barcode string) (*domain.Component, error)
	ListCabinets(ctx context.Context) ([]domain.Cabinet, error)
	StoreComponent(ctx context.Context, barcode string, cabinetID int64) (domain.Transfer, error)
	RemoveComponent(ctx context.Context, barcode string) (domain.Transfer, error)
}
