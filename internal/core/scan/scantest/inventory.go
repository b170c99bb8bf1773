package scantest

import (
	"context"
	"sync"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

// Inventory is an in-memory port.Inventory that counts calls and can be told
// to fail.
type Inventory struct {
	mu         sync.Mutex
	components map[string]domain.Component
	cabinets   []domain.Cabinet

	// Err, when set, is returned by every call.
	Err error
	// Block, when set, makes calls wait until the context is done.
	Block bool
	// OnLookup, when set, runs inside GetComponent before it returns.
	OnLookup func()

	Lookups  int
	Stores   int
	Removals int
}

func NewInventory(cabinets ...domain.Cabinet) *Inventory {
	return &Inventory{
		components: make(map[string]domain.Component),
		cabinets:   cabinets,
	}
}

// Put adds or replaces a component. cabinetID 0 means not stored.
func (inv *Inventory) Put(barcode, name string, cabinetID int64) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	c := domain.Component{Barcode: barcode, Name: name, Quantity: 1, Status: domain.ComponentStatusUnstored}
	inv.assignLocked(&c, cabinetID)
	inv.components[barcode] = c
}

// Component returns the current state of a component.
func (inv *Inventory) Component(barcode string) (domain.Component, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	c, ok := inv.components[barcode]
	return c, ok
}

func (inv *Inventory) assignLocked(c *domain.Component, cabinetID int64) {
	c.CabinetID = nil
	c.CabinetName = ""
	c.Status = domain.ComponentStatusUnstored
	if cabinetID == 0 {
		return
	}
	for _, cab := range inv.cabinets {
		if cab.ID == cabinetID {
			id := cab.ID
			c.CabinetID = &id
			c.CabinetName = cab.Name
			c.Status = domain.ComponentStatusStored
			return
		}
	}
}

func (inv *Inventory) wait(ctx context.Context) error {
	if inv.Block {
		<-ctx.Done()
		return ctx.Err()
	}
	return inv.Err
}

func (inv *Inventory) GetComponent(ctx context.Context, barcode string) (*domain.Component, error) {
	inv.mu.Lock()
	inv.Lookups++
	inv.mu.Unlock()

	if err := inv.wait(ctx); err != nil {
		return nil, err
	}
	if inv.OnLookup != nil {
		inv.OnLookup()
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	c, ok := inv.components[barcode]
	if !ok {
		return nil, domain.ErrComponentNotFound
	}
	return &c, nil
}

func (inv *Inventory) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	if err := inv.wait(ctx); err != nil {
		return nil, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]domain.Cabinet, len(inv.cabinets))
	copy(out, inv.cabinets)
	for i := range out {
		for _, c := range inv.components {
			if c.CabinetID != nil && *c.CabinetID == out[i].ID {
				out[i].ComponentCount++
			}
		}
	}
	return out, nil
}

func (inv *Inventory) StoreComponent(ctx context.Context, barcode string, cabinetID int64) (domain.Transfer, error) {
	if err := inv.wait(ctx); err != nil {
		return domain.Transfer{}, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	c, ok := inv.components[barcode]
	if !ok {
		return domain.Transfer{}, domain.ErrComponentNotFound
	}
	prev := c.CabinetID
	inv.assignLocked(&c, cabinetID)
	if c.CabinetID == nil {
		return domain.Transfer{}, domain.ErrCabinetNotFound
	}
	inv.components[barcode] = c
	inv.Stores++
	return domain.Transfer{PreviousCabinetID: prev, NewCabinetID: c.CabinetID}, nil
}

func (inv *Inventory) RemoveComponent(ctx context.Context, barcode string) (domain.Transfer, error) {
	if err := inv.wait(ctx); err != nil {
		return domain.Transfer{}, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	c, ok := inv.components[barcode]
	if !ok {
		return domain.Transfer{}, domain.ErrComponentNotFound
	}
	prev := c.CabinetID
	inv.assignLocked(&c, 0)
	inv.components[barcode] = c
	inv.Removals++
	return domain.Transfer{PreviousCabinetID: prev}, nil
}
