package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/port"
)

var ErrConcurrentUpdate = errors.New("component is being moved by another station")

const (
	guardTTL      = 2 * time.Second
	statisticsKey = "stats:inventory"
	statisticsTTL = 30 * time.Second
	searchLimit   = 100
	minSearchLen  = 2
)

type InventoryService struct {
	db     port.DatabaseRepository
	cache  port.CacheRepository
	now    func() time.Time
	minLen int
	maxLen int
	logger *zap.Logger
}

func NewInventoryService(db port.DatabaseRepository, cache port.CacheRepository, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		db:     db,
		cache:  cache,
		now:    time.Now,
		minLen: domain.DefaultMinBarcodeLen,
		maxLen: domain.DefaultMaxBarcodeLen,
		logger: logger.With(zap.String("component", "inventory")),
	}
}

// SetBarcodePolicy changes the length bounds applied to new barcodes. Scan
// stations and the service should use the same bounds.
func (s *InventoryService) SetBarcodePolicy(minLen, maxLen int) {
	s.minLen, s.maxLen = minLen, maxLen
}

func (s *InventoryService) GetComponent(ctx context.Context, barcode string) (*domain.Component, error) {
	c, err := s.db.GetComponent(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("get component: %w", err)
	}
	if c == nil {
		return nil, domain.ErrComponentNotFound
	}
	return c, nil
}

func (s *InventoryService) ListComponents(ctx context.Context) ([]domain.Component, error) {
	return s.db.ListComponents(ctx)
}

func (s *InventoryService) SearchComponents(ctx context.Context, query string) ([]domain.Component, error) {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < minSearchLen {
		return nil, fmt.Errorf("%w: search term needs at least %d characters", domain.ErrInvalidInput, minSearchLen)
	}
	return s.db.SearchComponents(ctx, q, searchLimit)
}

func (s *InventoryService) CreateComponent(ctx context.Context, c domain.Component) (*domain.Component, error) {
	c.Barcode = strings.TrimSpace(c.Barcode)
	if !domain.ValidBarcode(c.Barcode, s.minLen, s.maxLen) {
		return nil, domain.ErrInvalidBarcode
	}

	existing, err := s.db.GetComponent(ctx, c.Barcode)
	if err != nil {
		return nil, fmt.Errorf("check barcode: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateBarcode
	}

	if c.Quantity <= 0 {
		c.Quantity = 1
	}
	c.Status = domain.ComponentStatusUnstored
	if c.CabinetID != nil {
		if _, err := s.getCabinet(ctx, *c.CabinetID); err != nil {
			return nil, err
		}
		c.Status = domain.ComponentStatusStored
	}

	if _, err := s.db.CreateComponent(ctx, c); err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	s.invalidateStatistics(ctx)
	s.logger.Info("component registered", zap.String("barcode", c.Barcode))

	return s.GetComponent(ctx, c.Barcode)
}

func (s *InventoryService) UpdateComponent(ctx context.Context, barcode string, c domain.Component) (*domain.Component, error) {
	c.Barcode = barcode
	if c.Quantity <= 0 {
		c.Quantity = 1
	}
	ok, err := s.db.UpdateComponent(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	if !ok {
		return nil, domain.ErrComponentNotFound
	}
	s.invalidateStatistics(ctx)
	return s.GetComponent(ctx, barcode)
}

func (s *InventoryService) DeleteComponent(ctx context.Context, barcode string) error {
	ok, err := s.db.DeleteComponent(ctx, barcode)
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	if !ok {
		return domain.ErrComponentNotFound
	}
	s.invalidateStatistics(ctx)
	s.logger.Info("component deleted", zap.String("barcode", barcode))
	return nil
}

// StoreComponent assigns a component to a cabinet and records a STOR
// activity.
func (s *InventoryService) StoreComponent(ctx context.Context, barcode string, cabinetID int64) (domain.Transfer, error) {
	release, err := s.guard(ctx, "store", barcode)
	if err != nil {
		return domain.Transfer{}, err
	}

	c, err := s.GetComponent(ctx, barcode)
	if err != nil {
		release()
		return domain.Transfer{}, err
	}
	if _, err := s.getCabinet(ctx, cabinetID); err != nil {
		release()
		return domain.Transfer{}, err
	}

	if err := s.db.SetComponentCabinet(ctx, barcode, &cabinetID); err != nil {
		release()
		return domain.Transfer{}, fmt.Errorf("store component: %w", err)
	}
	s.recordMovement(ctx, barcode, domain.ActivityFlags{Stor: true})
	s.invalidateStatistics(ctx)

	s.logger.Info("component stored", zap.String("barcode", barcode), zap.Int64("cabinet_id", cabinetID))
	return domain.Transfer{PreviousCabinetID: c.CabinetID, NewCabinetID: &cabinetID}, nil
}

// RemoveComponent clears the cabinet of a component and records a DE-STOR
// activity.
func (s *InventoryService) RemoveComponent(ctx context.Context, barcode string) (domain.Transfer, error) {
	release, err := s.guard(ctx, "remove", barcode)
	if err != nil {
		return domain.Transfer{}, err
	}

	c, err := s.GetComponent(ctx, barcode)
	if err != nil {
		release()
		return domain.Transfer{}, err
	}

	if err := s.db.SetComponentCabinet(ctx, barcode, nil); err != nil {
		release()
		return domain.Transfer{}, fmt.Errorf("remove component: %w", err)
	}
	s.recordMovement(ctx, barcode, domain.ActivityFlags{DeStor: true})
	s.invalidateStatistics(ctx)

	s.logger.Info("component removed", zap.String("barcode", barcode))
	return domain.Transfer{PreviousCabinetID: c.CabinetID}, nil
}

// guard takes the per-barcode guard for action. The guard stays until its
// ttl so that a second station repeating the same move in that time is
// refused; release drops it early when the move failed.
func (s *InventoryService) guard(ctx context.Context, action, barcode string) (release func(), err error) {
	key := "guard:" + action + ":" + barcode
	ok, err := s.cache.AcquireGuard(ctx, key, guardTTL)
	if err != nil {
		return nil, fmt.Errorf("guard check failed: %w", err)
	}
	if !ok {
		return nil, ErrConcurrentUpdate
	}
	return func() {
		if err := s.cache.ReleaseGuard(ctx, key); err != nil {
			s.logger.Warn("release guard failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// recordMovement appends the automatic STOR/DE-STOR record. A failure here
// does not undo the move.
func (s *InventoryService) recordMovement(ctx context.Context, barcode string, flags domain.ActivityFlags) {
	_, err := s.db.CreateActivity(ctx, domain.ActivityRecord{
		Barcode:    barcode,
		Activities: flags,
		Date:       s.now().Format("2006-01-02"),
	})
	if err != nil {
		s.logger.Warn("failed to record movement", zap.String("barcode", barcode), zap.Error(err))
	}
}

func (s *InventoryService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if raw, ok, err := s.cache.Get(ctx, statisticsKey); err != nil {
		s.logger.Warn("statistics cache read failed", zap.Error(err))
	} else if ok {
		var st domain.Statistics
		if err := json.Unmarshal(raw, &st); err == nil {
			return &st, nil
		}
	}

	st, err := s.db.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}

	if raw, err := json.Marshal(st); err == nil {
		if err := s.cache.Set(ctx, statisticsKey, raw, statisticsTTL); err != nil {
			s.logger.Warn("statistics cache write failed", zap.Error(err))
		}
	}
	return st, nil
}

func (s *InventoryService) invalidateStatistics(ctx context.Context) {
	if err := s.cache.Delete(ctx, statisticsKey); err != nil {
		s.logger.Warn("statistics cache invalidation failed", zap.Error(err))
	}
}
