package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

func (s *InventoryService) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	return s.db.ListCabinets(ctx)
}

func (s *InventoryService) getCabinet(ctx context.Context, id int64) (*domain.Cabinet, error) {
	c, err := s.db.GetCabinet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cabinet: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCabinetNotFound
	}
	return c, nil
}

func (s *InventoryService) CreateCabinet(ctx context.Context, c domain.Cabinet) (*domain.Cabinet, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: cabinet name is required", domain.ErrInvalidInput)
	}
	if err := s.checkCabinetName(ctx, c.Name, 0); err != nil {
		return nil, err
	}

	id, err := s.db.CreateCabinet(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create cabinet: %w", err)
	}
	s.invalidateStatistics(ctx)
	s.logger.Info("cabinet created", zap.Int64("cabinet_id", id), zap.String("name", c.Name))
	return s.getCabinet(ctx, id)
}

func (s *InventoryService) UpdateCabinet(ctx context.Context, id int64, c domain.Cabinet) (*domain.Cabinet, error) {
	c.ID = id
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: cabinet name is required", domain.ErrInvalidInput)
	}
	if err := s.checkCabinetName(ctx, c.Name, id); err != nil {
		return nil, err
	}

	ok, err := s.db.UpdateCabinet(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update cabinet: %w", err)
	}
	if !ok {
		return nil, domain.ErrCabinetNotFound
	}
	s.invalidateStatistics(ctx)
	return s.getCabinet(ctx, id)
}

// DeleteCabinet removes a cabinet. Its components stay registered but are no
// longer stored anywhere.
func (s *InventoryService) DeleteCabinet(ctx context.Context, id int64) error {
	ok, err := s.db.DeleteCabinet(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cabinet: %w", err)
	}
	if !ok {
		return domain.ErrCabinetNotFound
	}
	s.invalidateStatistics(ctx)
	s.logger.Info("cabinet deleted", zap.Int64("cabinet_id", id))
	return nil
}

func (s *InventoryService) CabinetContents(ctx context.Context, id int64) ([]domain.Component, error) {
	if _, err := s.getCabinet(ctx, id); err != nil {
		return nil, err
	}
	return s.db.CabinetContents(ctx, id)
}

func (s *InventoryService) checkCabinetName(ctx context.Context, name string, self int64) error {
	cabinets, err := s.db.ListCabinets(ctx)
	if err != nil {
		return fmt.Errorf("list cabinets: %w", err)
	}
	for _, c := range cabinets {
		if c.ID != self && strings.EqualFold(c.Name, name) {
			return domain.ErrDuplicateCabinet
		}
	}
	return nil
}
