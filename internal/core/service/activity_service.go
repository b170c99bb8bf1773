package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

func (s *InventoryService) ListActivities(ctx context.Context, barcode string) ([]domain.ActivityRecord, error) {
	if _, err := s.GetComponent(ctx, barcode); err != nil {
		return nil, err
	}
	return s.db.ListActivities(ctx, barcode)
}

func (s *InventoryService) CreateActivity(ctx context.Context, barcode string, a domain.ActivityRecord) (*domain.ActivityRecord, error) {
	if _, err := s.GetComponent(ctx, barcode); err != nil {
		return nil, err
	}
	a.Barcode = barcode
	if a.Date == "" {
		a.Date = s.now().Format("2006-01-02")
	}
	if err := validateActivity(a); err != nil {
		return nil, err
	}
	a.RoundMeasurements()

	id, err := s.db.CreateActivity(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	a.ID = id
	return &a, nil
}

func (s *InventoryService) UpdateActivity(ctx context.Context, id int64, a domain.ActivityRecord) (*domain.ActivityRecord, error) {
	a.ID = id
	if err := validateActivity(a); err != nil {
		return nil, err
	}
	a.RoundMeasurements()

	ok, err := s.db.UpdateActivity(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &a, nil
}

func (s *InventoryService) DeleteActivity(ctx context.Context, id int64) error {
	ok, err := s.db.DeleteActivity(ctx, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if !ok {
		return domain.ErrActivityNotFound
	}
	return nil
}

func validateActivity(a domain.ActivityRecord) error {
	if a.Date != "" && !datePattern.MatchString(a.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	for _, t := range []string{a.StartTime, a.EndTime} {
		if t != "" && !timePattern.MatchString(t) {
			return fmt.Errorf("%w: times must be HH:MM or HH:MM:SS", domain.ErrInvalidInput)
		}
	}
	return nil
}
