package domain

import "errors"

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrCabinetNotFound   = errors.New("cabinet not found")
	ErrActivityNotFound  = errors.New("activity record not found")
	ErrInvalidBarcode    = errors.New("invalid barcode")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateBarcode  = errors.New("barcode already registered")
	ErrDuplicateCabinet  = errors.New("cabinet name already in use")
)
