package scan

import (
	"time"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

const (
	DefaultScannerMaxGap    = 400 * time.Millisecond
	DefaultScannerEndDelay  = 100 * time.Millisecond
	DefaultToggleWindow     = 5 * time.Second
	DefaultInventoryTimeout = 10 * time.Second
)

// Config holds the timing and identifier policy of an Interpreter.
// Zero fields fall back to the defaults.
type Config struct {
	// ScannerMaxGap is the longest pause between two characters of one scan.
	// A longer pause starts a new buffer.
	ScannerMaxGap time.Duration

	// ScannerEndDelay is how long the buffer must stay quiet before it is
	// submitted as a candidate.
	ScannerEndDelay time.Duration

	MinIdentifierLen int
	MaxIdentifierLen int

	// ToggleWindow is how long a second scan of the same code counts as a
	// double-scan.
	ToggleWindow time.Duration

	// InventoryTimeout bounds every inventory call.
	InventoryTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ScannerMaxGap:    DefaultScannerMaxGap,
		ScannerEndDelay:  DefaultScannerEndDelay,
		MinIdentifierLen: domain.DefaultMinBarcodeLen,
		MaxIdentifierLen: domain.DefaultMaxBarcodeLen,
		ToggleWindow:     DefaultToggleWindow,
		InventoryTimeout: DefaultInventoryTimeout,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ScannerMaxGap <= 0 {
		c.ScannerMaxGap = d.ScannerMaxGap
	}
	if c.ScannerEndDelay <= 0 {
		c.ScannerEndDelay = d.ScannerEndDelay
	}
	if c.MinIdentifierLen <= 0 {
		c.MinIdentifierLen = d.MinIdentifierLen
	}
	if c.MaxIdentifierLen <= 0 {
		c.MaxIdentifierLen = d.MaxIdentifierLen
	}
	if c.MaxIdentifierLen < c.MinIdentifierLen {
		c.MaxIdentifierLen = c.MinIdentifierLen
	}
	if c.ToggleWindow <= 0 {
		c.ToggleWindow = d.ToggleWindow
	}
	if c.InventoryTimeout <= 0 {
		c.InventoryTimeout = d.InventoryTimeout
	}
	return c
}

// ValidIdentifier applies the configured identifier policy to s.
func (c Config) ValidIdentifier(s string) bool {
	c = c.withDefaults()
	return domain.ValidBarcode(s, c.MinIdentifierLen, c.MaxIdentifierLen)
}
