package terminal

import (
	"context"
	"time"
)

// ScanInput is the part of scan.Interpreter the input sources drive.
type ScanInput interface {
	OnCharacter(r rune, at time.Time)
	OnTerminator()
	Close()
	ChooseBin(ctx context.Context, barcode string, cabinetID int64)
}
