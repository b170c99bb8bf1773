package terminal

import (
	"context"
	"fmt"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// SerialSource reads a barcode scanner attached to a serial port. The
// scanner sends the code followed by CR and/or LF.
type SerialSource struct {
	portName string
	mode     *serial.Mode
	input    ScanInput
	now      func() time.Time
	logger   *zap.Logger
}

func NewSerialSource(portName string, baudRate int, input ScanInput, logger *zap.Logger) *SerialSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SerialSource{
		portName: portName,
		mode:     &serial.Mode{BaudRate: baudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit},
		input:    input,
		now:      time.Now,
		logger:   logger.With(zap.String("scanner", "serial"), zap.String("port", portName)),
	}
}

// ListPorts returns the serial ports present on this machine.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial ports: %w", err)
	}
	return ports, nil
}

// Run reads from the port until ctx is done or the port fails.
func (s *SerialSource) Run(ctx context.Context) error {
	port, err := serial.Open(s.portName, s.mode)
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", s.portName, err)
	}
	defer port.Close()

	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		return fmt.Errorf("set read timeout: %w", err)
	}
	s.logger.Info("serial scanner ready", zap.Int("baud_rate", s.mode.BaudRate))

	buf := make([]byte, 128)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := port.Read(buf)
		if err != nil {
			return fmt.Errorf("read serial port: %w", err)
		}
		s.feed(buf[:n])
	}
}

func (s *SerialSource) feed(data []byte) {
	for _, b := range data {
		switch {
		case b == '\r' || b == '\n':
			s.input.OnTerminator()
		case b >= 0x20 && b < 0x7f:
			s.input.OnCharacter(rune(b), s.now())
		default:
			s.logger.Debug("ignored control byte", zap.Uint8("byte", b))
		}
	}
}
