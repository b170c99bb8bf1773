package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rl1809/weaselparts/internal/core/scan"
)

const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyTab       = '\t'
	keyEnter     = '\r'
	keyNewline   = '\n'
	keyEscape    = 0x1b
	keyBackspace = 0x7f
)

// KeyboardSource reads a keyboard wedge scanner (or a person typing) from a
// raw terminal. Enter submits, Esc dismisses the result, Tab opens the
// cabinet choice after a NeedsBin outcome, Ctrl-C ends the session.
type KeyboardSource struct {
	input     ScanInput
	presenter *Presenter
	out       io.Writer
	now       func() time.Time
	logger    *zap.Logger

	choosing bool
	choice   []rune
}

func NewKeyboardSource(input ScanInput, presenter *Presenter, out io.Writer, logger *zap.Logger) *KeyboardSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeyboardSource{
		input:     input,
		presenter: presenter,
		out:       out,
		now:       time.Now,
		logger:    logger.With(zap.String("component", "keyboard")),
	}
}

// Run puts in into raw mode when it is a terminal and feeds keys until
// Ctrl-C, end of input or ctx is done.
func (k *KeyboardSource) Run(ctx context.Context, in *os.File) error {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(fd, state)
	}

	keys := make(chan rune)
	errs := make(chan error, 1)
	go func() {
		r := bufio.NewReader(in)
		for {
			key, _, err := r.ReadRune()
			if err != nil {
				errs <- err
				return
			}
			select {
			case keys <- key:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read keyboard: %w", err)
		case key := <-keys:
			if !k.Feed(ctx, key) {
				return nil
			}
		}
	}
}

// Feed handles one key. It returns false when the session should end.
func (k *KeyboardSource) Feed(ctx context.Context, key rune) bool {
	switch key {
	case keyCtrlC, keyCtrlD:
		return false
	case keyEscape:
		if k.choosing {
			k.endChoice()
			return true
		}
		k.presenter.Dismiss()
		k.input.Close()
	case keyEnter, keyNewline:
		if k.choosing {
			k.finishChoice(ctx)
			return true
		}
		k.input.OnTerminator()
	case keyTab:
		if _, ok := k.presenter.Offer(); ok && !k.choosing {
			k.choosing = true
			k.presenter.SetFocus(scan.FocusTextEntry)
			fmt.Fprint(k.out, "cabinet number: ")
		}
	case keyBackspace:
		if k.choosing && len(k.choice) > 0 {
			k.choice = k.choice[:len(k.choice)-1]
			fmt.Fprint(k.out, "\b \b")
		}
	default:
		if k.choosing {
			if key >= '0' && key <= '9' {
				k.choice = append(k.choice, key)
				fmt.Fprint(k.out, string(key))
			}
			return true
		}
		k.input.OnCharacter(key, k.now())
	}
	return true
}

func (k *KeyboardSource) endChoice() {
	k.choosing = false
	k.choice = k.choice[:0]
	k.presenter.SetFocus(scan.FocusResultDialog)
	fmt.Fprintln(k.out)
}

func (k *KeyboardSource) finishChoice(ctx context.Context) {
	n, _ := strconv.Atoi(string(k.choice))
	offer, ok := k.presenter.Offer()
	k.endChoice()
	if !ok {
		return
	}
	if n < 1 || n > len(offer.Cabinets) {
		fmt.Fprintf(k.out, "no cabinet %d, press Tab to try again\n", n)
		return
	}

	cabinet := offer.Cabinets[n-1]
	k.logger.Debug("cabinet chosen", zap.String("barcode", offer.Barcode), zap.Int64("cabinet_id", cabinet.ID))
	k.presenter.Dismiss()
	k.input.ChooseBin(ctx, offer.Barcode, cabinet.ID)
}

// RawWriter turns "\n" into "\r\n" for output to a terminal in raw mode.
type RawWriter struct {
	W io.Writer
}

func (w RawWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(w.W, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
