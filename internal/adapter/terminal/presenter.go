// Package terminal hosts a scan station on a text terminal: it renders scan
// outcomes and feeds keyboard or serial scanner input to the interpreter.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/scan"
)

// BinOffer is an open cabinet choice for a component that is not stored.
type BinOffer struct {
	Barcode  string
	Cabinets []domain.Cabinet
}

// Presenter writes one line per scan outcome. It also reports focus: any
// outcome opens the result display until Dismiss is called.
type Presenter struct {
	mu    sync.Mutex
	out   io.Writer
	focus scan.Focus
	offer *BinOffer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Focus() scan.Focus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focus
}

func (p *Presenter) SetFocus(f scan.Focus) {
	p.mu.Lock()
	p.focus = f
	p.mu.Unlock()
}

// Offer returns the open cabinet choice, if the last outcome was NeedsBin.
func (p *Presenter) Offer() (BinOffer, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.offer == nil {
		return BinOffer{}, false
	}
	return *p.offer, true
}

// Dismiss closes the result display.
func (p *Presenter) Dismiss() {
	p.mu.Lock()
	p.focus = scan.FocusNone
	p.offer = nil
	p.mu.Unlock()
}

func (p *Presenter) show(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.focus = scan.FocusResultDialog
	p.offer = nil
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Presenter) ShowNeedsBin(c domain.Component, cabinets []domain.Cabinet) {
	p.mu.Lock()
	p.focus = scan.FocusResultDialog
	p.offer = &BinOffer{Barcode: c.Barcode, Cabinets: cabinets}
	fmt.Fprintf(p.out, "%s is not stored. Press Tab to choose a cabinet:\n", label(c))
	for i, cab := range cabinets {
		fmt.Fprintf(p.out, "  [%d] %s (%d components)\n", i+1, cab.Name, cab.ComponentCount)
	}
	p.mu.Unlock()
}

func (p *Presenter) ShowAlreadyStored(c domain.Component) {
	p.show("%s is in cabinet %s. Scan again to remove it.", label(c), c.CabinetName)
}

func (p *Presenter) ShowUnknownCode(barcode string) {
	p.show("%s is not registered.", barcode)
}

func (p *Presenter) ShowRemovalConfirmed(c domain.Component) {
	p.show("%s removed from cabinet %s.", label(c), c.CabinetName)
}

func (p *Presenter) ShowAlreadyRemoved() {
	p.show("Component was already removed.")
}

func (p *Presenter) ShowStored(c domain.Component) {
	p.show("%s stored in cabinet %s.", label(c), c.CabinetName)
}

func (p *Presenter) ShowError(message string) {
	p.show("error: %s", message)
}

func label(c domain.Component) string {
	if c.Name == "" {
		return c.Barcode
	}
	return c.Barcode + " " + c.Name
}
