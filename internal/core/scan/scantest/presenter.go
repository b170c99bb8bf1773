package scantest

import (
	"sync"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

type CallKind string

const (
	CallNeedsBin         CallKind = "needs-bin"
	CallAlreadyStored    CallKind = "already-stored"
	CallUnknownCode      CallKind = "unknown-code"
	CallRemovalConfirmed CallKind = "removal-confirmed"
	CallAlreadyRemoved   CallKind = "already-removed"
	CallStored           CallKind = "stored"
	CallError            CallKind = "error"
)

type Call struct {
	Kind      CallKind
	Component domain.Component
	Cabinets  []domain.Cabinet
	Barcode   string
	Message   string
}

// Recorder is a presenter that keeps every call.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *Recorder) ShowNeedsBin(c domain.Component, cabinets []domain.Cabinet) {
	r.record(Call{Kind: CallNeedsBin, Component: c, Cabinets: cabinets, Barcode: c.Barcode})
}

func (r *Recorder) ShowAlreadyStored(c domain.Component) {
	r.record(Call{Kind: CallAlreadyStored, Component: c, Barcode: c.Barcode})
}

func (r *Recorder) ShowUnknownCode(barcode string) {
	r.record(Call{Kind: CallUnknownCode, Barcode: barcode})
}

func (r *Recorder) ShowRemovalConfirmed(c domain.Component) {
	r.record(Call{Kind: CallRemovalConfirmed, Component: c, Barcode: c.Barcode})
}

func (r *Recorder) ShowAlreadyRemoved() {
	r.record(Call{Kind: CallAlreadyRemoved})
}

func (r *Recorder) ShowStored(c domain.Component) {
	r.record(Call{Kind: CallStored, Component: c, Barcode: c.Barcode})
}

func (r *Recorder) ShowError(message string) {
	r.record(Call{Kind: CallError, Message: message})
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent call, ok false if there was none.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

func (r *Recorder) Count(kind CallKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
