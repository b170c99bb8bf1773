package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/port"
)

// Interpreter turns raw keystrokes and pastes into scan outcomes.
//
// State changes happen under mu; inventory calls and presenter callbacks run
// after mu is released, so input keeps buffering while a lookup is in flight.
type Interpreter struct {
	id        string
	cfg       Config
	inventory port.Inventory
	presenter port.Presenter
	clock     port.Clock
	focus     FocusReporter
	ctx       context.Context
	logger    *zap.Logger

	mu         sync.Mutex
	session    session
	pending    *pendingToggle
	pendingGen uint64
	closeGen   uint64
}

// pendingToggle remembers the last classified code so that a second scan
// within the toggle window removes it instead of showing it again.
type pendingToggle struct {
	barcode   string
	expiresAt time.Time
	timer     port.Timer
}

type Option func(*Interpreter)

func WithClock(c port.Clock) Option {
	return func(it *Interpreter) { it.clock = c }
}

func WithFocus(f FocusReporter) Option {
	return func(it *Interpreter) { it.focus = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(it *Interpreter) { it.logger = l }
}

// WithContext sets the parent context of inventory calls.
func WithContext(ctx context.Context) Option {
	return func(it *Interpreter) { it.ctx = ctx }
}

func NewInterpreter(cfg Config, inventory port.Inventory, presenter port.Presenter, opts ...Option) *Interpreter {
	it := &Interpreter{
		id:        uuid.New().String(),
		cfg:       cfg.withDefaults(),
		inventory: inventory,
		presenter: presenter,
		clock:     SystemClock{},
		focus:     FocusFunc(func() Focus { return FocusNone }),
		ctx:       context.Background(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(it)
	}
	it.logger = it.logger.With(zap.String("component", "scanner"), zap.String("session", it.id))
	return it
}

func (it *Interpreter) ID() string { return it.id }

func (it *Interpreter) Config() Config { return it.cfg }

// ValidIdentifier reports whether s passes the identifier policy.
func (it *Interpreter) ValidIdentifier(s string) bool {
	return it.cfg.ValidIdentifier(s)
}

// State is a snapshot of the interpreter for diagnostics.
type State struct {
	Buffer           string
	BufferStartedAt  time.Time
	LastCharAt       time.Time
	Automated        bool
	PendingBarcode   string
	PendingExpiresAt time.Time
}

func (it *Interpreter) State() State {
	it.mu.Lock()
	defer it.mu.Unlock()

	st := State{
		Buffer:          string(it.session.buf),
		BufferStartedAt: it.session.startedAt,
		LastCharAt:      it.session.lastCharAt,
		Automated:       it.session.automated,
	}
	if it.pending != nil {
		st.PendingBarcode = it.pending.barcode
		st.PendingExpiresAt = it.pending.expiresAt
	}
	return st
}

// OnCharacter appends one character received at the given time. A pause
// longer than ScannerMaxGap discards what was buffered before it.
func (it *Interpreter) OnCharacter(r rune, at time.Time) {
	if !it.accepting() {
		return
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	s := &it.session
	if !s.empty() && at.Sub(s.lastCharAt) > it.cfg.ScannerMaxGap {
		it.logger.Debug("buffer reset after gap",
			zap.String("discarded", string(s.buf)),
			zap.Duration("gap", at.Sub(s.lastCharAt)))
		s.reset()
	}
	s.append(r, at)
	it.scheduleSettleLocked()
}

// OnTerminator submits the buffer at once if it is long enough, skipping the
// settle delay.
func (it *Interpreter) OnTerminator() {
	if !it.accepting() {
		return
	}

	it.mu.Lock()
	if len(it.session.buf) < it.cfg.MinIdentifierLen {
		it.mu.Unlock()
		return
	}
	candidate := it.session.take()
	it.mu.Unlock()

	it.submit(candidate)
}

// OnPaste submits pasted text as a complete candidate. Text that fails
// validation is ignored and the buffer is left alone.
func (it *Interpreter) OnPaste(text string, at time.Time) {
	if !it.accepting() {
		return
	}
	code := strings.TrimSpace(text)
	if !it.ValidIdentifier(code) {
		it.logger.Debug("paste rejected", zap.String("text", code))
		return
	}

	it.mu.Lock()
	it.session.reset()
	it.mu.Unlock()

	it.logger.Debug("paste accepted", zap.String("barcode", code), zap.Time("at", at))
	it.submit(code)
}

// ResetBuffer clears buffered input and cancels the settle timer.
func (it *Interpreter) ResetBuffer() {
	it.mu.Lock()
	it.session.reset()
	it.mu.Unlock()
}

// Close is called when the result display is dismissed. It clears the
// buffer and any pending toggle.
func (it *Interpreter) Close() {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.session.reset()
	it.clearPendingLocked()
	it.closeGen++
	it.logger.Debug("session closed")
}

// ChooseBin stores barcode in cabinetID after the operator picked a cabinet
// for a NeedsBin outcome. A successful store ends the toggle window, so the
// next scan of the same code is a fresh classification.
func (it *Interpreter) ChooseBin(ctx context.Context, barcode string, cabinetID int64) {
	callCtx, cancel := context.WithTimeout(ctx, it.cfg.InventoryTimeout)
	defer cancel()

	if _, err := it.inventory.StoreComponent(callCtx, barcode, cabinetID); err != nil {
		it.fail("store", barcode, err)
		return
	}

	it.mu.Lock()
	it.clearPendingLocked()
	it.mu.Unlock()

	c, err := it.inventory.GetComponent(callCtx, barcode)
	if err != nil {
		it.fail("reload", barcode, err)
		return
	}

	it.logger.Info("component stored", zap.String("barcode", barcode), zap.Int64("cabinet_id", cabinetID))
	it.presenter.ShowStored(*c)
}

func (it *Interpreter) accepting() bool {
	f := it.focus.Focus()
	if !f.acceptsScans() {
		it.logger.Debug("input ignored", zap.Stringer("focus", f))
		return false
	}
	return true
}

func (it *Interpreter) scheduleSettleLocked() {
	s := &it.session
	s.stopSettle()
	gen := s.settleGen
	s.settle = it.clock.AfterFunc(it.cfg.ScannerEndDelay, func() {
		it.settled(gen)
	})
}

func (it *Interpreter) settled(gen uint64) {
	it.mu.Lock()
	if gen != it.session.settleGen || it.session.empty() {
		it.mu.Unlock()
		return
	}
	it.session.settle = nil
	candidate := it.session.take()
	it.mu.Unlock()

	it.submit(candidate)
}

// submit runs a candidate through validation, then either the double-scan
// path or a first-scan classification. The buffer is already reset.
func (it *Interpreter) submit(candidate string) {
	code := strings.TrimSpace(candidate)
	if !it.ValidIdentifier(code) {
		it.logger.Debug("candidate rejected", zap.String("candidate", candidate))
		return
	}

	it.mu.Lock()
	closeGen := it.closeGen
	toggle := it.pending != nil &&
		it.pending.barcode == code &&
		it.clock.Now().Before(it.pending.expiresAt)
	if toggle {
		it.clearPendingLocked()
	}
	it.mu.Unlock()

	if toggle {
		it.logger.Info("double scan", zap.String("barcode", code))
		it.handleDoubleScan(code)
		return
	}
	it.logger.Info("scan", zap.String("barcode", code))
	it.handleFirstScan(code, closeGen)
}

// handleFirstScan classifies code. closeGen is the close generation seen at
// submission; a Close during the lookup keeps the result from arming a toggle.
func (it *Interpreter) handleFirstScan(code string, closeGen uint64) {
	ctx, cancel := context.WithTimeout(it.ctx, it.cfg.InventoryTimeout)
	defer cancel()

	c, err := it.inventory.GetComponent(ctx, code)
	switch {
	case errors.Is(err, domain.ErrComponentNotFound):
		it.armToggle(code, closeGen)
		it.presenter.ShowUnknownCode(code)
	case err != nil:
		it.fail("lookup", code, err)
	case c.Stored():
		it.armToggle(code, closeGen)
		it.presenter.ShowAlreadyStored(*c)
	default:
		cabinets, err := it.inventory.ListCabinets(ctx)
		if err != nil {
			it.fail("list cabinets", code, err)
			return
		}
		it.armToggle(code, closeGen)
		it.presenter.ShowNeedsBin(*c, cabinets)
	}
}

// handleDoubleScan reloads the component rather than trusting the first
// scan, since another station may have moved it in between.
func (it *Interpreter) handleDoubleScan(code string) {
	ctx, cancel := context.WithTimeout(it.ctx, it.cfg.InventoryTimeout)
	defer cancel()

	c, err := it.inventory.GetComponent(ctx, code)
	if err != nil {
		it.fail("remove", code, err)
		return
	}
	if !c.Stored() {
		it.logger.Info("component already removed", zap.String("barcode", code))
		it.presenter.ShowAlreadyRemoved()
		return
	}

	if _, err := it.inventory.RemoveComponent(ctx, code); err != nil {
		it.fail("remove", code, err)
		return
	}
	it.logger.Info("component removed",
		zap.String("barcode", code),
		zap.String("cabinet", c.CabinetName))
	it.presenter.ShowRemovalConfirmed(*c)
}

func (it *Interpreter) armToggle(code string, closeGen uint64) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if closeGen != it.closeGen {
		it.logger.Debug("toggle not armed after close", zap.String("barcode", code))
		return
	}
	it.clearPendingLocked()
	gen := it.pendingGen
	it.pending = &pendingToggle{
		barcode:   code,
		expiresAt: it.clock.Now().Add(it.cfg.ToggleWindow),
		timer: it.clock.AfterFunc(it.cfg.ToggleWindow, func() {
			it.expireToggle(gen)
		}),
	}
}

func (it *Interpreter) expireToggle(gen uint64) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.pending == nil || gen != it.pendingGen {
		return
	}
	it.logger.Debug("toggle window expired", zap.String("barcode", it.pending.barcode))
	it.pending = nil
}

func (it *Interpreter) clearPendingLocked() {
	if it.pending != nil {
		it.pending.timer.Stop()
		it.pending = nil
	}
	it.pendingGen++
}

func (it *Interpreter) fail(op, code string, err error) {
	msg := err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "inventory service did not respond in time"
	}
	it.logger.Warn("scan failed", zap.String("op", op), zap.String("barcode", code), zap.Error(err))
	it.presenter.ShowError(fmt.Sprintf("%s %s: %s", op, code, msg))
}
