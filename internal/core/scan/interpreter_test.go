package scan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/scan/scantest"
)

var start = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type harness struct {
	t     *testing.T
	clock *scantest.ManualClock
	inv   *scantest.Inventory
	rec   *scantest.Recorder
	focus Focus
	it    *Interpreter
}

func newHarness(t *testing.T, cfg Config) *harness {
	h := &harness{
		t:     t,
		clock: scantest.NewManualClock(start),
		inv: scantest.NewInventory(
			domain.Cabinet{ID: 1, Name: "Cabinet-1"},
			domain.Cabinet{ID: 3, Name: "Cabinet-3"},
		),
		rec: &scantest.Recorder{},
	}
	h.it = NewInterpreter(cfg, h.inv, h.rec,
		WithClock(h.clock),
		WithFocus(FocusFunc(func() Focus { return h.focus })),
	)
	return h
}

// typeChars feeds code one character at a time, gap apart.
func (h *harness) typeChars(code string, gap time.Duration) {
	for i, r := range code {
		if i > 0 {
			h.clock.Advance(gap)
		}
		h.it.OnCharacter(r, h.clock.Now())
	}
}

// scan types code like a scanner and lets the settle timer fire. It returns
// the time the candidate was submitted.
func (h *harness) scan(code string) time.Time {
	h.typeChars(code, 20*time.Millisecond)
	submitted := h.clock.Now().Add(h.it.Config().ScannerEndDelay)
	h.clock.Advance(150 * time.Millisecond)
	return submitted
}

func (h *harness) expectCalls(kinds ...scantest.CallKind) []scantest.Call {
	h.t.Helper()
	calls := h.rec.Calls()
	if len(calls) != len(kinds) {
		h.t.Fatalf("expected %d presenter calls %v, got %d: %+v", len(kinds), kinds, len(calls), calls)
	}
	for i, k := range kinds {
		if calls[i].Kind != k {
			h.t.Errorf("call %d: expected %s, got %s", i, k, calls[i].Kind)
		}
	}
	return calls
}

func TestScan_SettledBufferIsClassified(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("ABC12345", "Relay", 0)

	h.typeChars("ABC12345", 20*time.Millisecond)
	h.clock.Advance(20 * time.Millisecond)

	if h.inv.Lookups != 0 {
		t.Fatalf("expected no lookup before the settle delay, got %d", h.inv.Lookups)
	}

	h.clock.Advance(150 * time.Millisecond)

	if h.inv.Lookups != 1 {
		t.Fatalf("expected 1 lookup, got %d", h.inv.Lookups)
	}
	calls := h.expectCalls(scantest.CallNeedsBin)
	if calls[0].Barcode != "ABC12345" {
		t.Errorf("expected ABC12345, got %s", calls[0].Barcode)
	}
	if len(calls[0].Cabinets) != 2 {
		t.Errorf("expected 2 cabinets, got %d", len(calls[0].Cabinets))
	}
	if st := h.it.State(); st.Buffer != "" {
		t.Errorf("expected empty buffer after dispatch, got %q", st.Buffer)
	}
}

func TestScan_ExactlyOneSubmissionForFastInput(t *testing.T) {
	codes := []string{"ABC123", "WP-0001_X", "abcdefghijklmnop", "0123456789012345678901234567890123456789"}
	gaps := []time.Duration{time.Millisecond, 20 * time.Millisecond, 50 * time.Millisecond, 99 * time.Millisecond}

	for _, code := range codes {
		for _, gap := range gaps {
			h := newHarness(t, DefaultConfig())
			h.typeChars(code, gap)
			h.clock.Advance(time.Second)

			if h.inv.Lookups != 1 {
				t.Errorf("%s at %v: expected 1 lookup, got %d", code, gap, h.inv.Lookups)
			}
			if n := len(h.rec.Calls()); n != 1 {
				t.Errorf("%s at %v: expected 1 presenter call, got %d", code, gap, n)
			}
		}
	}
}

func TestScan_AlreadyStoredArmsToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)

	submitted := h.scan("WP99999999")

	calls := h.expectCalls(scantest.CallAlreadyStored)
	if calls[0].Component.CabinetName != "Cabinet-3" {
		t.Errorf("expected Cabinet-3, got %q", calls[0].Component.CabinetName)
	}

	st := h.it.State()
	if st.PendingBarcode != "WP99999999" {
		t.Errorf("expected pending toggle for WP99999999, got %q", st.PendingBarcode)
	}
	if want := submitted.Add(5 * time.Second); !st.PendingExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, st.PendingExpiresAt)
	}
}

func TestScan_DoubleScanRemoves(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)

	h.scan("WP99999999")
	h.clock.Advance(2 * time.Second)
	h.scan("WP99999999")

	calls := h.expectCalls(scantest.CallAlreadyStored, scantest.CallRemovalConfirmed)
	if h.inv.Removals != 1 {
		t.Errorf("expected 1 removal, got %d", h.inv.Removals)
	}
	if calls[1].Component.CabinetName != "Cabinet-3" {
		t.Errorf("expected pre-removal record, got cabinet %q", calls[1].Component.CabinetName)
	}
	if st := h.it.State(); st.PendingBarcode != "" {
		t.Errorf("expected pending toggle cleared, got %q", st.PendingBarcode)
	}
	if c, _ := h.inv.Component("WP99999999"); c.Stored() {
		t.Error("expected component to be unstored")
	}
}

func TestScan_RescanAfterWindowIsFresh(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)

	h.scan("WP99999999")
	h.clock.Advance(6 * time.Second)

	if st := h.it.State(); st.PendingBarcode != "" {
		t.Fatalf("expected toggle to expire, still pending %q", st.PendingBarcode)
	}

	h.scan("WP99999999")

	h.expectCalls(scantest.CallAlreadyStored, scantest.CallAlreadyStored)
	if h.inv.Removals != 0 {
		t.Errorf("expected no removal, got %d", h.inv.Removals)
	}
	if h.inv.Lookups != 2 {
		t.Errorf("expected 2 lookups, got %d", h.inv.Lookups)
	}
}

func TestScan_ToggleLaw(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP11111111", "Valve", 1)

	h.scan("WP11111111")
	h.scan("WP11111111")
	h.clock.Advance(6 * time.Second)
	h.scan("WP11111111")

	h.expectCalls(scantest.CallAlreadyStored, scantest.CallRemovalConfirmed, scantest.CallNeedsBin)
}

func TestScan_DoubleScanOnUnstoredReportsAlreadyRemoved(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP22222222", "Sensor", 0)

	h.scan("WP22222222")
	h.scan("WP22222222")

	h.expectCalls(scantest.CallNeedsBin, scantest.CallAlreadyRemoved)
	if h.inv.Removals != 0 {
		t.Errorf("expected no removal, got %d", h.inv.Removals)
	}
}

func TestScan_DoubleScanReloadsRecord(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP33333333", "Gauge", 3)

	h.scan("WP33333333")
	// another station removes it in between
	h.inv.Put("WP33333333", "Gauge", 0)
	h.scan("WP33333333")

	h.expectCalls(scantest.CallAlreadyStored, scantest.CallAlreadyRemoved)
	if h.inv.Removals != 0 {
		t.Errorf("expected no removal, got %d", h.inv.Removals)
	}
}

func TestScan_UnknownCode(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	h.scan("UNKNOWN001")

	calls := h.expectCalls(scantest.CallUnknownCode)
	if calls[0].Barcode != "UNKNOWN001" {
		t.Errorf("expected UNKNOWN001, got %s", calls[0].Barcode)
	}
	if st := h.it.State(); st.PendingBarcode != "UNKNOWN001" {
		t.Errorf("expected pending toggle for UNKNOWN001, got %q", st.PendingBarcode)
	}
}

func TestPaste_TooShortIsIgnored(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	h.it.OnPaste("ab", h.clock.Now())
	h.clock.Advance(time.Second)

	h.expectCalls()
	if h.inv.Lookups != 0 {
		t.Errorf("expected no lookup, got %d", h.inv.Lookups)
	}
	if st := h.it.State(); st.PendingBarcode != "" {
		t.Errorf("expected no pending toggle, got %q", st.PendingBarcode)
	}
}

func TestPaste_ValidCodeIsSubmitted(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("PASTE-0001", "Cable", 1)

	h.typeChars("xy", 20*time.Millisecond)
	h.it.OnPaste("  PASTE-0001\n", h.clock.Now())

	h.expectCalls(scantest.CallAlreadyStored)
	if st := h.it.State(); st.Buffer != "" {
		t.Errorf("expected buffer cleared by paste, got %q", st.Buffer)
	}
	h.clock.Advance(time.Second)
	if h.inv.Lookups != 1 {
		t.Errorf("expected the pre-paste fragment to be dropped, got %d lookups", h.inv.Lookups)
	}
}

func TestScan_GapDiscardsEarlierFragment(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("ABC12345", "Relay", 0)

	h.typeChars("XY", 20*time.Millisecond)
	h.clock.Advance(500 * time.Millisecond)
	h.scan("ABC12345")

	calls := h.expectCalls(scantest.CallNeedsBin)
	if calls[0].Barcode != "ABC12345" {
		t.Errorf("expected ABC12345, got %s", calls[0].Barcode)
	}
}

func TestScan_GapRestartsBufferBeforeSettle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScannerEndDelay = 2 * time.Second
	h := newHarness(t, cfg)

	h.typeChars("STALE999", 20*time.Millisecond)
	h.clock.Advance(500 * time.Millisecond)
	h.it.OnCharacter('A', h.clock.Now())

	st := h.it.State()
	if st.Buffer != "A" {
		t.Errorf("expected buffer to restart with A, got %q", st.Buffer)
	}
	if st.Automated {
		t.Error("expected a single character not to count as automated input")
	}

	h.typeChars("BC12345", 20*time.Millisecond)
	if st := h.it.State(); st.Buffer != "ABC12345" || !st.Automated {
		t.Errorf("expected automated buffer ABC12345, got %q automated=%v", st.Buffer, st.Automated)
	}

	h.clock.Advance(3 * time.Second)
	calls := h.expectCalls(scantest.CallUnknownCode)
	if calls[0].Barcode != "ABC12345" {
		t.Errorf("expected ABC12345, got %s", calls[0].Barcode)
	}
}

func TestTerminator_SubmitsImmediately(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("ABC12345", "Relay", 1)

	h.typeChars("ABC12345", 5*time.Millisecond)
	h.it.OnTerminator()

	if h.inv.Lookups != 1 {
		t.Fatalf("expected immediate lookup, got %d", h.inv.Lookups)
	}
	// only the toggle expiry timer is left
	if n := h.clock.Pending(); n != 1 {
		t.Errorf("expected 1 pending timer, got %d", n)
	}

	h.clock.Advance(200 * time.Millisecond)
	h.expectCalls(scantest.CallAlreadyStored)
}

func TestTerminator_ShortBufferWaitsForSettle(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	h.typeChars("ABC", 5*time.Millisecond)
	h.it.OnTerminator()

	if st := h.it.State(); st.Buffer != "ABC" {
		t.Errorf("expected buffer untouched, got %q", st.Buffer)
	}

	h.clock.Advance(200 * time.Millisecond)
	h.expectCalls()
	if h.inv.Lookups != 0 {
		t.Errorf("expected no lookup, got %d", h.inv.Lookups)
	}
}

func TestResetBuffer_Idempotent(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	h.typeChars("ABC123", 10*time.Millisecond)
	h.it.ResetBuffer()
	once := h.it.State()
	h.it.ResetBuffer()
	twice := h.it.State()

	if once != twice {
		t.Errorf("expected identical state, got %+v and %+v", once, twice)
	}
	if twice.Buffer != "" || !twice.LastCharAt.IsZero() || !twice.BufferStartedAt.IsZero() {
		t.Errorf("expected cleared session, got %+v", twice)
	}
	if n := h.clock.Pending(); n != 0 {
		t.Errorf("expected settle timer cancelled, got %d pending", n)
	}

	h.clock.Advance(time.Second)
	h.expectCalls()
}

func TestFocus_TextEntryAndForeignDialogIgnoreInput(t *testing.T) {
	for _, f := range []Focus{FocusTextEntry, FocusForeignDialog} {
		h := newHarness(t, DefaultConfig())
		h.focus = f

		h.scan("ABC12345")
		h.it.OnPaste("ABC12345", h.clock.Now())
		h.it.OnTerminator()

		if h.inv.Lookups != 0 {
			t.Errorf("%s: expected input ignored, got %d lookups", f, h.inv.Lookups)
		}
	}
}

func TestFocus_ResultDialogStillAcceptsScans(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)

	h.scan("WP99999999")
	h.focus = FocusResultDialog
	h.scan("WP99999999")

	h.expectCalls(scantest.CallAlreadyStored, scantest.CallRemovalConfirmed)
}

func TestClose_ClearsToggleAndBuffer(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)

	h.scan("WP99999999")
	h.typeChars("WP9", 20*time.Millisecond)
	h.it.Close()

	st := h.it.State()
	if st.Buffer != "" || st.PendingBarcode != "" {
		t.Errorf("expected cleared state, got %+v", st)
	}
	if n := h.clock.Pending(); n != 0 {
		t.Errorf("expected no live timers, got %d", n)
	}

	h.scan("WP99999999")
	h.expectCalls(scantest.CallAlreadyStored, scantest.CallAlreadyStored)
	if h.inv.Removals != 0 {
		t.Errorf("expected no removal after close, got %d", h.inv.Removals)
	}
}

func TestScan_DifferentCodeReplacesToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)
	h.inv.Put("WP88888888", "Fan", 1)

	h.scan("WP99999999")
	h.scan("WP88888888")
	h.scan("WP99999999")

	h.expectCalls(scantest.CallAlreadyStored, scantest.CallAlreadyStored, scantest.CallAlreadyStored)
	if h.inv.Removals != 0 {
		t.Errorf("expected no removal, got %d", h.inv.Removals)
	}
	if n := h.clock.Pending(); n != 1 {
		t.Errorf("expected exactly one toggle timer, got %d", n)
	}
}

func TestScan_ServiceErrorCreatesNoToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)
	h.inv.Err = errors.New("connection refused")

	h.scan("WP99999999")

	calls := h.expectCalls(scantest.CallError)
	if !strings.Contains(calls[0].Message, "connection refused") {
		t.Errorf("expected error message to carry the cause, got %q", calls[0].Message)
	}
	if st := h.it.State(); st.PendingBarcode != "" {
		t.Errorf("expected no pending toggle, got %q", st.PendingBarcode)
	}

	h.inv.Err = nil
	h.scan("WP99999999")
	h.expectCalls(scantest.CallError, scantest.CallAlreadyStored)
}

func TestScan_RemovalFailureClearsToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)

	h.scan("WP99999999")
	h.inv.Err = errors.New("database is locked")
	h.scan("WP99999999")

	h.expectCalls(scantest.CallAlreadyStored, scantest.CallError)
	if st := h.it.State(); st.PendingBarcode != "" {
		t.Errorf("expected pending toggle cleared, got %q", st.PendingBarcode)
	}
}

func TestScan_InventoryTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InventoryTimeout = 20 * time.Millisecond
	h := newHarness(t, cfg)
	h.inv.Block = true

	h.scan("WP99999999")

	calls := h.expectCalls(scantest.CallError)
	if !strings.Contains(calls[0].Message, "in time") {
		t.Errorf("expected timeout message, got %q", calls[0].Message)
	}
}

func TestChooseBin_StoreClearsToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP44444444", "Motor", 0)

	h.scan("WP44444444")
	if st := h.it.State(); st.PendingBarcode != "WP44444444" {
		t.Fatalf("expected toggle armed by the first scan, got %q", st.PendingBarcode)
	}
	h.it.ChooseBin(context.Background(), "WP44444444", 3)

	calls := h.expectCalls(scantest.CallNeedsBin, scantest.CallStored)
	if calls[1].Component.CabinetName != "Cabinet-3" {
		t.Errorf("expected Cabinet-3, got %q", calls[1].Component.CabinetName)
	}
	if st := h.it.State(); st.PendingBarcode != "" {
		t.Errorf("expected no pending toggle after store, got %q", st.PendingBarcode)
	}

	h.clock.Advance(time.Second)
	h.scan("WP44444444")

	h.expectCalls(scantest.CallNeedsBin, scantest.CallStored, scantest.CallAlreadyStored)
	if h.inv.Removals != 0 {
		t.Errorf("expected the stored component to stay put, got %d removals", h.inv.Removals)
	}
	if c, _ := h.inv.Component("WP44444444"); !c.Stored() {
		t.Errorf("expected WP44444444 still stored, got %+v", c)
	}
}

func TestChooseBin_FailedStoreKeepsToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP44444444", "Motor", 0)

	h.scan("WP44444444")
	h.it.ChooseBin(context.Background(), "WP44444444", 42)

	h.expectCalls(scantest.CallNeedsBin, scantest.CallError)
	if st := h.it.State(); st.PendingBarcode != "WP44444444" {
		t.Errorf("expected toggle kept after a failed store, got %q", st.PendingBarcode)
	}
}

func TestClose_DuringLookupArmsNoToggle(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP99999999", "Pump", 3)
	h.inv.OnLookup = h.it.Close

	h.scan("WP99999999")

	h.expectCalls(scantest.CallAlreadyStored)
	if st := h.it.State(); st.PendingBarcode != "" {
		t.Errorf("expected no pending toggle after close, got %q", st.PendingBarcode)
	}
	if n := h.clock.Pending(); n != 0 {
		t.Errorf("expected no live timers, got %d", n)
	}

	h.inv.OnLookup = nil
	h.scan("WP99999999")
	h.expectCalls(scantest.CallAlreadyStored, scantest.CallAlreadyStored)
	if h.inv.Removals != 0 {
		t.Errorf("expected a fresh classification, got %d removals", h.inv.Removals)
	}
}

func TestChooseBin_UnknownCabinet(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.inv.Put("WP44444444", "Motor", 0)

	h.it.ChooseBin(context.Background(), "WP44444444", 42)

	h.expectCalls(scantest.CallError)
	if h.inv.Stores != 0 {
		t.Errorf("expected no store, got %d", h.inv.Stores)
	}
}
