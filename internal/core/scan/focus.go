package scan

// Focus describes what currently holds the operator's input on the host.
type Focus int

const (
	FocusNone Focus = iota
	// FocusTextEntry means a text field is being edited; keystrokes are not scans.
	FocusTextEntry
	// FocusForeignDialog means a dialog unrelated to scanning is open.
	FocusForeignDialog
	// FocusResultDialog means the scan result is on screen. Scans are still
	// accepted so the operator can rescan to toggle.
	FocusResultDialog
)

func (f Focus) String() string {
	switch f {
	case FocusNone:
		return "none"
	case FocusTextEntry:
		return "text-entry"
	case FocusForeignDialog:
		return "foreign-dialog"
	case FocusResultDialog:
		return "result-dialog"
	default:
		return "unknown"
	}
}

func (f Focus) acceptsScans() bool {
	return f == FocusNone || f == FocusResultDialog
}

type FocusReporter interface {
	Focus() Focus
}

// FocusFunc adapts a function to FocusReporter.
type FocusFunc func() Focus

func (f FocusFunc) Focus() Focus { return f() }
