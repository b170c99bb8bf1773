package scan

import (
	"time"

	"github.com/rl1809/weaselparts/internal/port"
)

// session is the character buffer of one interpreter. It is guarded by the
// interpreter's mutex.
type session struct {
	buf        []rune
	startedAt  time.Time
	lastCharAt time.Time
	automated  bool

	settle    port.Timer
	settleGen uint64
}

func (s *session) empty() bool {
	return len(s.buf) == 0
}

func (s *session) append(r rune, at time.Time) {
	if s.empty() {
		s.startedAt = at
	} else {
		s.automated = true
	}
	s.buf = append(s.buf, r)
	s.lastCharAt = at
}

// take returns the buffered text and resets the session.
func (s *session) take() string {
	text := string(s.buf)
	s.reset()
	return text
}

// reset clears the buffer and cancels the settle timer. Safe to call on an
// empty session.
func (s *session) reset() {
	s.buf = s.buf[:0]
	s.startedAt = time.Time{}
	s.lastCharAt = time.Time{}
	s.automated = false
	s.stopSettle()
}

func (s *session) stopSettle() {
	if s.settle != nil {
		s.settle.Stop()
		s.settle = nil
	}
	s.settleGen++
}
