package engine

import (
	"errors"
	"strings"
	"unicode"

	"github.com/vhngoc/govi/internal/method"
	"github.com/vhngoc/govi/internal/vietnamese"
)

// ErrSessionClosed is returned when keystrokes arrive after Close.
var ErrSessionClosed = errors.New("session is closed")

// Session consumes a keystroke stream and exposes the text typed so
// far. Separators commit the open word; the open word itself is
// re-rendered from its raw keys on every view, so a view at any prefix
// of the stream equals a one-shot transform of that prefix.
type Session struct {
	def       method.Definition
	style     vietnamese.AccentStyle
	committed strings.Builder
	open      []rune
	closed    bool
}

// NewSession returns an empty session for the given method and style.
func NewSession(def method.Definition, style vietnamese.AccentStyle) *Session {
	return &Session{def: def, style: style}
}

// Push feeds one keystroke into the session.
func (s *Session) Push(ch rune) error {
	if s.closed {
		return ErrSessionClosed
	}
	if isWordRune(ch, s.def) {
		s.open = append(s.open, ch)
		return nil
	}
	s.commitOpen()
	s.committed.WriteRune(ch)
	return nil
}

// PushString feeds every rune of input in order.
func (s *Session) PushString(input string) error {
	for _, ch := range input {
		if err := s.Push(ch); err != nil {
			return err
		}
	}
	return nil
}

// View renders everything typed so far: committed text followed by the
// current rendering of the open word.
func (s *Session) View() string {
	if len(s.open) == 0 {
		return s.committed.String()
	}
	return s.committed.String() + renderWord(s.open, s.def, s.style)
}

// Backspace removes the last keystroke of the open word, if any, and
// reports whether something was removed. Committed text is final.
func (s *Session) Backspace() bool {
	if s.closed || len(s.open) == 0 {
		return false
	}
	s.open = s.open[:len(s.open)-1]
	return true
}

// Close commits the open word and seals the session. Closing twice is
// harmless.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.commitOpen()
	s.closed = true
}

// Closed reports whether the session has been sealed.
func (s *Session) Closed() bool {
	return s.closed
}

// Words returns the committed words so far, for history recording.
func (s *Session) Words() []string {
	return strings.FieldsFunc(s.committed.String(), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func (s *Session) commitOpen() {
	if len(s.open) == 0 {
		return
	}
	s.committed.WriteString(renderWord(s.open, s.def, s.style))
	s.open = s.open[:0]
}
