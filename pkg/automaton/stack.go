package automaton

import (
	"strings"

	"github.com/aretw0/dpda/pkg/domain"
)

// Stack is the automaton's LIFO store. Its bottom element is always the
// bottom marker.
type Stack struct {
	items []rune // bottom at index 0
}

// NewStack returns a stack holding only the bottom marker.
func NewStack() *Stack {
	return &Stack{items: []rune{domain.BottomMarker}}
}

// Peek returns the top symbol.
func (s *Stack) Peek() rune {
	return s.items[len(s.items)-1]
}

// Len returns the number of symbols on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Replace pops the top symbol when pop is set and then pushes push so that
// its first character ends on top. Popping the bottom marker puts it back
// underneath whatever is pushed, so index 0 always holds it.
func (s *Stack) Replace(pop bool, push string) {
	var popped rune
	if pop {
		popped = s.items[len(s.items)-1]
		s.items = s.items[:len(s.items)-1]
	}
	if !domain.IsEpsilonPush(push) {
		runes := []rune(push)
		for i := len(runes) - 1; i >= 0; i-- {
			s.items = append(s.items, runes[i])
		}
	}
	if popped == domain.BottomMarker && (len(s.items) == 0 || s.items[0] != domain.BottomMarker) {
		s.items = append([]rune{domain.BottomMarker}, s.items...)
	}
}

// Reset clears the stack down to the bottom marker.
func (s *Stack) Reset() {
	s.items = append(s.items[:0], domain.BottomMarker)
}

// Clone returns an independent copy.
func (s *Stack) Clone() *Stack {
	items := make([]rune, len(s.items))
	copy(items, s.items)
	return &Stack{items: items}
}

// String returns the contents from top to bottom.
func (s *Stack) String() string {
	var sb strings.Builder
	for i := len(s.items) - 1; i >= 0; i-- {
		sb.WriteRune(s.items[i])
	}
	return sb.String()
}

// stackFromString rebuilds a stack from its top-to-bottom rendering.
func stackFromString(topToBottom string) *Stack {
	runes := []rune(topToBottom)
	items := make([]rune, 0, len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		items = append(items, runes[i])
	}
	if len(items) == 0 {
		items = append(items, domain.BottomMarker)
	}
	return &Stack{items: items}
}
