package navigation

import (
	"errors"
	"sync"
)

// ErrNilScreen is returned when a nil screen is pushed or set as root.
var ErrNilScreen = errors.New("navigation: nil screen")

// Stack is the navigation history. It always holds at least one entry and the
// displayed screen is the last one. A zero Stack behaves as one rooted at Splash.
type Stack struct {
	mu      sync.RWMutex
	entries []Screen
}

// NewStack starts a history at root. A nil root starts at Splash.
func NewStack(root Screen) *Stack {
	if root == nil {
		root = Splash{}
	}
	return &Stack{entries: []Screen{root}}
}

// Push makes s the current screen.
func (st *Stack) Push(s Screen) error {
	if s == nil {
		return ErrNilScreen
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.rootLocked()
	st.entries = append(st.entries, s)
	return nil
}

// ReplaceRoot drops the whole history and starts again at s.
func (st *Stack) ReplaceRoot(s Screen) error {
	if s == nil {
		return ErrNilScreen
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.entries = []Screen{s}
	return nil
}

// ReplaceTop swaps the current screen for s, keeping the history below it.
func (st *Stack) ReplaceTop(s Screen) error {
	if s == nil {
		return ErrNilScreen
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.rootLocked()
	st.entries[len(st.entries)-1] = s
	return nil
}

// Pop removes the current screen unless it is the root. It reports whether
// anything was removed.
func (st *Stack) Pop() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.entries) <= 1 {
		return false
	}
	st.entries[len(st.entries)-1] = nil
	st.entries = st.entries[:len(st.entries)-1]
	return true
}

// Current returns the top screen. A zero Stack reports Splash.
func (st *Stack) Current() Screen {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if len(st.entries) == 0 {
		return Splash{}
	}
	return st.entries[len(st.entries)-1]
}

// CanGoBack drives the back control.
func (st *Stack) CanGoBack() bool {
	return st.Len() > 1
}

func (st *Stack) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return max(len(st.entries), 1)
}

// Entries returns a copy of the history, root first.
func (st *Stack) Entries() []Screen {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if len(st.entries) == 0 {
		return []Screen{Splash{}}
	}
	return append([]Screen(nil), st.entries...)
}

func (st *Stack) rootLocked() {
	if len(st.entries) == 0 {
		st.entries = []Screen{Splash{}}
	}
}
