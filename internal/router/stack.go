package router

// stack is a LIFO of navigation states used for back and forward history.
type stack struct {
	entries []State
}

func (s *stack) push(state State) {
	s.entries = append(s.entries, state)
}

// pop removes and returns the top entry. ok is false on an empty stack.
func (s *stack) pop() (State, bool) {
	if len(s.entries) == 0 {
		return State{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

func (s *stack) len() int {
	return len(s.entries)
}

func (s *stack) clear() {
	s.entries = s.entries[:0]
}
