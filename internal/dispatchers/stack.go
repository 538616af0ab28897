package dispatchers

// Stack is the chain of entered menus. The root sits at index 0 and is never
// removed, so Len is always at least 1.
type Stack struct {
	items []Command
}

func NewStack(root Command) *Stack {
	return &Stack{items: []Command{root}}
}

// Push enters cmd.
func (s *Stack) Push(cmd Command) {
	s.items = append(s.items, cmd)
}

// Pop leaves the top menu. It refuses to remove the root.
func (s *Stack) Pop() (Command, bool) {
	if len(s.items) <= 1 {
		return nil, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Top returns the active menu.
func (s *Stack) Top() Command {
	return s.items[len(s.items)-1]
}

func (s *Stack) Root() Command {
	return s.items[0]
}

func (s *Stack) Len() int {
	return len(s.items)
}

// Depth is the number of entered menus below the root.
func (s *Stack) Depth() int {
	return len(s.items) - 1
}

// Names returns the names of the entered menus, root excluded.
func (s *Stack) Names() []string {
	names := make([]string, 0, len(s.items)-1)
	for _, cmd := range s.items[1:] {
		names = append(names, cmd.Name())
	}
	return names
}

// Reset drops everything above the root.
func (s *Stack) Reset() {
	s.items = s.items[:1]
}
