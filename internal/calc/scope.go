package calc

// Scope tracks the names declared in each enclosing block while parsing.
//
// The outermost frame holds top-level declarations.
type Scope struct {
	frames [][]string
}

// NewScope creates a Scope with a single top-level frame, optionally predeclaring names.
func NewScope(names ...string) *Scope {
	return &Scope{frames: [][]string{append([]string(nil), names...)}}
}

// Depth returns the number of open frames.
func (s *Scope) Depth() int { return len(s.frames) }

// Push opens a new frame.
func (s *Scope) Push() { s.frames = append(s.frames, nil) }

// Pop closes the innermost frame.
func (s *Scope) Pop() { s.frames = s.frames[:len(s.frames)-1] }

// Declare adds name to the innermost frame.
func (s *Scope) Declare(name string) {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], name)
}

// Declared returns true if name is visible from the innermost frame.
func (s *Scope) Declared(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		for _, declared := range s.frames[i] {
			if declared == name {
				return true
			}
		}
	}
	return false
}

// Checkpoint records how many frames are open and how many names each holds, so a failed parse
// attempt can be undone by truncation.
//
// An attempt must not close frames that were open when it started.
func (s *Scope) Checkpoint() func() {
	lengths := make([]int, len(s.frames))
	for i, frame := range s.frames {
		lengths[i] = len(frame)
	}
	return func() {
		s.frames = s.frames[:len(lengths)]
		for i, n := range lengths {
			s.frames[i] = s.frames[i][:n]
		}
	}
}
