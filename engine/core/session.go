package core

// Session is the process-wide game state: which level is active and which
// levels have been beaten. It lives for the process only; nothing persists
// across restarts. Passing it explicitly keeps the simulation free of
// globals.
type Session struct {
	CurrentLevel int
	Completed    []bool
}

func NewSession(levelCount int) *Session {
	return &Session{Completed: make([]bool, levelCount)}
}

// Complete marks the current level as beaten.
func (s *Session) Complete() {
	if s.CurrentLevel >= 0 && s.CurrentLevel < len(s.Completed) {
		s.Completed[s.CurrentLevel] = true
	}
}

// IsCompleted reports whether the given level has been beaten this session.
func (s *Session) IsCompleted(level int) bool {
	return level >= 0 && level < len(s.Completed) && s.Completed[level]
}

// LevelCount returns the number of tracked levels.
func (s *Session) LevelCount() int {
	return len(s.Completed)
}
