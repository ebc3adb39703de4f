package core

// SFX identifies a sound effect request.
type SFX uint8

const (
	SFXSwap SFX = iota
	SFXMatch
)

// String returns a human-readable name for the effect.
func (s SFX) String() string {
	switch s {
	case SFXSwap:
		return "Swap"
	case SFXMatch:
		return "Match"
	default:
		return "Unknown"
	}
}

// Speaker queues sound effect requests until the platform drains them.
type Speaker struct {
	requests []SFX
}

// NewSpeaker creates an empty request queue.
func NewSpeaker() *Speaker {
	return &Speaker{requests: make([]SFX, 0, 8)}
}

// Request enqueues a sound effect. Requests to a nil Speaker are dropped.
func (s *Speaker) Request(sfx SFX) {
	if s == nil {
		return
	}
	s.requests = append(s.requests, sfx)
}

// pending returns the number of queued requests.
func (s *Speaker) pending() int {
	return len(s.requests)
}

// Drain hands every queued request to handle in FIFO order and empties the
// queue. A nil handle just discards them.
func (s *Speaker) Drain(handle func(SFX)) {
	if handle != nil {
		for _, r := range s.requests {
			handle(r)
		}
	}
	s.requests = s.requests[:0]
}
