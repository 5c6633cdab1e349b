package lightray

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/sancharinfotech/bending-light/pkg/core"
)

// Frame is one complete set of segments from a single solver run, paired with
// the simulation time at which all of them are evaluated
type Frame struct {
	sequence uint64
	time     float64
	rays     []*LightRay
}

// Sequence increases by one for every frame a Store publishes or advances
func (f *Frame) Sequence() uint64 {
	return f.sequence
}

// Time returns the simulation time in seconds shared by every segment
func (f *Frame) Time() float64 {
	return f.time
}

// Len returns the number of segments
func (f *Frame) Len() int {
	return len(f.rays)
}

// Ray returns segment i
func (f *Frame) Ray(i int) *LightRay {
	return f.rays[i]
}

// Rays returns a copy of the segment list
func (f *Frame) Rays() []*LightRay {
	out := make([]*LightRay, len(f.rays))
	copy(out, f.rays)
	return out
}

// PhaseArgument evaluates segment i at the frame's time
func (f *Frame) PhaseArgument(i int, distanceAlongRay float64) float64 {
	return f.rays[i].PhaseArgument(distanceAlongRay, f.time)
}

// TotalPower sums the power fractions of all segments
func (f *Frame) TotalPower() float64 {
	powers := make([]float64, len(f.rays))
	for i, r := range f.rays {
		powers[i] = r.powerFraction
	}
	return floats.Sum(powers)
}

// Store holds the current Frame. Readers always see a complete frame: a new
// solver output replaces the previous one in a single atomic swap.
type Store struct {
	current atomic.Pointer[Frame]

	mu          sync.Mutex // Serializes writers and guards subscribers
	subscribers map[int]chan *Frame
	nextID      int

	logger core.Logger
}

// NewStore creates a store holding an empty frame at time zero
func NewStore(logger core.Logger) *Store {
	if logger == nil {
		logger = core.NopLogger{}
	}

	s := &Store{
		subscribers: make(map[int]chan *Frame),
		logger:      logger,
	}
	s.current.Store(&Frame{})
	return s
}

// Current returns the latest frame
func (s *Store) Current() *Frame {
	return s.current.Load()
}

// Publish replaces the whole segment set, keeping the current time
func (s *Store) Publish(rays []*LightRay) (*Frame, error) {
	for i, r := range rays {
		if r == nil {
			return nil, fmt.Errorf("ray %d is nil", i)
		}
	}

	snapshot := make([]*LightRay, len(rays))
	copy(snapshot, rays)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	frame := &Frame{
		sequence: prev.sequence + 1,
		time:     prev.time,
		rays:     snapshot,
	}
	s.current.Store(frame)

	s.logger.Printf("Published frame %d with %d rays (replaced %d)\n", frame.sequence, len(snapshot), len(prev.rays))
	s.notify(frame)
	return frame, nil
}

// Advance moves the simulation clock forward by dt seconds
func (s *Store) Advance(dt float64) (*Frame, error) {
	if !(dt >= 0) || math.IsInf(dt, 0) {
		s.logger.Printf("Rejected clock step %v\n", dt)
		return nil, fmt.Errorf("time step must be finite and non-negative, got: %v", dt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	frame := &Frame{
		sequence: prev.sequence + 1,
		time:     prev.time + dt,
		rays:     prev.rays, // Immutable, safe to share
	}
	s.current.Store(frame)

	s.notify(frame)
	return frame, nil
}

// Subscribe returns a channel that receives every new frame, and a function
// that unsubscribes and closes the channel. Frames are dropped rather than
// blocking the publisher when the buffer is full.
func (s *Store) Subscribe(buffer int) (<-chan *Frame, func()) {
	if buffer < 1 {
		buffer = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *Frame, buffer)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
	return ch, cancel
}

// notify must be called with s.mu held
func (s *Store) notify(frame *Frame) {
	for id, ch := range s.subscribers {
		select {
		case ch <- frame:
		default:
			s.logger.Printf("Subscriber %d is behind, dropped frame %d\n", id, frame.sequence)
		}
	}
}
