package valueobjects

import "fmt"

// Priority ranks tickets 0-5 where 0 is the most urgent.
type Priority int

const (
	PriorityHighest Priority = 0
	PriorityDefault Priority = 3
	PriorityLowest  Priority = 5
)

func NewPriority(v int) (Priority, error) {
	p := Priority(v)
	if !p.IsValid() {
		return 0, fmt.Errorf("priority must be between 0 and 5, got %d", v)
	}
	return p, nil
}

func (p Priority) IsValid() bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

func (p Priority) Int() int {
	return int(p)
}

func (p Priority) String() string {
	return fmt.Sprintf("%d", int(p))
}
