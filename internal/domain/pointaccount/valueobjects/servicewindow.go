package valueobjects

import (
	"fmt"
	"time"
)

// ServiceWindow is the approved service period granted when billing settles.
type ServiceWindow struct {
	start time.Time
	end   time.Time
}

func NewServiceWindow(start, end time.Time) (ServiceWindow, error) {
	if start.IsZero() || end.IsZero() {
		return ServiceWindow{}, fmt.Errorf("service window requires start and end")
	}
	if !end.After(start) {
		return ServiceWindow{}, fmt.Errorf("service window end must be after start")
	}
	return ServiceWindow{start: start.UTC(), end: end.UTC()}, nil
}

func (w ServiceWindow) Start() time.Time { return w.start }
func (w ServiceWindow) End() time.Time   { return w.end }

func (w ServiceWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

func (w ServiceWindow) Equals(other ServiceWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// ReconstructServiceWindow rebuilds the window from persistence; nil bounds
// yield a zero window.
func ReconstructServiceWindow(start, end *time.Time) ServiceWindow {
	var w ServiceWindow
	if start != nil {
		w.start = start.UTC()
	}
	if end != nil {
		w.end = end.UTC()
	}
	return w
}
