package network

import (
	"errors"
	"fmt"
)

// ErrSchedule reports a layer-size schedule that cannot describe a
// network: fewer than two layers, or a layer without neurons.
var ErrSchedule = errors.New("invalid layer schedule")

// ShapeError reports a width that disagrees with the network's layer
// schedule.
type ShapeError struct {
	Op   string // Operation that rejected the argument.
	Want int    // Width required by the schedule.
	Got  int    // Width actually supplied.
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: want width %d, got %d", e.Op, e.Want, e.Got)
}
