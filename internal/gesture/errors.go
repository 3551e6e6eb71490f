package gesture

import "github.com/ayoisaiah/avail/internal/apperr"

// ErrGestureActive is returned by Begin while another gesture is active.
var ErrGestureActive = &apperr.Error{
	Message: "a selection gesture is already in progress",
}
