package overlay

// Event is a window system event. The concrete types are CloseRequested,
// Resized, RedrawOpportunity and Other.
type Event interface {
	event()
}

// CloseRequested asks the session to end now, regardless of the deadline.
type CloseRequested struct{}

// Resized reports a new surface size in pixels.
type Resized struct {
	Width  int
	Height int
}

// RedrawOpportunity marks a display refresh.
type RedrawOpportunity struct{}

// Other is any event the overlay ignores.
type Other struct{}

func (CloseRequested) event()    {}
func (Resized) event()           {}
func (RedrawOpportunity) event() {}
func (Other) event()             {}
