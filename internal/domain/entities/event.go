package entities

// EventStatus is the lifecycle state of an Event. It only moves Open -> Closed.
type EventStatus int

const (
	EventOpen   EventStatus = 1
	EventClosed EventStatus = 2
)

func (s EventStatus) String() string {
	switch s {
	case EventOpen:
		return "open"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func (e *Event) IsOpen() bool {
	return e.Status == EventOpen
}

type Event struct {
	ID        int64
	Type      string
	Title     string
	StartDate string
	EndDate   string // empty = open-ended
	Logo      string
	Status    EventStatus
}
