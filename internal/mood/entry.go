package mood

// Entry is one logged mood rating. Message is nil when no note was given.
type Entry struct {
	ID        int64
	Timestamp int64
	Value     float64
	Message   *string
}

// NewEntry builds an Entry from validated input. An empty message is treated
// as absent.
func NewEntry(timestamp int64, value float64, message string) Entry {
	e := Entry{Timestamp: timestamp, Value: value}
	if message != "" {
		e.Message = &message
	}
	return e
}
