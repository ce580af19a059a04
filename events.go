package yew

// Event is delivered to listeners by Fire.
type Event struct {
	Type   string
	Target *VTag
	Value  string // current value for input and change events
}

// Fire calls every handler registered on t for event, in registration
// order, and reports how many ran. Handlers may be func(), func(Event) or
// func(*Event); handlers of other types are skipped.
func (t *VTag) Fire(event string, value string) int {
	ev := Event{Type: event, Target: t, Value: value}
	n := 0
	for _, l := range t.Listeners {
		if l.Event != event {
			continue
		}
		switch h := l.Handler.(type) {
		case func():
			h()
		case func(Event):
			h(ev)
		case func(*Event):
			h(&ev)
		default:
			continue
		}
		n++
	}
	return n
}
