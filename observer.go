package maple

// ObserverFunc receives (source, new value) notifications from an observable
// widget. Observers return nothing; the widget never consumes a result.
type ObserverFunc func(source any, value any)

// Observable is the notification half of the observer pattern, embedded by
// widgets that emit semantic values (Slider, Button).
type Observable struct {
	observers []ObserverFunc
}

// AddObserver registers fn to be called on every value change.
func (o *Observable) AddObserver(fn ObserverFunc) {
	o.observers = append(o.observers, fn)
}

// Notify calls every registered observer in registration order.
func (o *Observable) Notify(source any, value any) {
	for _, fn := range o.observers {
		fn(source, value)
	}
}
