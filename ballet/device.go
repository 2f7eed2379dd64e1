package ballet

import "context"

// Device is the contract the choreographer needs from a vacuum. The
// cloud/MQTT binding lives outside this package; the sim package
// provides an offline implementation.
//
// A Device is a single shared remote resource. Callers must not run
// two dances concurrently against one device.
type Device interface {
	// SendGoto asks the onboard navigation to drive to p. The call is
	// asynchronous in effect but presented as blocking; it may fail
	// with ErrNotReachable, ErrDisconnected or ErrTimeout.
	SendGoto(ctx context.Context, p Point) error

	// Status reports the device's current state. Absent fields are nil,
	// meaning "unknown" — never zero.
	Status(ctx context.Context) (DeviceStatus, error)

	Beep(ctx context.Context) error
	Clean(ctx context.Context) error
	Dock(ctx context.Context) error
}

// DeviceStatus is a snapshot of what the device last reported. Pointer
// fields are nil when the feed did not include them.
type DeviceStatus struct {
	Position       *Point
	DistanceToGoal *float64
	Battery        *int
	State          string
}
