package ports

import "time"

// IDGenerator hands out unique identifiers for users, products and orders.
type IDGenerator interface {
	NewID() string
}

// Clock supplies order timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns the current UTC time.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }
