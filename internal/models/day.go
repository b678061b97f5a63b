package models

import "time"

// DaySession is the state of one trading day.
//
// Start and End use the zero time.Time as "not set". End is only ever set
// while Start is set and never precedes it. While Start is set and End is
// not, the day is open and orders accumulate.
type DaySession struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Orders []Order   `json:"orders"`
}

// Open reports whether a day has started and not yet ended.
func (d DaySession) Open() bool {
	return !d.Start.IsZero() && d.End.IsZero()
}

// Total is the sum of all order totals in the session.
func (d DaySession) Total() Money {
	var sum Money
	for _, o := range d.Orders {
		sum += o.Total
	}
	return sum
}
