package models

import "fmt"

// Money is a monetary amount in céntimos (minor units of the sol).
// Integer arithmetic keeps totals exact across any number of additions.
type Money int64

// String renders the amount for display, e.g. "S/ 12.50".
func (m Money) String() string {
	return fmt.Sprintf("S/ %d.%02d", m/100, m%100)
}
