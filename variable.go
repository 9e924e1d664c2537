package radiance

import (
	"fmt"
	"strconv"
)

// A Variable is one KEY=VALUE line of the header.
type Variable struct {
	Key   string
	Value string
}

// Float parses the value as a float64.
func (v Variable) Float() (float64, error) {
	return strconv.ParseFloat(v.Value, 64)
}

// String implements Stringer.
func (v Variable) String() string {
	return fmt.Sprintf("%s: %s", v.Key, v.Value)
}
