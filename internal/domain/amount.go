package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a numeric input that never fails to decode. JSON numbers,
// numeric strings, blank strings and null are all accepted; anything that
// does not parse becomes zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(ParseAmount(s))
		return nil
	}
	*a = Amount(ParseAmount(string(data)))
	return nil
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// ParseAmount parses s as a number, returning 0 for blank, non-numeric or
// non-finite input.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

// NonNegative coerces negative and non-finite values to zero.
func NonNegative(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
