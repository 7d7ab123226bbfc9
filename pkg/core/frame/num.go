// Package frame provides the nullable numeric types the metrics pipeline is built on.
//
// A Num distinguishes "not reported / not computable" (Unknown) from a reported zero.
// Series is a column of Nums aligned to the period axis of a Frame, and Frame is an
// immutable, period-ordered table of named Series.
package frame

import (
	"encoding/json"
	"math"
	"strconv"
)

// Num is a nullable float64. The zero value is Unknown.
type Num struct {
	v  float64
	ok bool
}

// Unknown is the missing value.
var Unknown = Num{}

// Of wraps a float. NaN and ±Inf collapse to Unknown so they can never reach output.
func Of(v float64) Num {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unknown
	}
	return Num{v: v, ok: true}
}

// Value returns the float and whether it is known.
func (n Num) Value() (float64, bool) {
	return n.v, n.ok
}

// Known reports whether n holds a value.
func (n Num) Known() bool {
	return n.ok
}

// Or returns the value, or def when Unknown.
func (n Num) Or(def float64) float64 {
	if !n.ok {
		return def
	}
	return n.v
}

// IsZero reports a known, exactly-zero value. Unknown is not zero.
func (n Num) IsZero() bool {
	return n.ok && n.v == 0
}

// Positive reports a known value strictly greater than zero.
func (n Num) Positive() bool {
	return n.ok && n.v > 0
}

func (n Num) Add(o Num) Num {
	if !n.ok || !o.ok {
		return Unknown
	}
	return Of(n.v + o.v)
}

func (n Num) Sub(o Num) Num {
	if !n.ok || !o.ok {
		return Unknown
	}
	return Of(n.v - o.v)
}

func (n Num) Mul(o Num) Num {
	if !n.ok || !o.ok {
		return Unknown
	}
	return Of(n.v * o.v)
}

// Div is null-safe: a zero or Unknown denominator yields Unknown.
func (n Num) Div(d Num) Num {
	if !n.ok || !d.ok || d.v == 0 {
		return Unknown
	}
	return Of(n.v / d.v)
}

func (n Num) Scale(k float64) Num {
	if !n.ok {
		return Unknown
	}
	return Of(n.v * k)
}

func (n Num) Abs() Num {
	if !n.ok {
		return Unknown
	}
	return Num{v: math.Abs(n.v), ok: true}
}

func (n Num) Neg() Num {
	if !n.ok {
		return Unknown
	}
	return Num{v: -n.v, ok: true}
}

// Floor clips a known value from below. Unknown stays Unknown.
func (n Num) Floor(min float64) Num {
	if !n.ok {
		return Unknown
	}
	if n.v < min {
		return Num{v: min, ok: true}
	}
	return n
}

// String renders the shortest round-trip form, or "" for Unknown.
func (n Num) String() string {
	if !n.ok {
		return ""
	}
	return strconv.FormatFloat(n.v, 'g', -1, 64)
}

// MarshalJSON emits null for Unknown.
func (n Num) MarshalJSON() ([]byte, error) {
	if !n.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.v, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts null or a number.
func (n *Num) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Unknown
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Of(v)
	return nil
}
