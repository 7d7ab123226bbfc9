package frame

// Series is a column of values aligned to a frame's period axis.
// Every operation returns a new Series; receivers are never modified.
// Binary operations require equal lengths and panic otherwise, like an index out of range.
type Series []Num

// Const returns a Series of n copies of v.
func Const(n int, v Num) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Zeros returns a Series of n known zeros.
func Zeros(n int) Series {
	return Const(n, Of(0))
}

// Unknowns returns a Series of n Unknown values.
func Unknowns(n int) Series {
	return make(Series, n)
}

// FromFloats wraps raw floats.
func FromFloats(vs ...float64) Series {
	s := make(Series, len(vs))
	for i, v := range vs {
		s[i] = Of(v)
	}
	return s
}

// Clone returns a copy.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Map applies fn elementwise.
func (s Series) Map(fn func(Num) Num) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Zip applies fn to aligned pairs.
func (s Series) Zip(o Series, fn func(a, b Num) Num) Series {
	if len(s) != len(o) {
		panic("frame: series length mismatch")
	}
	out := make(Series, len(s))
	for i := range s {
		out[i] = fn(s[i], o[i])
	}
	return out
}

func (s Series) Add(o Series) Series { return s.Zip(o, Num.Add) }
func (s Series) Sub(o Series) Series { return s.Zip(o, Num.Sub) }
func (s Series) Mul(o Series) Series { return s.Zip(o, Num.Mul) }

// Div divides elementwise; zero or Unknown denominators yield Unknown.
func (s Series) Div(o Series) Series { return s.Zip(o, Num.Div) }

func (s Series) Scale(k float64) Series {
	return s.Map(func(n Num) Num { return n.Scale(k) })
}

func (s Series) Abs() Series { return s.Map(Num.Abs) }
func (s Series) Neg() Series { return s.Map(Num.Neg) }

func (s Series) Floor(min float64) Series {
	return s.Map(func(n Num) Num { return n.Floor(min) })
}

// FillUnknown replaces Unknown cells with v.
func (s Series) FillUnknown(v float64) Series {
	return s.Map(func(n Num) Num {
		if !n.Known() {
			return Of(v)
		}
		return n
	})
}

// FillFrom replaces Unknown cells with the aligned cell of o.
func (s Series) FillFrom(o Series) Series {
	return s.Zip(o, func(a, b Num) Num {
		if !a.Known() {
			return b
		}
		return a
	})
}

// UnlessZero keeps s, substituting the aligned cell of fallback wherever s is exactly zero.
// Unknown cells in s are kept as Unknown.
func (s Series) UnlessZero(fallback Series) Series {
	return s.Zip(fallback, func(a, b Num) Num {
		if a.IsZero() {
			return b
		}
		return a
	})
}

// Shift moves values k rows later; the first k rows become Unknown.
func (s Series) Shift(k int) Series {
	out := make(Series, len(s))
	for i := range s {
		if j := i - k; j >= 0 && j < len(s) {
			out[i] = s[j]
		}
	}
	return out
}

// Diff is the change from the previous row. The first row is Unknown.
func (s Series) Diff() Series {
	return s.Sub(s.Shift(1))
}

// Avg is the mean of each row and the preceding one. The first row is Unknown.
func (s Series) Avg() Series {
	return s.Add(s.Shift(1)).Scale(0.5)
}

// PctChange is cur/prior - 1 against the row k positions earlier.
func (s Series) PctChange(k int) Series {
	prior := s.Shift(k)
	return s.Zip(prior, func(cur, p Num) Num {
		return cur.Div(p).Sub(Of(1))
	})
}

// ForwardFill carries the last accepted value into every cell for which gap returns true.
// Leading gaps with nothing to carry keep their original value.
func (s Series) ForwardFill(gap func(Num) bool) Series {
	out := s.Clone()
	var last Num
	have := false
	for i, v := range out {
		if gap(v) {
			if have {
				out[i] = last
			}
			continue
		}
		last, have = v, true
	}
	return out
}

// Sum adds series elementwise. It returns nil for no arguments.
func Sum(ss ...Series) Series {
	if len(ss) == 0 {
		return nil
	}
	out := ss[0].Clone()
	for _, s := range ss[1:] {
		out = out.Add(s)
	}
	return out
}
