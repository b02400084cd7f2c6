package loop

import "github.com/topodyn/braidkit/pkg/numeric"

// IntAxis returns the number of intersections of the multicurve with the
// real axis. The formula extends the coordinate vector by the implicit
// boundary intersection counts b0 and bn (Hall–Yurttaş):
//
//	b0 = -max_i( |a_i| + max(b_i, 0) + sum_{j<i} b_j )
//	bn = -b0 - sum_i b_i
//	intaxis = sum|b_i| + sum|a_{i+1}-a_i| + |a_1| + |a_K| + |b0| + |bn|
//
// All arithmetic goes through the loop's backend; on a fixed-width backend
// the returned error (wrapping numeric.ErrOverflow) flags a best-effort
// result.
func (l *Loop) IntAxis() (numeric.Value, error) {
	m := measurer{be: l.be, zero: l.be.Zero()}

	// b0 via the running prefix sum of b.
	cum := m.zero
	best := numeric.Value{}
	for i := range l.a {
		t := m.add(m.abs(l.a[i]), m.add(m.be.Max(l.b[i], m.zero), cum))
		if i == 0 {
			best = t
		} else {
			best = m.be.Max(best, t)
		}
		cum = m.add(cum, l.b[i])
	}
	b0 := m.neg(best)
	bn := m.sub(m.neg(b0), cum) // cum now holds sum(b)

	total := m.add(m.abs(b0), m.abs(bn))
	total = m.add(total, m.abs(l.a[0]))
	total = m.add(total, m.abs(l.a[len(l.a)-1]))
	for i := range l.b {
		total = m.add(total, m.abs(l.b[i]))
		if i > 0 {
			total = m.add(total, m.abs(m.sub(l.a[i], l.a[i-1])))
		}
	}
	return total, m.err
}

// MinLength returns the minimal total intersection number over all
// isotopy-preserving axis choices: the real-axis crossings plus the taut
// vertical-line crossings contributed twice by each a entry.
func (l *Loop) MinLength() (numeric.Value, error) {
	m := measurer{be: l.be, zero: l.be.Zero()}
	total, err := l.IntAxis()
	m.note(err)
	for i := range l.a {
		av := m.abs(l.a[i])
		total = m.add(total, m.add(av, av))
	}
	return total, m.err
}

// L2Norm2 returns the sum of squared coordinates as a float64. It is the
// normalization measure of the iterative entropy estimate, where only growth
// ratios matter, so the conversion to floating point is acceptable for every
// backend.
func (l *Loop) L2Norm2() float64 {
	var sum float64
	for _, v := range l.Coords() {
		f := v.Float64()
		sum += f * f
	}
	return sum
}

// measurer accumulates the first overflow seen while keeping the formulas
// readable, mirroring the update kernel's state helper.
type measurer struct {
	be   numeric.Backend
	zero numeric.Value
	err  error
}

func (m *measurer) note(err error) {
	if err != nil && m.err == nil {
		m.err = err
	}
}

func (m *measurer) add(x, y numeric.Value) numeric.Value {
	v, err := m.be.Add(x, y)
	m.note(err)
	return v
}

func (m *measurer) sub(x, y numeric.Value) numeric.Value {
	v, err := m.be.Sub(x, y)
	m.note(err)
	return v
}

func (m *measurer) neg(x numeric.Value) numeric.Value {
	v, err := m.be.Neg(x)
	m.note(err)
	return v
}

func (m *measurer) abs(x numeric.Value) numeric.Value {
	v, err := m.be.Abs(x)
	m.note(err)
	return v
}
