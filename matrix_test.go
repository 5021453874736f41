package conic

import "testing"

// mul3 multiplies two Matrix3 values. Only tests need a full product.
func mul3(a, b Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s complex128
			for k := 0; k < 3; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			r[3*i+j] = s
		}
	}
	return r
}

func matricesEqual(a, b Matrix3, eps float64) bool {
	for i := range a {
		if !complexEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestMatrix3Det(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		want complex128
	}{
		{"identity", Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}, 1},
		{"general", Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 10}, -3},
		{"singular", Matrix3{1, 0, -1, 0, 1, 0, -1, 0, 1}, 0},
		{"complex", Matrix3{1i, 0, 0, 0, 1i, 0, 0, 0, 1i}, -1i},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Det(); !complexEqual(got, tt.want, testEps) {
				t.Errorf("Det() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix3Transpose(t *testing.T) {
	m := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	want := Matrix3{1, 4, 7, 2, 5, 8, 3, 6, 9}
	if got := m.Transpose(); got != want {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
}

func TestMatrix3AddScale(t *testing.T) {
	m := Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	got := m.Scale(2).Add(m)
	want := Matrix3{3, 0, 0, 0, 3, 0, 0, 0, 3}
	if got != want {
		t.Errorf("Scale(2).Add(m) = %v, want %v", got, want)
	}
}

func TestMatrix3Adjugate(t *testing.T) {
	// adj(M)·M = det(M)·I for any M.
	ms := []Matrix3{
		{1, 2, 3, 4, 5, 6, 7, 8, 10},
		{2, 0, -2, 0, 2, 0, -2, 0, 2},
		{1i, 2, 0, -1, 3i, 1, 0, 1, 1},
	}
	for _, m := range ms {
		det := m.Det()
		want := Matrix3{det, 0, 0, 0, det, 0, 0, 0, det}
		if got := mul3(m.Adjugate(), m); !matricesEqual(got, want, 1e-10) {
			t.Errorf("adj(M)·M = %v, want %v", got, want)
		}
	}
}

func TestMatrix3AdjugateRank1(t *testing.T) {
	// The adjugate of a rank-2 matrix has rank 1: its rows are parallel.
	m := Matrix3{1, 0, -1, 0, 1, 0, -1, 0, 1}
	want := Matrix3{1, 0, 1, 0, 0, 0, 1, 0, 1}
	if got := m.Adjugate(); !matricesEqual(got, want, testEps) {
		t.Errorf("Adjugate() = %v, want %v", got, want)
	}
}

func TestMatrix3DominantRow(t *testing.T) {
	m := Matrix3{1, 2, 100, 3, 4, 0, 0, 0, 5}
	if got := m.DominantRow(false); got != (Line{3, 4, 0}) {
		t.Errorf("DominantRow(false) = %v, want row 1", got)
	}
	if got := m.DominantRow(true); got != (Line{1, 2, 100}) {
		t.Errorf("DominantRow(true) = %v, want row 0", got)
	}

	// Ties resolve to the earliest row.
	tie := Matrix3{1, 1, 1, 1, 1, 1, 1, 1, 1}
	if got := tie.DominantRow(false); got != (Line{1, 1, 1}) {
		t.Errorf("DominantRow on tie = %v, want row 0", got)
	}
}

func TestAntisymmetric(t *testing.T) {
	s := antisymmetric(Line{1, 2, 3})
	want := Matrix3{0, 3, -2, -3, 0, 1, 2, -1, 0}
	if s != want {
		t.Errorf("antisymmetric = %v, want %v", s, want)
	}
	if s.Add(s.Transpose()) != (Matrix3{}) {
		t.Errorf("antisymmetric matrix plus its transpose should vanish")
	}
}
