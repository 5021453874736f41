package conic

import "testing"

func TestIntersectLines(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 Line
		want   Point
		ok     bool
	}{
		{
			name: "axis crossing",
			l1:   Line{1, 0, -1}, // x = 1
			l2:   Line{0, 1, 0},  // y = 0
			want: Pt(1, 0),
			ok:   true,
		},
		{
			name: "general crossing",
			l1:   Line{1, -1, 0}, // y = x
			l2:   Line{1, 1, -2}, // x + y = 2
			want: Pt(1, 1),
			ok:   true,
		},
		{
			name: "parallel",
			l1:   Line{1, 0, -1},
			l2:   Line{2, 0, 3},
			ok:   false,
		},
		{
			name: "coincident",
			l1:   Line{1, 2, 3},
			l2:   Line{2, 4, 6},
			ok:   false,
		},
		{
			name: "conjugate pair meets at real point",
			l1:   Line{2, 2i, -2},  // x + iy = 1
			l2:   Line{2, -2i, -2}, // x - iy = 1
			want: Pt(1, 0),
			ok:   true,
		},
		{
			name: "complex crossing rejected",
			l1:   Line{1, 1i, 0},
			l2:   Line{1, 0, 1},
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectLines(tt.l1, tt.l2)
			if ok != tt.ok {
				t.Fatalf("IntersectLines ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Distance(tt.want) > 1e-10 {
				t.Errorf("IntersectLines = %v, want %v", got, tt.want)
			}
		})
	}
}
