package irt

import "testing"

func TestPlateaued(t *testing.T) {
	tests := []struct {
		name   string
		correct []bool
		thetas  []float64
		want    bool
	}{
		{
			name:    "too few responses",
			correct: []bool{true, false, true, false},
			thetas:  []float64{1.0, 1.1, 1.0, 1.1},
			want:    false,
		},
		{
			name:    "alternating with stable theta",
			correct: []bool{true, false, true, false, true},
			thetas:  []float64{1.0, 1.1, 1.0, 1.1, 1.05},
			want:    true,
		},
		{
			name:    "alternating but theta still moving",
			correct: []bool{true, false, true, false, true},
			thetas:  []float64{0.0, 0.5, 1.0, 1.5, 2.0},
			want:    false,
		},
		{
			name:    "streak of correct answers",
			correct: []bool{true, true, true, true, true},
			thetas:  []float64{1.0, 1.0, 1.0, 1.0, 1.0},
			want:    false,
		},
		{
			name:    "only last five considered",
			correct: []bool{true, true, true, true, true, false, true, false, true},
			thetas:  []float64{0.0, 0.5, 1.0, 1.2, 1.3, 1.35, 1.3, 1.32, 1.3},
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plateaued(tt.correct, tt.thetas); got != tt.want {
				t.Errorf("Plateaued() = %v, want %v", got, tt.want)
			}
		})
	}
}
