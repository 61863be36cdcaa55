package model

import "testing"

func TestEventIsFree(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  bool
	}{
		{"zero price", 0, true},
		{"sub-dollar price", 0.5, false},
		{"paid", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Price: tt.price}
			if got := e.IsFree(); got != tt.want {
				t.Errorf("IsFree() with price %v = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}
