package pi

import "testing"

func TestIsFeynmanIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{name: "before window", index: 760, want: false},
		{name: "first index", index: 761, want: true},
		{name: "inside window", index: 764, want: true},
		{name: "last index", index: 766, want: true},
		{name: "after window", index: 767, want: false},
		{name: "zero", index: 0, want: false},
		{name: "negative", index: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFeynmanIndex(tt.index); got != tt.want {
				t.Errorf("IsFeynmanIndex(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}
