package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	gen := NewRandomGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if len(first) != defaultByteLength*2 {
		t.Fatalf("expected %d hex chars, got %q", defaultByteLength*2, first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if !ValidExternal(first) {
		t.Fatalf("generated id %q should be valid", first)
	}
}

func TestValidExternal(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "req-123_abc.1", want: true},
		{in: "", want: false},
		{in: "has space", want: false},
		{in: "line\nbreak", want: false},
		{in: string(make([]byte, maxExternalLength+1)), want: false},
	}

	for _, tt := range tests {
		if got := ValidExternal(tt.in); got != tt.want {
			t.Fatalf("ValidExternal(%q)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
