package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: "/health", want: false},
		{path: "/livez", want: false},
		{path: "/readyz", want: false},
		{path: " /HEALTHZ ", want: false},
		{path: "/v1/filters", want: true},
		{path: "/v1/countries/Brazil/dashboard", want: true},
		{path: "/", want: true},
	}

	for _, tt := range tests {
		if got := shouldTraceRequest(tt.path); got != tt.want {
			t.Errorf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
