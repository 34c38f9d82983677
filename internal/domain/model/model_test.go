package model

import "testing"

func TestMatchesName(t *testing.T) {
	m := Model{Name: "Aïcha Ndong"}

	tests := []struct {
		in       string
		expected bool
	}{
		{"Aïcha Ndong", true},
		{"aïcha ndong", true},
		{"aicha NDONG", true},
		{"  Aicha Ndong ", true},
		{"Aïcha Ndonga", false},
		{"Marie Okemba", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := m.MatchesName(tt.in); got != tt.expected {
				t.Errorf("MatchesName(%q) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}
