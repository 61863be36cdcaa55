package service

import "testing"

func TestOrganisedBy(t *testing.T) {
	organiser := int64(4)

	tests := []struct {
		name      string
		organiser *int64
		userID    int64
		want      bool
	}{
		{"nil organiser matches no one", nil, 4, false},
		{"matching user", &organiser, 4, true},
		{"different user", &organiser, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := organisedBy(tt.organiser, tt.userID); got != tt.want {
				t.Errorf("organisedBy(%v, %d) = %v, want %v", tt.organiser, tt.userID, got, tt.want)
			}
		})
	}
}
