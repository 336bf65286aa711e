package auth

import (
	"testing"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name      string
		ownerID   string
		principal *Principal
		want      bool
	}{
		{"owner allowed", "7", &Principal{IdentityID: "7", Role: domain.RoleJobseeker}, true},
		{"non-owner denied", "7", &Principal{IdentityID: "8", Role: domain.RoleJobseeker}, false},
		{"non-owner employer denied", "7", &Principal{IdentityID: "8", Role: domain.RoleEmployer}, false},
		{"admin allowed regardless of owner", "7", &Principal{IdentityID: "9", Role: domain.RoleAdmin}, true},
		{"admin owner allowed", "9", &Principal{IdentityID: "9", Role: domain.RoleAdmin}, true},
		{"nil principal denied", "7", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.ownerID, tt.principal); got != tt.want {
				t.Errorf("CanModify(%q, %+v) = %v, want %v", tt.ownerID, tt.principal, got, tt.want)
			}
		})
	}
}
