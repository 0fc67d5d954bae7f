package core

import (
	"errors"
	"testing"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr error
	}{
		{
			name:    "valid profile",
			profile: &Profile{EmployeeID: "E1", Skills: []Skill{{Name: "Go"}, {Name: "Python"}}},
			wantErr: nil,
		},
		{
			name:    "valid profile without skills",
			profile: &Profile{EmployeeID: "E1"},
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "empty employee id",
			profile: &Profile{Name: "Nobody"},
			wantErr: ErrEmptyEmployeeID,
		},
		{
			name:    "duplicate normalized skill",
			profile: &Profile{EmployeeID: "E1", Skills: []Skill{{Name: "Big Data"}, {Name: "big-data"}}},
			wantErr: ErrDuplicateSkill,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProfile() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProfile() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("ValidateProfile() error = %v, want wrapped %v", err, ErrInvalidProfile)
			}
		})
	}
}
