package core

import "fmt"

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - EmployeeID must not be empty
//   - no two skills may share a normalized name
//
// Display fields, courses and certifications are not validated; missing
// values are legitimate in source data.
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.EmployeeID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyEmployeeID)
	}

	seen := make(map[string]struct{}, len(profile.Skills))
	for _, s := range profile.Skills {
		key := Normalize(s.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %w: %q", ErrInvalidProfile, ErrDuplicateSkill, s.Name)
		}
		seen[key] = struct{}{}
	}

	return nil
}
