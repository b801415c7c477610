package github

import "testing"

func TestParsePermissionLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected PermissionLevel
	}{
		{"admin", PermissionAdmin},
		{"maintain", PermissionMaintain},
		{"write", PermissionWrite},
		{"triage", PermissionTriage},
		{"read", PermissionRead},
		{"none", PermissionNone},
		{"ADMIN", PermissionAdmin},
		{" Maintain ", PermissionMaintain},
		{"", PermissionNone},
		{"owner", PermissionNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParsePermissionLevel(tt.input); got != tt.expected {
				t.Errorf("ParsePermissionLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPermissionLevel_Ordering(t *testing.T) {
	ordered := []PermissionLevel{
		PermissionNone,
		PermissionRead,
		PermissionTriage,
		PermissionWrite,
		PermissionMaintain,
		PermissionAdmin,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("Expected %v < %v", ordered[i-1], ordered[i])
		}
	}

	if MinimumCommandPermission != PermissionMaintain {
		t.Errorf("MinimumCommandPermission = %v, want maintain", MinimumCommandPermission)
	}
}

func TestPermissionLevel_String(t *testing.T) {
	for _, name := range []string{"none", "read", "triage", "write", "maintain", "admin"} {
		if got := ParsePermissionLevel(name).String(); got != name {
			t.Errorf("String() round trip for %q = %q", name, got)
		}
	}

	if got := PermissionLevel(42).String(); got != "none" {
		t.Errorf("String() for unknown level = %q, want none", got)
	}
}
