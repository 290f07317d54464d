package models

import "testing"

func TestHasPermission(t *testing.T) {
	rolePrivileges := Role{
		Name:        "Admin",
		Permissions: []Permission{9, 10, 11, 12},
		Status:      StatusActive,
	}

	tests := []struct {
		name     string
		roles    []Role
		code     Permission
		expected bool
	}{
		{"granted code admits", []Role{rolePrivileges}, 9, true},
		{"absent code rejects", []Role{rolePrivileges}, 25, false},
		{"empty role set rejects", nil, 9, false},
		{"role with no permissions rejects", []Role{{Name: "Empty"}}, 9, false},
		{
			"any one role granting suffices",
			[]Role{{Name: "Empty"}, rolePrivileges},
			10,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.roles, tt.code); got != tt.expected {
				t.Errorf("HasPermission(%v) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

// Adding a role that grants the code never converts an admission into a
// rejection.
func TestHasPermissionMonotonic(t *testing.T) {
	base := []Role{{Name: "Support", Permissions: []Permission{PermViewFeedback}}}
	granting := Role{Name: "Admin", Permissions: []Permission{PermViewRole}}

	if HasPermission(base, PermViewRole) {
		t.Fatal("base set should not grant PermViewRole")
	}
	if !HasPermission(append(base, granting), PermViewRole) {
		t.Fatal("adding a granting role must admit")
	}
	if !HasPermission(append(base, granting), PermViewFeedback) {
		t.Fatal("adding a role must not revoke existing grants")
	}
}

func TestIsValidPermission(t *testing.T) {
	for _, code := range AllPermissions() {
		if !IsValidPermission(code) {
			t.Errorf("enumerated code %d reported invalid", code)
		}
	}
	for _, code := range []Permission{0, -1, 37, 1000} {
		if IsValidPermission(code) {
			t.Errorf("code %d should be invalid", code)
		}
	}
}
