package models

// Permission is a small integer code identifying one allowed action on one resource.
type Permission int

// The global permission enumeration, partitioned by resource. Codes are stable;
// roles store them directly, so renumbering is a breaking data change.
const (
	// PermNone marks routes that require authentication but no specific permission.
	PermNone Permission = 0

	PermViewCountry   Permission = 1
	PermAddCountry    Permission = 2
	PermEditCountry   Permission = 3
	PermDeleteCountry Permission = 4

	PermViewDocumentation   Permission = 5
	PermAddDocumentation    Permission = 6
	PermEditDocumentation   Permission = 7
	PermDeleteDocumentation Permission = 8

	PermViewRole   Permission = 9
	PermAddRole    Permission = 10
	PermEditRole   Permission = 11
	PermDeleteRole Permission = 12

	PermViewTopic   Permission = 13
	PermAddTopic    Permission = 14
	PermEditTopic   Permission = 15
	PermDeleteTopic Permission = 16

	PermViewTest   Permission = 17
	PermAddTest    Permission = 18
	PermEditTest   Permission = 19
	PermDeleteTest Permission = 20

	PermViewQuestion   Permission = 21
	PermAddQuestion    Permission = 22
	PermEditQuestion   Permission = 23
	PermDeleteQuestion Permission = 24

	PermViewPlayer   Permission = 25
	PermAddPlayer    Permission = 26
	PermEditPlayer   Permission = 27
	PermDeletePlayer Permission = 28

	PermViewFeedback   Permission = 29
	PermAddFeedback    Permission = 30
	PermEditFeedback   Permission = 31
	PermDeleteFeedback Permission = 32

	PermViewAdmin   Permission = 33
	PermAddAdmin    Permission = 34
	PermEditAdmin   Permission = 35
	PermDeleteAdmin Permission = 36
)

const permissionMax = PermDeleteAdmin

// IsValidPermission reports whether code belongs to the global enumeration.
func IsValidPermission(code Permission) bool {
	return code >= PermViewCountry && code <= permissionMax
}

// AllPermissions returns every code in the global enumeration, in order.
func AllPermissions() []Permission {
	perms := make([]Permission, 0, int(permissionMax))
	for c := PermViewCountry; c <= permissionMax; c++ {
		perms = append(perms, c)
	}
	return perms
}

// HasPermission reports whether code appears in the permission set of at least
// one of the given roles. Admission is a logical OR across roles.
func HasPermission(roles []Role, code Permission) bool {
	for _, role := range roles {
		for _, p := range role.Permissions {
			if p == code {
				return true
			}
		}
	}
	return false
}
