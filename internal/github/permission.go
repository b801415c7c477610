package github

import "strings"

// PermissionLevel is a repository access tier, ordered from least to most privileged
type PermissionLevel int

const (
	PermissionNone PermissionLevel = iota
	PermissionRead
	PermissionTriage
	PermissionWrite
	PermissionMaintain
	PermissionAdmin
)

// MinimumCommandPermission is the lowest level allowed to issue bot commands
const MinimumCommandPermission = PermissionMaintain

var permissionNames = map[PermissionLevel]string{
	PermissionNone:     "none",
	PermissionRead:     "read",
	PermissionTriage:   "triage",
	PermissionWrite:    "write",
	PermissionMaintain: "maintain",
	PermissionAdmin:    "admin",
}

// String returns the GitHub API name of the permission level
func (p PermissionLevel) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "none"
}

// ParsePermissionLevel converts a GitHub permission or role name to a PermissionLevel.
// Unknown values map to PermissionNone.
func ParsePermissionLevel(s string) PermissionLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return PermissionAdmin
	case "maintain":
		return PermissionMaintain
	case "write":
		return PermissionWrite
	case "triage":
		return PermissionTriage
	case "read":
		return PermissionRead
	default:
		return PermissionNone
	}
}
