package github

// permissionResponse mirrors the collaborator permission endpoint payload.
// role_name carries the fine-grained role (maintain, triage) that the legacy
// permission field folds into write / read.
type permissionResponse struct {
	Permission string `json:"permission"`
	RoleName   string `json:"role_name"`
	User       struct {
		Login string `json:"login"`
	} `json:"user"`
}

// level resolves the effective permission level of the response
func (r *permissionResponse) level() PermissionLevel {
	if r.RoleName != "" {
		if lvl := ParsePermissionLevel(r.RoleName); lvl != PermissionNone || r.RoleName == "none" {
			return lvl
		}
	}
	return ParsePermissionLevel(r.Permission)
}
