package domain

// Role distinguishes the single managing account from everyone else.
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleHelper  Role = "HELPER"
)

// AdminUserName is the reserved username that carries the manager role.
const AdminUserName = "admin"

// RoleForUserName derives a user's role from their username. The role is
// never taken from input or storage verbatim; it is always recomputed here.
func RoleForUserName(userName string) Role {
	if userName == AdminUserName {
		return RoleManager
	}
	return RoleHelper
}

func (r Role) String() string {
	return string(r)
}
