package models

// Role is a permission granted to a user inside one application, optionally
// narrowed to a section of that application. The user service is the
// authority over roles; this service only references them.
type Role struct {
	// App is the application the role belongs to.
	App string `json:"app"`

	// Role is the role name (e.g. "user", "admin").
	Role string `json:"role"`

	// Section narrows the role to one section of App. Empty means the role
	// applies to the whole application.
	Section string `json:"section,omitempty"`
}

// User is the user record returned by the user service.
type User struct {
	// Email identifies the user in every user service call.
	Email string `json:"email"`

	// Company is the optional company the user belongs to.
	Company string `json:"company,omitempty"`

	// Roles lists the roles granted to the user across all applications.
	Roles []Role `json:"roles"`
}

// RolesForApp returns the roles of u that belong to app, preserving order.
func (u User) RolesForApp(app string) []Role {
	var roles []Role
	for _, role := range u.Roles {
		if role.App == app {
			roles = append(roles, role)
		}
	}
	return roles
}
