package domain

// Role names seeded at startup. All privilege checks compare by name so the
// policy does not depend on how role ids happen to be seeded.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// Role is a named permission group assignable to users.
type Role struct {
	ID   int64  `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// ContainsRole reports whether any of the given roles carries the name.
func ContainsRole(roles []Role, name string) bool {
	for _, r := range roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
