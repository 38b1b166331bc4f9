package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recognized roles. Anything else collapses to RoleDefault at creation.
const (
	RoleAdmin   = "admin"
	RoleDefault = "Usuario"
)

// User is stored in the "usuarios" collection. Password always holds a bcrypt
// hash, never the plaintext. The hash is intentionally not masked in JSON:
// list-users and login responses expose it, matching the deployed behavior
// (flagged in DESIGN.md, do not "fix" silently).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"nombre" json:"nombre"`
	Email    string             `bson:"correo" json:"correo"`
	Password string             `bson:"password" json:"password"`
	Role     string             `bson:"rol" json:"rol"`
}

// NormalizeRole maps an arbitrary requested role onto the recognized set.
func NormalizeRole(rol string) string {
	if rol == RoleAdmin || rol == RoleDefault {
		return rol
	}
	return RoleDefault
}
