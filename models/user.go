package models

// User types.
const (
	UserTypeUser     = "user"
	UserTypeProvider = "provider"
)

// User holds account credentials used at login. Provider accounts carry an
// additional Provider profile record keyed by UserID.
type User struct {
	ID       string `bson:"id" json:"id"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // bcrypt hash
	UserType string `bson:"userType" json:"userType"`
}
