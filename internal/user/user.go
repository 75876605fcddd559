package user

// Platform roles carried in the token's role claim.
const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

// User is the account document persisted in the users collection.
type User struct {
	IDUser       string `bson:"idUser"       json:"idUser"`
	Email        string `bson:"email"        json:"email"`
	Name         string `bson:"name"         json:"name"`
	Role         string `bson:"role"         json:"role"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Active       bool   `bson:"active"       json:"active"`
}
