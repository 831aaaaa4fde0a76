package entity

const (
	RoleAdmin = "Admin"
	RoleAgent = "Agent"
	RoleUser  = "User"
)

type Role struct {
	Base
	Name string `db:"name"`
}
