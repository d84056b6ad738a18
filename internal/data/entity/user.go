package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     *string  `db:"full_name"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
