package domain

// OperatorRole controls access to admin routes.
type OperatorRole string

const (
	RoleAdmin OperatorRole = "admin"
	RoleUser  OperatorRole = "user"
)

// Operator is a person allowed to run a terminal.
type Operator struct {
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	Role         OperatorRole `json:"role"`
}
