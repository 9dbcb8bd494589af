package models

// Operator is a row of operators.
type Operator struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
}
