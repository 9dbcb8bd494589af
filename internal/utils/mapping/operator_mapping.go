package mapping

import (
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	"github.com/SscSPs/gcash_pos_backend/internal/models"
)

// ToDomainOperator converts an operators row to a domain Operator
func ToDomainOperator(m models.Operator) domain.Operator {
	return domain.Operator{
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.OperatorRole(m.Role),
	}
}

// ToModelOperator converts a domain Operator to an operators row
func ToModelOperator(op domain.Operator) models.Operator {
	return models.Operator{
		Username:     op.Username,
		PasswordHash: op.PasswordHash,
		Role:         string(op.Role),
	}
}
