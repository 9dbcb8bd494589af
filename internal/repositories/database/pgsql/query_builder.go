package pgsql

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
)

// listQuery accumulates WHERE conditions and their positional arguments.
type listQuery struct {
	conds []string
	args  []any
}

// arg binds v and returns its placeholder.
func (q *listQuery) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *listQuery) where(cond string) {
	q.conds = append(q.conds, cond)
}

// timeRange restricts col to [from, to); zero bounds are open.
func (q *listQuery) timeRange(col string, from, to time.Time) {
	if !from.IsZero() {
		q.where(col + " >= " + q.arg(from))
	}
	if !to.IsZero() {
		q.where(col + " < " + q.arg(to))
	}
}

// before continues a newest-first listing after cursor. IDs are UUIDs, whose
// ordering matches the lowercase string form used in tokens.
func (q *listQuery) before(tsCol, idCol string, cursor *domain.TimelineCursor) {
	if cursor == nil {
		return
	}
	q.where("(" + tsCol + ", " + idCol + ") < (" + q.arg(cursor.Timestamp) + ", " + q.arg(cursor.ID) + "::uuid)")
}

// build assembles the statement.
func (q *listQuery) build(selectFrom, orderBy string, limit int) string {
	var sb strings.Builder
	sb.WriteString(selectFrom)
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(joinConds(q.conds))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	if limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(q.arg(limit))
	}
	sb.WriteString(";")
	return sb.String()
}

func joinConds(conds []string) string {
	return strings.Join(conds, " AND ")
}
