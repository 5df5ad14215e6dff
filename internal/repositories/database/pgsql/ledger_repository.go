package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
)

// ledgerRepository serves the read side of the balance engine. It only ever
// sees POSTED and RECONCILED lines; drafts and voided entries are filtered in
// the query, and the snapshot read guarantees an entry's lines are either all
// visible or not at all.
type ledgerRepository struct {
	BaseRepository
}

// newLedgerRepository creates a new ledger query repository.
func newLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &ledgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*ledgerRepository)(nil)

// FindEffectiveLines retrieves an account's POSTED/RECONCILED ledger rows
// ordered by (entry_date, entry_id, line_ordinal) ascending.
func (r *ledgerRepository) FindEffectiveLines(ctx context.Context, companyID string, accountID string, from, to *time.Time) ([]domain.LedgerRow, error) {
	query := `
		SELECT
			l.line_id, l.entry_id, l.account_id, l.debit_amount, l.credit_amount,
			l.line_ordinal, l.description,
			e.entry_date, e.memo, e.status
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.company_id = $1
		  AND l.account_id = $2
		  AND e.status IN ('POSTED', 'RECONCILED')
	`
	args := []interface{}{companyID, accountID}
	if from != nil {
		args = append(args, *from)
		query += ` AND e.entry_date >= $3`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND e.entry_date <= $4`
		} else {
			query += ` AND e.entry_date <= $3`
		}
	}
	query += ` ORDER BY e.entry_date ASC, e.entry_id ASC, l.line_ordinal ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines for account "+accountID, err)
	}
	defer rows.Close()

	var result []domain.LedgerRow
	for rows.Next() {
		var row domain.LedgerRow
		var status string
		if err := rows.Scan(
			&row.Line.LineID,
			&row.Line.EntryID,
			&row.Line.AccountID,
			&row.Line.DebitAmount,
			&row.Line.CreditAmount,
			&row.Line.LineOrdinal,
			&row.Line.Description,
			&row.EntryDate,
			&row.EntryMemo,
			&status,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		row.EntryStatus = domain.EntryStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger rows", err)
	}
	return result, nil
}
