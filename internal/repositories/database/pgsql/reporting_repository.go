package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
)

// reportingRepository aggregates posted activity for report generation.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountActivity aggregates POSTED/RECONCILED debit and credit totals per
// account for a company within an inclusive date window.
func (r *reportingRepository) GetAccountActivity(ctx context.Context, companyID string, from, to *time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT
			a.account_id,
			a.name,
			a.account_type,
			SUM(l.debit_amount) AS total_debit,
			SUM(l.credit_amount) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.company_id = $1
		  AND e.status IN ('POSTED', 'RECONCILED')
	`
	args := []interface{}{companyID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND e.entry_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND e.entry_date <= $%d`, len(args))
	}
	query += ` GROUP BY a.account_id, a.name, a.account_type ORDER BY a.name ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account activity: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountActivity
	for rows.Next() {
		var act domain.AccountActivity
		var accountType string
		if err := rows.Scan(
			&act.AccountID,
			&act.Name,
			&accountType,
			&act.DebitTotal,
			&act.CreditTotal,
		); err != nil {
			return nil, fmt.Errorf("error scanning account activity row: %w", err)
		}
		act.AccountType = domain.AccountType(accountType)
		result = append(result, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.AccountActivity{}, nil
	}
	return result, nil
}
