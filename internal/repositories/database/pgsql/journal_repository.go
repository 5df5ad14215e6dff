package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	"github.com/meridianpress/ledger/internal/models"
	"github.com/meridianpress/ledger/internal/utils/mapping"
	"github.com/meridianpress/ledger/internal/utils/pagination"
)

const entryColumns = `entry_id, company_id, entry_date, memo, currency_code, status, source_reference, reversal_of_entry_id, reversed_by_entry_id, void_reason, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, debit_amount, credit_amount, line_ordinal, description, created_at, created_by, last_updated_at, last_updated_by`

const insertLineQuery = `
	INSERT INTO journal_lines (` + lineColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// PgxJournalRepository persists journal entries and their lines. Every write
// method is a single database transaction: the entry and all its lines change
// together, or nothing changes.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.EntryDate,
		&m.Memo,
		&m.CurrencyCode,
		&m.Status,
		&m.SourceReference,
		&m.ReversalOfEntryID,
		&m.ReversedByEntryID,
		&m.VoidReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanLine(row pgx.Row) (*models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.LineOrdinal,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error {
	m := mapping.ToModelEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.CompanyID,
		m.EntryDate,
		m.Memo,
		m.CurrencyCode,
		m.Status,
		m.SourceReference,
		m.ReversalOfEntryID,
		m.ReversedByEntryID,
		m.VoidReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelLine(line)
		batch.Queue(insertLineQuery,
			lm.LineID,
			lm.EntryID,
			lm.AccountID,
			lm.DebitAmount,
			lm.CreditAmount,
			lm.LineOrdinal,
			lm.Description,
			lm.CreatedAt,
			lm.CreatedBy,
			lm.LastUpdatedAt,
			lm.LastUpdatedBy,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert line for entry "+m.EntryID, err)
		}
	}
	return results.Close()
}

// SaveEntry persists a new entry together with all of its lines.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntryInTx(ctx, tx, entry, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a specific journal entry (without lines).
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query entry "+entryID, err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID retrieves the lines of an entry ordered by line ordinal.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_ordinal ASC;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row", err)
		}
		lines = append(lines, mapping.ToDomainLine(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate line rows", err)
	}
	return lines, nil
}

// ListEntriesByCompany retrieves a token-paginated list of entries for a
// company ordered by (entry_date, created_at) descending.
func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []interface{}{companyID}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE company_id = $1`

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (entry_date, created_at) < ($2, $3)`
		args = append(args, entryDate, createdAt)
	}

	// Fetch one extra row to decide whether another page exists.
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, mapping.ToDomainEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// lockEntryStatus takes the entry row lock and returns the current status.
// Concurrent transitions on the same entry serialize here.
func lockEntryStatus(ctx context.Context, tx pgx.Tx, entryID string) (string, error) {
	var currentStatus string
	err := tx.QueryRow(ctx, `SELECT status FROM journal_entries WHERE entry_id = $1 FOR UPDATE;`, entryID).Scan(&currentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to lock entry "+entryID, err)
	}
	return currentStatus, nil
}

// execStatusUpdate applies a status transition with the expected current
// status as a precondition. A zero row count means the entry left the
// expected status, which surfaces as ErrInvalidTransition rather than a
// silent overwrite.
func execStatusUpdate(ctx context.Context, tx pgx.Tx, entryID string, currentStatus string, from, to domain.EntryStatus, voidReason string, linkReversedBy *string, updatedBy string, now time.Time) error {
	var reason *string
	if voidReason != "" {
		reason = &voidReason
	}
	tag, err := tx.Exec(ctx, `
		UPDATE journal_entries
		SET status = $3,
		    void_reason = COALESCE($4, void_reason),
		    reversed_by_entry_id = COALESCE($5, reversed_by_entry_id),
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE entry_id = $1 AND status = $2;
	`, entryID, string(from), string(to), reason, linkReversedBy, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is %s, expected %s", apperrors.ErrInvalidTransition, entryID, currentStatus, from)
	}
	return nil
}

// UpdateEntryStatus transitions an entry from the expected status to the
// target status inside its own transaction.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, from, to domain.EntryStatus, voidReason string, updatedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	currentStatus, err := lockEntryStatus(ctx, tx, entryID)
	if err != nil {
		return err
	}
	if err := execStatusUpdate(ctx, tx, entryID, currentStatus, from, to, voidReason, nil, updatedBy, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// VoidWithReversal atomically voids a posted entry and persists its mirrored
// reversal entry with all reversal lines, linking the two rows.
func (r *PgxJournalRepository) VoidWithReversal(ctx context.Context, originalEntryID string, voidReason string, reversal domain.JournalEntry, reversalLines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	currentStatus, err := lockEntryStatus(ctx, tx, originalEntryID)
	if err != nil {
		return err
	}
	// The reversal row is inserted before the original's status flips so the
	// reversed_by link can satisfy its foreign key; the surrounding
	// transaction makes the pair visible only as a unit.
	if err := insertEntryInTx(ctx, tx, reversal, reversalLines); err != nil {
		return err
	}
	if err := execStatusUpdate(ctx, tx, originalEntryID, currentStatus, domain.Posted, domain.Void, voidReason, &reversal.EntryID, reversal.LastUpdatedBy, reversal.LastUpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
