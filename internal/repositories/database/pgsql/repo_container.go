package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianpress/ledger/internal/core/services"
)

// NewRepositoryProvider wires every pgsql repository against one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) services.RepositoryProvider {
	return services.RepositoryProvider{
		Company:   newPgxCompanyRepository(pool),
		Account:   newPgxAccountRepository(pool),
		Journal:   newPgxJournalRepository(pool),
		Ledger:    newLedgerRepository(pool),
		Reporting: newReportingRepository(pool),
	}
}
