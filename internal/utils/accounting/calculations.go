package accounting

import (
	"fmt"

	"github.com/meridianpress/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a line amount based on the owning
// account's normal side. This is used by both services and repositories to
// keep the accounting convention in one place.
//
// DEBIT line on a debit-normal account  -> positive
// CREDIT line on a debit-normal account -> negative
// DEBIT line on a credit-normal account -> negative
// CREDIT line on a credit-normal account -> positive
func SignedAmount(line domain.JournalLine, normalSide domain.NormalSide) decimal.Decimal {
	amount := line.Amount()
	if line.Side() != normalSide {
		return amount.Neg()
	}
	return amount
}

// EntryTotals sums the debit and credit sides of an entry's lines.
func EntryTotals(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.DebitAmount)
		credits = credits.Add(line.CreditAmount)
	}
	return debits, credits
}

// ValidateEntryBalance checks the double-entry invariant over an entry's lines:
// at least two lines, every line one-sided and positive, and total debits equal
// total credits.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("entry must have at least two lines")
	}
	for _, line := range lines {
		if !line.Validate() {
			return fmt.Errorf("line %s must have exactly one positive side", line.LineID)
		}
	}
	debits, credits := EntryTotals(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("debits sum is %s and credits sum is %s", debits.String(), credits.String())
	}
	return nil
}
