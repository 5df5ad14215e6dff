package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft      EntryStatus = "DRAFT"
	Posted     EntryStatus = "POSTED"
	Reconciled EntryStatus = "RECONCILED"
	Void       EntryStatus = "VOID"
)

// allowedTransitions encodes the full entry lifecycle:
// DRAFT -> POSTED -> RECONCILED, DRAFT|POSTED -> VOID.
// RECONCILED and VOID are terminal; status never regresses.
var allowedTransitions = map[EntryStatus][]EntryStatus{
	Draft:  {Posted, Void},
	Posted: {Reconciled, Void},
}

// CanTransitionTo reports whether the status may move to the target status.
func (s EntryStatus) CanTransitionTo(target EntryStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s EntryStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// JournalEntry represents a single financial event composed of debit/credit lines.
// Entries are created in DRAFT (possibly unbalanced, to allow staged
// construction), become POSTED only when their lines balance, and are voided
// rather than deleted. Voiding a posted entry records a mirrored reversal so
// the pair nets to zero on every touched account.
type JournalEntry struct {
	EntryID           string      `json:"entryID"`
	CompanyID         string      `json:"companyID"`
	EntryDate         time.Time   `json:"entryDate"`
	Memo              string      `json:"memo"`
	CurrencyCode      string      `json:"currencyCode"`
	Status            EntryStatus `json:"status"`
	SourceReference   string      `json:"sourceReference"`   // originating transaction, if any
	ReversalOfEntryID *string     `json:"reversalOfEntryID"` // set on reversal entries
	ReversedByEntryID *string     `json:"reversedByEntryID"` // set on the voided original
	VoidReason        string      `json:"voidReason"`
	Lines             []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single debit or credit against one account within an entry.
// Exactly one of DebitAmount/CreditAmount is nonzero and both are non-negative.
// Lines are owned exclusively by their entry and are immutable once the entry
// is posted; corrections require a new offsetting entry.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	LineOrdinal  int             `json:"lineOrdinal"` // position within the entry, for deterministic ledgers
	Description  string          `json:"description"`
	AuditFields
}

// Side returns the side this line sits on.
func (l JournalLine) Side() NormalSide {
	if l.DebitAmount.IsPositive() {
		return DebitSide
	}
	return CreditSide
}

// Amount returns the nonzero amount of the line.
func (l JournalLine) Amount() decimal.Decimal {
	if l.DebitAmount.IsPositive() {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// Validate checks the one-sided, positive-amount line invariant.
func (l JournalLine) Validate() bool {
	if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
		return false
	}
	return l.DebitAmount.IsPositive() != l.CreditAmount.IsPositive()
}

// TransitionEvent is emitted to the audit/notification collaborator on every
// successful status transition. The core does not persist audit history itself.
type TransitionEvent struct {
	EntryID    string      `json:"entryID"`
	CompanyID  string      `json:"companyID"`
	FromStatus EntryStatus `json:"fromStatus"`
	ToStatus   EntryStatus `json:"toStatus"`
	Actor      string      `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
}
