package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the known types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalSide is the debit/credit side on which an account type naturally increases.
type NormalSide string

const (
	DebitSide  NormalSide = "DEBIT"
	CreditSide NormalSide = "CREDIT"
)

// NormalSideFor derives the normal side from the account type:
// ASSET/EXPENSE increase on debit, LIABILITY/EQUITY/REVENUE on credit.
func NormalSideFor(t AccountType) NormalSide {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Account represents a financial account in a company's chart of accounts.
// Accounts form a tree via ParentAccountID; the type is immutable once journal
// lines reference the account. Inactive accounts reject new lines but keep
// their historical ones.
type Account struct {
	AccountID       string      `json:"accountID"`
	CompanyID       string      `json:"companyID"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	NormalSide      NormalSide  `json:"normalSide"`
	CurrencyCode    string      `json:"currencyCode"`
	ParentAccountID string      `json:"parentAccountID"` // empty when the account is a root
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}
