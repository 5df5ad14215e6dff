package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/meridianpress/ledger/internal/core/domain"
)

func TestEntryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.EntryStatus
		to   domain.EntryStatus
		want bool
	}{
		{"draft to posted", domain.Draft, domain.Posted, true},
		{"draft to void", domain.Draft, domain.Void, true},
		{"draft to reconciled", domain.Draft, domain.Reconciled, false},
		{"posted to reconciled", domain.Posted, domain.Reconciled, true},
		{"posted to void", domain.Posted, domain.Void, true},
		{"posted to draft", domain.Posted, domain.Draft, false},
		{"posted to posted", domain.Posted, domain.Posted, false},
		{"reconciled to void", domain.Reconciled, domain.Void, false},
		{"reconciled to posted", domain.Reconciled, domain.Posted, false},
		{"void to posted", domain.Void, domain.Posted, false},
		{"void to draft", domain.Void, domain.Draft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEntryStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.Draft.IsTerminal())
	assert.False(t, domain.Posted.IsTerminal())
	assert.True(t, domain.Reconciled.IsTerminal())
	assert.True(t, domain.Void.IsTerminal())
}

func TestJournalLine_Validate(t *testing.T) {
	tests := []struct {
		name string
		line domain.JournalLine
		want bool
	}{
		{
			name: "debit line",
			line: domain.JournalLine{DebitAmount: decimal.NewFromInt(100), CreditAmount: decimal.Zero},
			want: true,
		},
		{
			name: "credit line",
			line: domain.JournalLine{DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(100)},
			want: true,
		},
		{
			name: "both sides positive",
			line: domain.JournalLine{DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.NewFromInt(50)},
			want: false,
		},
		{
			name: "both sides zero",
			line: domain.JournalLine{DebitAmount: decimal.Zero, CreditAmount: decimal.Zero},
			want: false,
		},
		{
			name: "negative debit",
			line: domain.JournalLine{DebitAmount: decimal.NewFromInt(-10), CreditAmount: decimal.Zero},
			want: false,
		},
		{
			name: "positive credit with negative debit",
			line: domain.JournalLine{DebitAmount: decimal.NewFromInt(-10), CreditAmount: decimal.NewFromInt(10)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.Validate())
		})
	}
}

func TestJournalLine_SideAndAmount(t *testing.T) {
	debit := domain.JournalLine{DebitAmount: decimal.NewFromInt(75), CreditAmount: decimal.Zero}
	assert.Equal(t, domain.DebitSide, debit.Side())
	assert.True(t, debit.Amount().Equal(decimal.NewFromInt(75)))

	credit := domain.JournalLine{DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(30)}
	assert.Equal(t, domain.CreditSide, credit.Side())
	assert.True(t, credit.Amount().Equal(decimal.NewFromInt(30)))
}

func TestNormalSideFor(t *testing.T) {
	assert.Equal(t, domain.DebitSide, domain.NormalSideFor(domain.Asset))
	assert.Equal(t, domain.DebitSide, domain.NormalSideFor(domain.Expense))
	assert.Equal(t, domain.CreditSide, domain.NormalSideFor(domain.Liability))
	assert.Equal(t, domain.CreditSide, domain.NormalSideFor(domain.Equity))
	assert.Equal(t, domain.CreditSide, domain.NormalSideFor(domain.Revenue))
}

func TestAccountType_IsValid(t *testing.T) {
	for _, valid := range []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense} {
		assert.True(t, valid.IsValid(), string(valid))
	}
	assert.False(t, domain.AccountType("CASH").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}

func TestRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleReadOnly))
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleAdmin))
	assert.True(t, domain.RoleMember.Satisfies(domain.RoleReadOnly))
	assert.False(t, domain.RoleMember.Satisfies(domain.RoleAdmin))
	assert.False(t, domain.RoleReadOnly.Satisfies(domain.RoleMember))
	assert.False(t, domain.Role("").Satisfies(domain.RoleReadOnly))
}
