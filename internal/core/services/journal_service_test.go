package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/core/services"
	"github.com/meridianpress/ledger/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, from, to domain.EntryStatus, voidReason string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, entryID, from, to, voidReason, updatedBy, now)
	return args.Error(0)
}

func (m *MockJournalRepository) VoidWithReversal(ctx context.Context, originalEntryID string, voidReason string, reversal domain.JournalEntry, reversalLines []domain.JournalLine) error {
	args := m.Called(ctx, originalEntryID, voidReason, reversal, reversalLines)
	return args.Error(0)
}

// --- Mock AccountService (as used by JournalService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, companyID string, accountID string, actor domain.Actor) error {
	args := m.Called(ctx, companyID, accountID, actor)
	return args.Error(0)
}

// --- Mock TransitionPublisher ---
type MockTransitionPublisher struct {
	mock.Mock
}

var _ portssvc.TransitionPublisher = (*MockTransitionPublisher)(nil)

func (m *MockTransitionPublisher) PublishTransition(ctx context.Context, event domain.TransitionEvent) {
	m.Called(ctx, event)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	mockPublisher   *MockTransitionPublisher
	service         portssvc.JournalSvcFacade
	companyID       string
	actor           domain.Actor
	cashAccount     domain.Account
	revenueAccount  domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockPublisher = new(MockTransitionPublisher)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, suite.mockPublisher)

	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{
		UserID:    uuid.NewString(),
		CompanyID: suite.companyID,
		Role:      domain.RoleMember,
	}

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Cash",
		AccountType: domain.Asset,
		NormalSide:  domain.DebitSide,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Tuition income",
		AccountType: domain.Revenue,
		NormalSide:  domain.CreditSide,
		IsActive:    true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		EntryDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Memo:      "June tuition receipts",
		Lines: []dto.CreateLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(1000)},
			{AccountID: suite.revenueAccount.AccountID, CreditAmount: decimal.NewFromInt(1000)},
		},
	}
}

func (suite *JournalServiceTestSuite) accountsMap() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
}

func (suite *JournalServiceTestSuite) draftEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.companyID,
		EntryDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Memo:      "June tuition receipts",
		Status:    domain.Draft,
	}
}

func (suite *JournalServiceTestSuite) balancedLines(entryID string) []domain.JournalLine {
	return []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(1000), CreditAmount: decimal.Zero, LineOrdinal: 1},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.revenueAccount.AccountID, DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(1000), LineOrdinal: 2},
	}
}

// --- CreateDraftEntry ---

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).Return(suite.accountsMap(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.companyID, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal(suite.companyID, entry.CompanyID)
	suite.Equal(suite.actor.UserID, entry.CreatedBy)
	suite.Len(entry.Lines, 2)
	suite.Equal(1, entry.Lines[0].LineOrdinal)
	suite.Equal(2, entry.Lines[1].LineOrdinal)

	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_UnbalancedAllowed() {
	// Drafts can be unbalanced; only posting enforces the invariant.
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		EntryDate: time.Now(),
		Memo:      "single sided draft",
		Lines: []dto.CreateLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(500)},
		},
	}

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, []string{suite.cashAccount.AccountID}).
		Return(map[string]domain.Account{suite.cashAccount.AccountID: suite.cashAccount}, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.companyID, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, entry.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_NoLines() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{EntryDate: time.Now(), Memo: "empty"}

	_, err := suite.service.CreateDraftEntry(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_TwoSidedLineRejected() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		EntryDate: time.Now(),
		Memo:      "bad line",
		Lines: []dto.CreateLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(10), CreditAmount: decimal.NewFromInt(10)},
		},
	}

	_, err := suite.service.CreateDraftEntry(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.cashAccount
	inactive.IsActive = false
	req := dto.CreateEntryRequest{
		EntryDate: time.Now(),
		Memo:      "uses closed account",
		Lines: []dto.CreateLineRequest{
			{AccountID: inactive.AccountID, DebitAmount: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, []string{inactive.AccountID}).
		Return(map[string]domain.Account{inactive.AccountID: inactive}, nil).Once()

	_, err := suite.service.CreateDraftEntry(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_UnknownAccount() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		EntryDate: time.Now(),
		Memo:      "missing account",
		Lines: []dto.CreateLineRequest{
			{AccountID: "no-such-account", DebitAmount: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, []string{"no-such-account"}).
		Return(map[string]domain.Account{}, nil).Once()

	_, err := suite.service.CreateDraftEntry(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_ActorCompanyMismatch() {
	ctx := context.Background()
	outsider := domain.Actor{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: domain.RoleAdmin}

	_, err := suite.service.CreateDraftEntry(ctx, suite.companyID, suite.balancedRequest(), outsider)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- PostEntry ---

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	entry := suite.draftEntry()
	lines := suite.balancedLines(entry.EntryID)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.Draft, domain.Posted, "", suite.actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPublisher.On("PublishTransition", ctx, mock.MatchedBy(func(e domain.TransitionEvent) bool {
		return e.EntryID == entry.EntryID && e.FromStatus == domain.Draft && e.ToStatus == domain.Posted
	})).Once()

	posted, err := suite.service.PostEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal(suite.actor.UserID, posted.LastUpdatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_Unbalanced() {
	ctx := context.Background()
	entry := suite.draftEntry()
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entry.EntryID, AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(1000), CreditAmount: decimal.Zero, LineOrdinal: 1},
		{LineID: uuid.NewString(), EntryID: entry.EntryID, AccountID: suite.revenueAccount.AccountID, DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(999), LineOrdinal: 2},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus")
}

func (suite *JournalServiceTestSuite) TestPostEntry_AlreadyPosted() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Posted

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *JournalServiceTestSuite) TestPostEntry_LostRaceSurfacesInvalidTransition() {
	// The repository enforces the DRAFT precondition; when a concurrent post
	// wins, the second caller gets ErrInvalidTransition back.
	ctx := context.Background()
	entry := suite.draftEntry()
	lines := suite.balancedLines(entry.EntryID)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.Draft, domain.Posted, "", suite.actor.UserID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrInvalidTransition).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishTransition")
}

func (suite *JournalServiceTestSuite) TestPostEntry_CrossCompanyHidden() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.CompanyID = uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	actor := suite.actor
	_, err := suite.service.PostEntry(ctx, suite.companyID, entry.EntryID, actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ReconcileEntry ---

func (suite *JournalServiceTestSuite) TestReconcileEntry_Success() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Posted

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.Posted, domain.Reconciled, "", suite.actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPublisher.On("PublishTransition", ctx, mock.MatchedBy(func(e domain.TransitionEvent) bool {
		return e.ToStatus == domain.Reconciled
	})).Once()

	reconciled, err := suite.service.ReconcileEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Reconciled, reconciled.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReconcileEntry_DraftRejected() {
	ctx := context.Background()
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ReconcileEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *JournalServiceTestSuite) TestReconcileEntry_AlreadyReconciled() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Reconciled

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ReconcileEntry(ctx, suite.companyID, entry.EntryID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

// --- VoidEntry ---

func (suite *JournalServiceTestSuite) TestVoidEntry_Draft() {
	ctx := context.Background()
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.Draft, domain.Void, "duplicate entry", suite.actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPublisher.On("PublishTransition", ctx, mock.MatchedBy(func(e domain.TransitionEvent) bool {
		return e.FromStatus == domain.Draft && e.ToStatus == domain.Void
	})).Once()

	voided, err := suite.service.VoidEntry(ctx, suite.companyID, entry.EntryID, "duplicate entry", suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.Equal("duplicate entry", voided.VoidReason)
	suite.Nil(voided.ReversedByEntryID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "VoidWithReversal")
}

func (suite *JournalServiceTestSuite) TestVoidEntry_PostedCreatesMirroredReversal() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Posted
	lines := suite.balancedLines(entry.EntryID)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()

	var capturedReversal domain.JournalEntry
	var capturedLines []domain.JournalLine
	suite.mockJournalRepo.On("VoidWithReversal", ctx, entry.EntryID, "booked twice", mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			capturedReversal = args.Get(3).(domain.JournalEntry)
			capturedLines = args.Get(4).([]domain.JournalLine)
		}).Return(nil).Once()
	suite.mockPublisher.On("PublishTransition", ctx, mock.MatchedBy(func(e domain.TransitionEvent) bool {
		return e.FromStatus == domain.Posted && e.ToStatus == domain.Void
	})).Once()

	voided, err := suite.service.VoidEntry(ctx, suite.companyID, entry.EntryID, "booked twice", suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.Require().NotNil(voided.ReversedByEntryID)
	suite.Equal(capturedReversal.EntryID, *voided.ReversedByEntryID)

	// The reversal mirrors the original's lines with sides swapped.
	suite.Require().NotNil(capturedReversal.ReversalOfEntryID)
	suite.Equal(entry.EntryID, *capturedReversal.ReversalOfEntryID)
	suite.Equal("Reversal of: "+entry.Memo, capturedReversal.Memo)
	suite.Require().Len(capturedLines, len(lines))
	for i, rev := range capturedLines {
		suite.True(rev.DebitAmount.Equal(lines[i].CreditAmount), "line %d debit should equal original credit", i)
		suite.True(rev.CreditAmount.Equal(lines[i].DebitAmount), "line %d credit should equal original debit", i)
		suite.Equal(lines[i].AccountID, rev.AccountID)
		suite.Equal(lines[i].LineOrdinal, rev.LineOrdinal)
	}

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestVoidEntry_ReasonRequired() {
	ctx := context.Background()

	_, err := suite.service.VoidEntry(ctx, suite.companyID, uuid.NewString(), "", suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindEntryByID")
}

func (suite *JournalServiceTestSuite) TestVoidEntry_ReconciledRejected() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Reconciled

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.VoidEntry(ctx, suite.companyID, entry.EntryID, "late regret", suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

// --- GetEntryByID / ListEntries ---

func (suite *JournalServiceTestSuite) TestGetEntryByID_IncludesLines() {
	ctx := context.Background()
	entry := suite.draftEntry()
	lines := suite.balancedLines(entry.EntryID)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()

	got, err := suite.service.GetEntryByID(ctx, suite.companyID, entry.EntryID)

	suite.Require().NoError(err)
	suite.Len(got.Lines, 2)
}

func (suite *JournalServiceTestSuite) TestListEntries_DefaultLimitAndToken() {
	ctx := context.Background()
	entries := []domain.JournalEntry{*suite.draftEntry(), *suite.draftEntry()}

	suite.mockJournalRepo.On("ListEntriesByCompany", ctx, suite.companyID, 20, (*string)(nil)).Return(entries, "next-page", nil).Once()

	page, err := suite.service.ListEntries(ctx, suite.companyID, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Len(page.Entries, 2)
	suite.Require().NotNil(page.NextToken)
	suite.Equal("next-page", *page.NextToken)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
