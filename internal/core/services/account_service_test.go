package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meridianpress/ledger/internal/apperrors"
	"github.com/meridianpress/ledger/internal/core/domain"
	portsrepo "github.com/meridianpress/ledger/internal/core/ports/repositories"
	portssvc "github.com/meridianpress/ledger/internal/core/ports/services"
	"github.com/meridianpress/ledger/internal/core/services"
	"github.com/meridianpress/ledger/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindActiveSiblingByName(ctx context.Context, companyID string, parentAccountID string, name string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, parentAccountID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasActiveChildren(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	companyID       string
	actor           domain.Actor
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{
		UserID:    uuid.NewString(),
		CompanyID: suite.companyID,
		Role:      domain.RoleMember,
	}
}

func (suite *AccountServiceTestSuite) activeAccount(name string, accountType domain.AccountType) *domain.Account {
	return &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        name,
		AccountType: accountType,
		NormalSide:  domain.NormalSideFor(accountType),
		IsActive:    true,
	}
}

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Cash", AccountType: "ASSET", CurrencyCode: "INR"}

	suite.mockAccountRepo.On("FindActiveSiblingByName", ctx, suite.companyID, "", "Cash").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal(domain.Asset, account.AccountType)
	suite.Equal(domain.DebitSide, account.NormalSide, "normal side is derived from the type")
	suite.True(account.IsActive)
	suite.Equal(suite.actor.UserID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NormalSideDerivation() {
	ctx := context.Background()
	cases := map[string]domain.NormalSide{
		"ASSET":     domain.DebitSide,
		"EXPENSE":   domain.DebitSide,
		"LIABILITY": domain.CreditSide,
		"EQUITY":    domain.CreditSide,
		"REVENUE":   domain.CreditSide,
	}

	for accountType, wantSide := range cases {
		req := dto.CreateAccountRequest{Name: "Acct " + accountType, AccountType: accountType}
		suite.mockAccountRepo.On("FindActiveSiblingByName", ctx, suite.companyID, "", req.Name).Return(nil, apperrors.ErrNotFound).Once()
		suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

		account, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

		suite.Require().NoError(err)
		suite.Equal(wantSide, account.NormalSide, accountType)
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Weird", AccountType: "CONTRA"}

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateSiblingName() {
	ctx := context.Background()
	existing := suite.activeAccount("Cash", domain.Asset)
	req := dto.CreateAccountRequest{Name: "Cash", AccountType: "ASSET"}

	suite.mockAccountRepo.On("FindActiveSiblingByName", ctx, suite.companyID, "", "Cash").Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateName)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentFromOtherCompany() {
	ctx := context.Background()
	foreignParent := suite.activeAccount("Assets", domain.Asset)
	foreignParent.CompanyID = uuid.NewString()
	req := dto.CreateAccountRequest{Name: "Cash", AccountType: "ASSET", ParentAccountID: &foreignParent.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreignParent.AccountID).Return(foreignParent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidParent)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InactiveParent() {
	ctx := context.Background()
	parent := suite.activeAccount("Old assets", domain.Asset)
	parent.IsActive = false
	req := dto.CreateAccountRequest{Name: "Cash", AccountType: "ASSET", ParentAccountID: &parent.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, parent.AccountID).Return(parent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidParent)
}

// --- GetAccountByID ---

func (suite *AccountServiceTestSuite) TestGetAccountByID_CrossCompanyHidden() {
	ctx := context.Background()
	foreign := suite.activeAccount("Cash", domain.Asset)
	foreign.CompanyID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreign.AccountID).Return(foreign, nil).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.companyID, foreign.AccountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound, "other tenants' accounts look nonexistent")
}

// --- UpdateAccount ---

func (suite *AccountServiceTestSuite) TestUpdateAccount_RenameSuccess() {
	ctx := context.Background()
	account := suite.activeAccount("Petty cash", domain.Asset)
	newName := "Cash on hand"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("FindActiveSiblingByName", ctx, suite.companyID, "", newName).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.companyID, account.AccountID, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(suite.actor.UserID, updated.LastUpdatedBy)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SelfParentRejected() {
	ctx := context.Background()
	account := suite.activeAccount("Assets", domain.Asset)
	req := dto.UpdateAccountRequest{ParentAccountID: &account.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil)

	_, err := suite.service.UpdateAccount(ctx, suite.companyID, account.AccountID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidParent)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_CycleRejected() {
	// Reparenting A under its own descendant C must fail: C -> B -> A.
	ctx := context.Background()
	accountA := suite.activeAccount("A", domain.Asset)
	accountB := suite.activeAccount("B", domain.Asset)
	accountB.ParentAccountID = accountA.AccountID
	accountC := suite.activeAccount("C", domain.Asset)
	accountC.ParentAccountID = accountB.AccountID

	req := dto.UpdateAccountRequest{ParentAccountID: &accountC.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountA.AccountID).Return(accountA, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountC.AccountID).Return(accountC, nil)
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountB.AccountID).Return(accountB, nil)

	_, err := suite.service.UpdateAccount(ctx, suite.companyID, accountA.AccountID, req, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidParent)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

// --- DeactivateAccount ---

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	account := suite.activeAccount("Cash", domain.Asset)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("HasActiveChildren", ctx, account.AccountID).Return(false, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, account.AccountID, suite.actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.companyID, account.AccountID, suite.actor)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_ActiveChildrenBlock() {
	ctx := context.Background()
	account := suite.activeAccount("Assets", domain.Asset)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("HasActiveChildren", ctx, account.AccountID).Return(true, nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.companyID, account.AccountID, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrHasChildren)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
