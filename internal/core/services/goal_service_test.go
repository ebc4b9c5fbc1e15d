package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/core/services"
	"github.com/afkcodes/kakeibo/internal/dto"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo    *MockGoalRepository
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.GoalSvcFacade
	userID          string
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockAccountRepo, suite.mockLedgerRepo)
	suite.userID = uuid.NewString()
}

func (suite *GoalServiceTestSuite) expectTx() {
	suite.mockGoalRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockGoalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *GoalServiceTestSuite) activeGoal(goalID string, current, target int64) *domain.Goal {
	return &domain.Goal{
		GoalID:        goalID,
		UserID:        suite.userID,
		Name:          "Emergency Fund",
		Type:          domain.GoalSavings,
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
		Status:        domain.GoalStatusActive,
	}
}

func (suite *GoalServiceTestSuite) activeAccount(accountID string, balance int64) domain.Account {
	return domain.Account{
		AccountID: accountID,
		UserID:    suite.userID,
		Balance:   decimal.NewFromInt(balance),
		IsActive:  true,
	}
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Emergency Fund",
		Type:         domain.GoalSavings,
		TargetAmount: decimal.NewFromInt(1000),
	}

	suite.mockGoalRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.NotEmpty(goal.GoalID)
	suite.Equal(domain.GoalStatusActive, goal.Status)
	suite.True(goal.CurrentAmount.IsZero())
	suite.WithinDuration(time.Now(), goal.CreatedAt, time.Second)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_StartsCompletedWhenFunded() {
	ctx := context.Background()
	current := decimal.NewFromInt(1200)
	req := dto.CreateGoalRequest{
		Name:          "Funded",
		Type:          domain.GoalSavings,
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: &current,
	}

	suite.mockGoalRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.GoalStatusCompleted, goal.Status)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_NonPositiveTargetRejected() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Bad",
		Type:         domain.GoalSavings,
		TargetAmount: decimal.Zero,
	}

	_, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestContributeToGoal_MovesFundsAtomically() {
	ctx := context.Background()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(200), AccountID: accountID}

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).
		Return(suite.activeGoal(goalID, 100, 1000), nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{accountID}).
		Return(map[string]domain.Account{accountID: suite.activeAccount(accountID, 500)}, nil).Once()
	suite.mockLedgerRepo.On("InsertTransactionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TransactionGoalContribution &&
			txn.GoalID != nil && *txn.GoalID == goalID &&
			txn.Description == "Savings: Emergency Fund" &&
			txn.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[accountID].Equal(decimal.NewFromInt(-200))
	}), mock.Anything).Return(nil).Once()
	suite.mockGoalRepo.On("UpdateGoalProgressInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CurrentAmount.Equal(decimal.NewFromInt(300)) && g.Status == domain.GoalStatusActive
	})).Return(nil).Once()
	suite.mockGoalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	goal, txn, err := suite.service.ContributeToGoal(ctx, suite.userID, goalID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.Require().NotNil(txn)
	suite.True(goal.CurrentAmount.Equal(decimal.NewFromInt(300)))
	suite.Equal([]string{"savings", "goal"}, txn.Tags)
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestContributeToGoal_CompletesOnTarget() {
	ctx := context.Background()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(900), AccountID: accountID}

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).
		Return(suite.activeGoal(goalID, 100, 1000), nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{accountID}).
		Return(map[string]domain.Account{accountID: suite.activeAccount(accountID, 1000)}, nil).Once()
	suite.mockLedgerRepo.On("InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockGoalRepo.On("UpdateGoalProgressInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Status == domain.GoalStatusCompleted
	})).Return(nil).Once()
	suite.mockGoalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	goal, _, err := suite.service.ContributeToGoal(ctx, suite.userID, goalID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.GoalStatusCompleted, goal.Status)
}

func (suite *GoalServiceTestSuite) TestContributeToGoal_InsufficientFunds() {
	ctx := context.Background()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(600), AccountID: accountID}

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).
		Return(suite.activeGoal(goalID, 0, 1000), nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{accountID}).
		Return(map[string]domain.Account{accountID: suite.activeAccount(accountID, 500)}, nil).Once()

	_, _, err := suite.service.ContributeToGoal(ctx, suite.userID, goalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestContributeToGoal_CancelledGoalRejected() {
	ctx := context.Background()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(50), AccountID: accountID}

	cancelled := suite.activeGoal(goalID, 0, 1000)
	cancelled.Status = domain.GoalStatusCancelled

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).Return(cancelled, nil).Once()

	_, _, err := suite.service.ContributeToGoal(ctx, suite.userID, goalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoalServiceTestSuite) TestWithdrawFromGoal_MovesFundsBack() {
	ctx := context.Background()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(150), AccountID: accountID}

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).
		Return(suite.activeGoal(goalID, 400, 1000), nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{accountID}).
		Return(map[string]domain.Account{accountID: suite.activeAccount(accountID, 0)}, nil).Once()
	suite.mockLedgerRepo.On("InsertTransactionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TransactionGoalWithdrawal &&
			len(txn.Tags) == 3 && txn.Tags[2] == "withdrawal"
	})).Return(nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[accountID].Equal(decimal.NewFromInt(150))
	}), mock.Anything).Return(nil).Once()
	suite.mockGoalRepo.On("UpdateGoalProgressInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CurrentAmount.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()
	suite.mockGoalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	goal, txn, err := suite.service.WithdrawFromGoal(ctx, suite.userID, goalID, req)

	suite.Require().NoError(err)
	suite.True(goal.CurrentAmount.Equal(decimal.NewFromInt(250)))
	suite.Equal(domain.TransactionGoalWithdrawal, txn.Type)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestWithdrawFromGoal_ExceedsCurrentAmount() {
	ctx := context.Background()
	goalID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(500), AccountID: accountID}

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).
		Return(suite.activeGoal(goalID, 400, 1000), nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{accountID}).
		Return(map[string]domain.Account{accountID: suite.activeAccount(accountID, 0)}, nil).Once()

	_, _, err := suite.service.WithdrawFromGoal(ctx, suite.userID, goalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestMoveGoalFunds_ZeroAmountRejected() {
	ctx := context.Background()
	req := dto.GoalContributionRequest{Amount: decimal.Zero, AccountID: uuid.NewString()}

	_, _, err := suite.service.ContributeToGoal(ctx, suite.userID, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *GoalServiceTestSuite) TestMoveGoalFunds_ForeignGoalNotFound() {
	ctx := context.Background()
	goalID := uuid.NewString()
	req := dto.GoalContributionRequest{Amount: decimal.NewFromInt(50), AccountID: uuid.NewString()}

	foreign := suite.activeGoal(goalID, 0, 1000)
	foreign.UserID = uuid.NewString()

	suite.expectTx()
	suite.mockGoalRepo.On("FindGoalByIDForUpdate", mock.Anything, mock.Anything, goalID).Return(foreign, nil).Once()

	_, _, err := suite.service.ContributeToGoal(ctx, suite.userID, goalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_RecomputesStatus() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := suite.activeGoal(goalID, 900, 1000)

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(goal, nil).Once()

	newCurrent := decimal.NewFromInt(1000)
	suite.mockGoalRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Status == domain.GoalStatusCompleted && g.CurrentAmount.Equal(newCurrent)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateGoal(ctx, suite.userID, goalID, dto.UpdateGoalRequest{CurrentAmount: &newCurrent})

	suite.Require().NoError(err)
	suite.Equal(domain.GoalStatusCompleted, updated.Status)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_CancelledStaysCancelled() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := suite.activeGoal(goalID, 1000, 1000)
	goal.Status = domain.GoalStatusCancelled

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(goal, nil).Once()
	suite.mockGoalRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Status == domain.GoalStatusCancelled
	})).Return(nil).Once()

	name := "Renamed"
	updated, err := suite.service.UpdateGoal(ctx, suite.userID, goalID, dto.UpdateGoalRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal(domain.GoalStatusCancelled, updated.Status)
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_ForeignNotFound() {
	ctx := context.Background()
	goalID := uuid.NewString()
	foreign := suite.activeGoal(goalID, 0, 1000)
	foreign.UserID = uuid.NewString()

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(foreign, nil).Once()

	err := suite.service.DeleteGoal(ctx, suite.userID, goalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "DeleteGoal", mock.Anything, mock.Anything)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
