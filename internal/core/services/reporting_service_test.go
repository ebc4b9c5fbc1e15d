package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	mockGoalRepo    *MockGoalRepository
	service         portssvc.ReportingSvcFacade
	userID          string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockLedgerRepo, suite.mockGoalRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestGetAccountStats_SplitsAssetsAndLiabilities() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(1000)},
		{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(250)},
		{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(-400)},
		{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.Zero},
	}

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()

	stats, err := suite.service.GetAccountStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(stats.TotalAssets.Equal(decimal.NewFromInt(1250)))
	// Liabilities are reported as a positive magnitude.
	suite.True(stats.TotalLiabilities.Equal(decimal.NewFromInt(400)))
	suite.True(stats.NetWorth.Equal(decimal.NewFromInt(850)))
	suite.Equal(4, stats.AccountCount)
}

func (suite *ReportingServiceTestSuite) TestGetAccountStats_NoAccounts() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return([]domain.Account{}, nil).Once()

	stats, err := suite.service.GetAccountStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(stats.NetWorth.IsZero())
	suite.Equal(0, stats.AccountCount)
}

func (suite *ReportingServiceTestSuite) TestGetTransactionStats_CurrentMonthOnly() {
	ctx := context.Background()
	now := time.Now().UTC()
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(3000), Date: now},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(800), Date: now},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(200), Date: now},
		{Type: domain.TransactionTransfer, Amount: decimal.NewFromInt(5000), Date: now},
	}

	suite.mockLedgerRepo.On("FindTransactionsByDateRange", ctx, suite.userID,
		mock.MatchedBy(func(from time.Time) bool {
			return from.Day() == 1 && from.Month() == now.Month() && from.Hour() == 0
		}),
		mock.MatchedBy(func(to time.Time) bool {
			return to.After(now) || to.Equal(now)
		}),
	).Return(txns, nil).Once()

	stats, err := suite.service.GetTransactionStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(stats.MonthlyIncome.Equal(decimal.NewFromInt(3000)))
	suite.True(stats.MonthlyExpenses.Equal(decimal.NewFromInt(1000)))
	// Transfers move money between own accounts and never count as income or
	// expense.
	suite.True(stats.Savings.Equal(decimal.NewFromInt(2000)))
	suite.Equal(4, stats.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestGetGoalProgress_OnePerGoal() {
	ctx := context.Background()
	goals := []domain.Goal{
		{
			GoalID:        uuid.NewString(),
			UserID:        suite.userID,
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(250),
			Status:        domain.GoalStatusActive,
		},
		{
			GoalID:        uuid.NewString(),
			UserID:        suite.userID,
			Name:          "Vacation",
			TargetAmount:  decimal.NewFromInt(2000),
			CurrentAmount: decimal.NewFromInt(2000),
			Status:        domain.GoalStatusCompleted,
		},
	}

	suite.mockGoalRepo.On("ListGoalsByUser", ctx, suite.userID).Return(goals, nil).Once()

	progress, err := suite.service.GetGoalProgress(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 2)
	suite.Equal(goals[0].GoalID, progress[0].Goal.GoalID)
	suite.True(progress[0].Percentage.Equal(decimal.NewFromInt(25)))
	suite.True(progress[0].Remaining.Equal(decimal.NewFromInt(750)))
	suite.True(progress[1].Percentage.Equal(decimal.NewFromInt(100)))
	suite.True(progress[1].Remaining.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
