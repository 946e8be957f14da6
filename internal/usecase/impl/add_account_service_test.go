package impl

import (
	"context"
	"testing"

	deliverycontext "signup/internal/delivery/context"
	"signup/internal/domain/entity"
	mockRepo "signup/internal/mocks/repository"
	mockSvc "signup/internal/mocks/service"
	"signup/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addAccountServiceFixtures struct {
	service     usecase.AddAccount
	hasher      *mockSvc.MockPasswordHasher
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAddAccountService(t *testing.T) addAccountServiceFixtures {
	hasher := mockSvc.NewMockPasswordHasher(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewAddAccountService(AddAccountServiceParams{
		Hasher:      hasher,
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return addAccountServiceFixtures{
		service:     service,
		hasher:      hasher,
		accountRepo: accountRepo,
	}
}

func validAddAccountInput() usecase.AddAccountInput {
	return usecase.AddAccountInput{
		Name:     "John Doe",
		Email:    "john@mail.com",
		Password: "123456",
	}
}

func TestAddAccountService_Add_Success(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	input := validAddAccountInput()
	stored := &entity.Account{
		ID:       "abc1",
		Name:     "John Doe",
		Email:    "john@mail.com",
		Password: "hashed_123456",
	}

	fx.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil).Once()
	fx.accountRepo.EXPECT().
		Add(ctx, &entity.Account{
			Name:     "John Doe",
			Email:    "john@mail.com",
			Password: "hashed_123456",
		}).
		Return(stored, nil).
		Once()

	account, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.Same(t, stored, account)
}

func TestAddAccountService_Add_NeverStoresPlaintext(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	fx.accountRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.NotEqual(t, "123456", account.Password)
			assert.Equal(t, "hashed_123456", account.Password)
			assert.Empty(t, account.ID)
		}).
		Return(&entity.Account{ID: "abc1"}, nil)

	_, err := fx.service.Add(ctx, validAddAccountInput())
	require.NoError(t, err)
}

func TestAddAccountService_Add_ReturnsStoreResultVerbatim(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	// The store may normalise fields; whatever it returns goes back unchanged.
	stored := &entity.Account{
		ID:       "64f0c2a1e4b0a1b2c3d4e5f6",
		Name:     "JOHN DOE",
		Email:    "john@mail.com",
		Password: "stored_hash",
	}

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_123456", nil)
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(stored, nil)

	account, err := fx.service.Add(ctx, validAddAccountInput())

	require.NoError(t, err)
	assert.Equal(t, stored, account)
}

func TestAddAccountService_Add_HashError(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	hashErr := errors.New("hasher exploded")

	fx.hasher.EXPECT().Hash("123456").Return("", hashErr)

	account, err := fx.service.Add(ctx, validAddAccountInput())

	assert.Nil(t, account)
	require.Error(t, err)
	assert.ErrorIs(t, err, hashErr)
	assert.Contains(t, err.Error(), "failed to hash password during signup")
	fx.accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddAccountService_Add_StoreError(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	storeErr := errors.New("connection refused")

	fx.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(nil, storeErr)

	account, err := fx.service.Add(ctx, validAddAccountInput())

	assert.Nil(t, account)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "failed to store account")
}

func TestAddAccountService_Add_CancelledContext(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	fx.accountRepo.EXPECT().
		Add(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.Account) (*entity.Account, error) {
			return nil, ctx.Err()
		})

	_, err := fx.service.Add(ctx, validAddAccountInput())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAddAccountService_Add_UsesRequestScopedContext(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	ctx = deliverycontext.WithLogger(ctx, newDiscardLogger())

	fx.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	fx.accountRepo.EXPECT().
		Add(mock.MatchedBy(func(got context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(got) == "req-1"
		}), mock.Anything).
		Return(&entity.Account{ID: "abc1"}, nil)

	account, err := fx.service.Add(ctx, validAddAccountInput())

	require.NoError(t, err)
	assert.Equal(t, "abc1", account.ID)
}

func TestAddAccountService_Add_StoreReturnsNoAccount(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("123456").Return("hashed_123456", nil)
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(nil, nil)

	account, err := fx.service.Add(ctx, validAddAccountInput())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrAccountNotReturned)
}
