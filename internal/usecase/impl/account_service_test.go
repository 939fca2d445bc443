package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	mockRepo "doorman/internal/mocks/repository"
	mockSvc "doorman/internal/mocks/service"
	"doorman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:   &mockRepo.FakeTransactionManager{Repo: accountRepo},
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func validSignupInput() *usecase.SignupInput {
	return &usecase.SignupInput{
		FullName:        "Alice",
		Company:         "Acme",
		Email:           "a@x.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()

	fx.accountRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
}

func TestAccountService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()

	// Existing account found by the pre-check. The hasher mock has no
	// expectations set: any Hash call would fail the test, proving the
	// conflicting request never pays the bcrypt cost.
	fx.accountRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.Account{Email: input.Email}, nil)

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Signup_LostUniquenessRace(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()

	// Pre-check sees no account, but a concurrent signup commits first and
	// the unique index rejects the insert.
	fx.accountRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Signup_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)
	input := validSignupInput()
	input.ConfirmPassword = "Secret2"

	// No repository or hasher expectations: the mismatch must be caught
	// before any store access.
	output, err := fx.service.Signup(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAccountService_Signup_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SignupInput)
	}{
		{"empty full name", func(in *usecase.SignupInput) { in.FullName = "" }},
		{"whitespace email", func(in *usecase.SignupInput) { in.Email = "   " }},
		{"empty password", func(in *usecase.SignupInput) { in.Password = "" }},
		{"empty confirm", func(in *usecase.SignupInput) { in.ConfirmPassword = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			input := validSignupInput()
			tt.mutate(input)

			output, err := fx.service.Signup(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
		})
	}
}

func TestAccountService_Signup_NilInput(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Signup(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestAccountService_Signup_CompanyOptional(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()
	input.Company = ""

	fx.accountRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, output.Account.Company)
}

func TestAccountService_Signup_StoreErrorOnPrecheck(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()

	fx.accountRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "Server error", appErr.Message())
}

func TestAccountService_Signup_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()

	fx.accountRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
}

func TestAccountService_Signup_TrimsProfileFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := validSignupInput()
	input.FullName = "  Alice  "
	input.Email = " a@x.com "

	fx.accountRepo.On("FindByEmail", ctx, "a@x.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Alice", output.Account.FullName)
	assert.Equal(t, "a@x.com", output.Account.Email)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: "stored_hash",
	}

	fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fx.hasher.On("Check", "Secret1", "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "Secret1"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestAccountService_Login_IndistinguishableFailures(t *testing.T) {
	// Unknown email and wrong password must surface the exact same error
	// value, so responses cannot be used to enumerate registered emails.
	ctx := context.Background()

	unknownFx := createTestAccountService(t)
	unknownFx.accountRepo.On("FindByEmail", ctx, "nobody@x.com").
		Return(nil, repository.ErrAccountNotFound)

	_, unknownErr := unknownFx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "x"})

	wrongFx := createTestAccountService(t)
	wrongFx.accountRepo.On("FindByEmail", ctx, "a@x.com").
		Return(&entity.Account{Email: "a@x.com", PasswordHash: "stored_hash"}, nil)
	wrongFx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	_, wrongErr := wrongFx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAccountService_Login_MissingCredentials(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@x.com"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestAccountService_Login_NilInput(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestAccountService_Login_StoreError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "a@x.com").
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "Secret1"})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "Server error", appErr.Message())
}
