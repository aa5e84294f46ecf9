package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "Alice",
		Email:    "alice@example.com",
		FullName: "Alice Example",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, "alice").
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
	assert.Empty(t, output.User.RefreshToken)
}

func TestUserService_RegisterUser_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, "alice").
				Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		FullName:     "Alice Example",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		IssuePair(userID, "alice", "Alice Example").
		Return(&service.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)
	fx.userRepo.EXPECT().StoreRefreshToken(ctx, userID, "refresh-1").Return(nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(testAccessTTL)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(testRefreshTTL)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "alice",
		Password:   "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-1", output.AccessToken)
	assert.Equal(t, "refresh-1", output.RefreshToken)
	assert.Equal(t, testAccessTTL, output.AccessTokenTTL)
	assert.Equal(t, testRefreshTTL, output.RefreshTokenTTL)
	assert.Empty(t, output.User.PasswordHash)
	assert.Empty(t, output.User.RefreshToken)
}

func TestUserService_Login_EmailIdentifier(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		IssuePair(userID, "alice", "").
		Return(&service.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)
	fx.userRepo.EXPECT().StoreRefreshToken(ctx, userID, "refresh-1").Return(nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(testAccessTTL)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(testRefreshTTL)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "alice@example.com",
		Password:   "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "refresh-1", output.RefreshToken)
}

func TestUserService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "ghost",
		Password:   "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "alice",
		Password:   "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// An unknown identifier and a wrong password must be indistinguishable to the
// caller; neither leaks which half of the credential failed.
func TestUserService_Login_UniformFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "wrong"})
	_, badPassErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, badPassErr)

	var unknownApp, badPassApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(badPassErr, &badPassApp))
	assert.Equal(t, unknownApp.HTTPCode(), badPassApp.HTTPCode())
	assert.Equal(t, unknownApp.ErrorCode(), badPassApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), badPassApp.Message())
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "old_hash"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("old-pass", "old_hash").Return(true)
	fx.hasher.EXPECT().Hash("new-pass").Return("new_hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new_hash").Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      userID,
		OldPassword: "old-pass",
		NewPassword: "new-pass",
	})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "old_hash"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "old_hash").Return(false)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      userID,
		OldPassword: "wrong",
		NewPassword: "new-pass",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_GetCurrentUser_Sanitized(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "hashed_password",
		RefreshToken: "refresh-1",
	}, nil)

	user, err := fx.service.GetCurrentUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.Empty(t, user.RefreshToken)
}

func TestUserService_GetChannelQR_UnknownChannel(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	png, err := fx.service.GetChannelQR(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetChannelQR_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)
	fx.qrService.EXPECT().GenerateChannelQR("alice").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.GetChannelQR(ctx, "alice")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
