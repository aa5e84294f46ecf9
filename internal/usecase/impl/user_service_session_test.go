package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_RefreshSession_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", FullName: "Alice Example"}

	fx.tokenService.EXPECT().
		ParseRefreshToken("refresh-old").
		Return(&service.RefreshClaims{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		IssuePair(userID, "alice", "Alice Example").
		Return(&service.TokenPair{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil)
	fx.userRepo.EXPECT().
		RotateRefreshToken(ctx, userID, "refresh-old", "refresh-new").
		Return(nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(testAccessTTL)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(testRefreshTTL)

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-old"})

	require.NoError(t, err)
	assert.Equal(t, "access-new", output.AccessToken)
	assert.Equal(t, "refresh-new", output.RefreshToken)
}

func TestUserService_RefreshSession_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		ParseRefreshToken("garbage").
		Return(nil, errors.New("token signature is invalid"))

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestUserService_RefreshSession_UnknownSubject(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ParseRefreshToken("refresh-old").
		Return(&service.RefreshClaims{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-old"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

// A refresh token that no longer matches the stored one (already rotated,
// revoked, or never issued) is rejected as reuse.
func TestUserService_RefreshSession_Replay(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	fx.tokenService.EXPECT().
		ParseRefreshToken("refresh-stale").
		Return(&service.RefreshClaims{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		IssuePair(userID, "alice", "").
		Return(&service.TokenPair{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil)
	fx.userRepo.EXPECT().
		RotateRefreshToken(ctx, userID, "refresh-stale", "refresh-new").
		Return(repository.ErrRefreshTokenMismatch)

	output, err := fx.service.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-stale"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().ClearRefreshToken(ctx, userID).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, userID))
}

// rotationTestUserRepo is an in-memory user store whose refresh token swap is
// a compare-and-set under a mutex, mirroring the conditional UPDATE the real
// repository issues. Methods outside the session lifecycle are inherited from
// the embedded nil interface and panic if reached.
type rotationTestUserRepo struct {
	repository.UserRepository

	mu    sync.Mutex
	user  entity.User
	token string
}

func (r *rotationTestUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != r.user.ID {
		return nil, repository.ErrUserNotFound
	}
	user := r.user

	return &user, nil
}

func (r *rotationTestUserRepo) StoreRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token = token

	return nil
}

func (r *rotationTestUserRepo) ClearRefreshToken(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token = ""

	return nil
}

func (r *rotationTestUserRepo) RotateRefreshToken(_ context.Context, id uuid.UUID, oldToken, newToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.token != oldToken {
		return repository.ErrRefreshTokenMismatch
	}
	r.token = newToken

	return nil
}

func (r *rotationTestUserRepo) storedToken() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.token
}

// createRotationTestService wires the user service against the CAS-backed
// fake repo and a token service that mints unique tokens per call.
func createRotationTestService(t *testing.T, repo *rotationTestUserRepo) usecase.UserUsecase {
	tokenService := mockSvc.NewMockTokenService(t)

	var counter atomic.Int64
	tokenService.EXPECT().
		ParseRefreshToken(mock.AnythingOfType("string")).
		RunAndReturn(func(token string) (*service.RefreshClaims, error) {
			return &service.RefreshClaims{UserID: repo.user.ID}, nil
		}).
		Maybe()
	tokenService.EXPECT().
		IssuePair(repo.user.ID, repo.user.Username, repo.user.FullName).
		RunAndReturn(func(userID uuid.UUID, username, fullName string) (*service.TokenPair, error) {
			n := counter.Add(1)

			return &service.TokenPair{
				AccessToken:  fmt.Sprintf("access-%d", n),
				RefreshToken: fmt.Sprintf("refresh-%d", n),
			}, nil
		}).
		Maybe()
	tokenService.EXPECT().AccessTokenDuration().Return(testAccessTTL).Maybe()
	tokenService.EXPECT().RefreshTokenDuration().Return(testRefreshTTL).Maybe()

	return NewUserService(UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     repo,
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: tokenService,
		MediaStore:   mockSvc.NewMockMediaStore(t),
		QRService:    mockSvc.NewMockQRCodeService(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
}

// A rotated-out token must not be accepted a second time.
func TestUserService_RefreshSession_SingleUse(t *testing.T) {
	repo := &rotationTestUserRepo{
		user:  entity.User{ID: uuid.New(), Username: "alice"},
		token: "refresh-initial",
	}
	svc := createRotationTestService(t, repo)
	ctx := context.Background()

	first, err := svc.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-initial"})
	require.NoError(t, err)
	assert.Equal(t, first.RefreshToken, repo.storedToken())

	_, err = svc.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-initial"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))

	// The replacement token still works.
	second, err := svc.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, second.RefreshToken, repo.storedToken())
}

// Concurrent rotations presenting the same token: exactly one wins, every
// loser sees the reuse error, and the stored token is the winner's.
func TestUserService_RefreshSession_ConcurrentRotation(t *testing.T) {
	repo := &rotationTestUserRepo{
		user:  entity.User{ID: uuid.New(), Username: "alice"},
		token: "refresh-initial",
	}
	svc := createRotationTestService(t, repo)
	ctx := context.Background()

	const attempts = 16

	var wg sync.WaitGroup
	outputs := make([]*usecase.RefreshSessionOutput, attempts)
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = svc.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-initial"})
		}(i)
	}
	wg.Wait()

	var winners int
	var winnerToken string
	for i := 0; i < attempts; i++ {
		if errs[i] == nil {
			winners++
			winnerToken = outputs[i].RefreshToken

			continue
		}
		assert.True(t, errors.Is(errs[i], domainerrors.ErrRefreshTokenReused))
	}

	require.Equal(t, 1, winners)
	assert.Equal(t, winnerToken, repo.storedToken())
}

// Logout revokes the stored token, so a refresh with the pre-logout token is
// rejected as reuse.
func TestUserService_Logout_RevokesRefresh(t *testing.T) {
	repo := &rotationTestUserRepo{
		user:  entity.User{ID: uuid.New(), Username: "alice"},
		token: "refresh-initial",
	}
	svc := createRotationTestService(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, repo.user.ID))
	assert.Empty(t, repo.storedToken())

	_, err := svc.RefreshSession(ctx, &usecase.RefreshSessionInput{RefreshToken: "refresh-initial"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))

	// Logout is idempotent.
	require.NoError(t, svc.Logout(ctx, repo.user.ID))
}
