// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface. It owns the credential
// and session lifecycle: registration, login, refresh rotation and logout.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mediaStore   service.MediaStore
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MediaStore   service.MediaStore
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mediaStore:   params.MediaStore,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting user registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Username:     strings.ToLower(input.Username),
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
	}

	// Store optional images before the transaction; on a failed insert the
	// orphaned objects are removed below.
	if input.Avatar != nil {
		url, storeErr := srv.storeUpload(ctx, input.Avatar)
		if storeErr != nil {
			return nil, storeErr
		}
		newUser.Avatar = url
	}
	if input.Cover != nil {
		url, storeErr := srv.storeUpload(ctx, input.Cover)
		if storeErr != nil {
			srv.removeMedia(ctx, newUser.Avatar)

			return nil, storeErr
		}
		newUser.CoverImage = url
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// Uniqueness checks inside the transaction; the unique indexes are
		// the final arbiter under concurrency.
		if _, findErr := userRepo.FindByUsername(ctx, newUser.Username); findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username taken")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username")
		}

		if _, findErr := userRepo.FindByEmail(ctx, newUser.Email); findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email taken")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))
		srv.removeMedia(ctx, newUser.Avatar)
		srv.removeMedia(ctx, newUser.CoverImage)

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser.Sanitized()}, nil
}

// Login orchestrates the user login process. The identifier may be a username
// or an email address; both resolve to the same uniform failure so the
// response never reveals which part of the credential was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login")

	user, err := srv.findByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown identifier")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: bad password", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	pair, err := srv.tokenService.IssuePair(user.ID, user.Username, user.FullName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// The new refresh token unconditionally replaces any previous one; a
	// login on a second device ends the first device's refresh ability.
	if err := srv.userRepo.StoreRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessTokenTTL:  srv.tokenService.AccessTokenDuration(),
		RefreshTokenTTL: srv.tokenService.RefreshTokenDuration(),
		User:            user.Sanitized(),
	}, nil
}

// RefreshSession rotates a presented refresh token for a new pair.
//
// The swap is a single compare-and-set on the stored token, so a token that
// was already rotated out, a token revoked by logout, and a concurrent
// rotation loser all fail identically. A replayed refresh token therefore
// buys an attacker nothing once the legitimate client has rotated.
func (srv *userService) RefreshSession(ctx context.Context, input *usecase.RefreshSessionInput) (*usecase.RefreshSessionOutput, error) {
	srv.log(ctx).Debug("Attempting session refresh")

	// 1. Verify signature and expiry against the refresh secret.
	claims, err := srv.tokenService.ParseRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected: invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "session refresh failed")
	}

	// 2. The subject must still exist.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Refresh rejected: unknown subject")

			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "session refresh failed")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	// 3. Mint the replacement pair before touching storage.
	pair, err := srv.tokenService.IssuePair(user.ID, user.Username, user.FullName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// 4. Atomic swap keyed on the presented token. Exactly one concurrent
	// caller can win this; everyone else sees a mismatch.
	if err := srv.userRepo.RotateRefreshToken(ctx, user.ID, input.RefreshToken, pair.RefreshToken); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenMismatch) {
			srv.log(ctx).Warn("Refresh rejected: token reuse detected", slog.Any("userID", user.ID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenReused, "session refresh failed")
		}

		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	srv.log(ctx).Info("Session refreshed", slog.Any("userID", user.ID))

	return &usecase.RefreshSessionOutput{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessTokenTTL:  srv.tokenService.AccessTokenDuration(),
		RefreshTokenTTL: srv.tokenService.RefreshTokenDuration(),
	}, nil
}

// Logout revokes the user's active refresh token. Outstanding access tokens
// stay valid until expiry; only the refresh ability ends here.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out", slog.Any("userID", userID))

	if err := srv.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear refresh token")
	}

	return nil
}

// ChangePassword verifies the old password before storing a new hash.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected: wrong old password", slog.Any("userID", user.ID))

		return domainerrors.ErrValidationFailed.WrapMessage("old password is incorrect")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// GetCurrentUser loads the authenticated user's sanitized record.
func (srv *userService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user.Sanitized(), nil
}

// UpdateAccount updates full name and email. Empty fields are left unchanged.
func (srv *userService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user")
		}

		if input.FullName != "" {
			user.FullName = input.FullName
		}
		if input.Email != "" {
			user.Email = input.Email
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return updateErr
		}
		updated = user.Sanitized()

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account updated", slog.Any("userID", input.UserID))

	return updated, nil
}

// UpdateAvatar replaces the avatar image and deletes the previous one.
func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file *usecase.FileUpload) (*entity.User, error) {
	return srv.updateImage(ctx, userID, file,
		func(u *entity.User) string { return u.Avatar },
		func(u *entity.User, url string) { u.Avatar = url },
	)
}

// UpdateCoverImage replaces the cover image and deletes the previous one.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, file *usecase.FileUpload) (*entity.User, error) {
	return srv.updateImage(ctx, userID, file,
		func(u *entity.User) string { return u.CoverImage },
		func(u *entity.User, url string) { u.CoverImage = url },
	)
}

func (srv *userService) updateImage(
	ctx context.Context,
	userID uuid.UUID,
	file *usecase.FileUpload,
	get func(*entity.User) string,
	set func(*entity.User, string),
) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	newURL, err := srv.storeUpload(ctx, file)
	if err != nil {
		return nil, err
	}

	oldURL := get(user)
	set(user, newURL)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.removeMedia(ctx, newURL)

		return nil, err
	}

	// Best effort: a leaked old object is preferable to failing the update.
	srv.removeMedia(ctx, oldURL)

	return user.Sanitized(), nil
}

// GetChannelProfile loads the public channel page for a username.
func (srv *userService) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	profile, err := srv.userRepo.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to load channel profile")
	}

	return profile, nil
}

// GetWatchHistory returns the user's watch history, most recent first.
func (srv *userService) GetWatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entity.WatchHistoryEntry, error) {
	entries, err := srv.userRepo.ListWatchHistory(ctx, userID, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	return entries, nil
}

// GetChannelQR renders a share QR code PNG for a channel page.
func (srv *userService) GetChannelQR(ctx context.Context, username string) ([]byte, error) {
	if _, err := srv.userRepo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to load channel")
	}

	png, err := srv.qrService.GenerateChannelQR(username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate channel QR code")
	}

	return png, nil
}

// findByIdentifier resolves a login identifier to a user. Identifiers with an
// "@" are treated as email addresses, anything else as a username.
func (srv *userService) findByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	if strings.Contains(identifier, "@") {
		return srv.userRepo.FindByEmail(ctx, identifier)
	}

	return srv.userRepo.FindByUsername(ctx, identifier)
}

func (srv *userService) storeUpload(ctx context.Context, file *usecase.FileUpload) (string, error) {
	url, err := srv.mediaStore.Store(ctx, file.Filename, file.ContentType, file.Reader)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMediaTooLarge) {
			return "", err
		}

		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	return url, nil
}

func (srv *userService) removeMedia(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := srv.mediaStore.Remove(ctx, url); err != nil {
		srv.log(ctx).Warn("Failed to remove media object", slog.String("url", url), slog.Any("error", err))
	}
}
