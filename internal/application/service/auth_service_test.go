package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ratnex/ratnex-api/internal/domain/entity"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/ratnex/ratnex-api/pkg/apperror"
	"github.com/ratnex/ratnex-api/pkg/email"
	"github.com/ratnex/ratnex-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthServiceForTest(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()

	// Default role new registrations are assigned to
	clientRole := &entity.Role{
		Name: "client",
		Permissions: []entity.Permission{
			{Name: "use-calculator"},
		},
	}
	require.NoError(t, db.Create(clientRole).Error)

	return NewAuthService(
		infraRepo.NewUserRepository(db),
		infraRepo.NewRoleRepository(db),
		infraRepo.NewPasswordResetTokenRepository(db),
		utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour),
		email.NewEmailService(email.EmailConfig{}),
	)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@shop.test",
		Password:  "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "priya", user.Username)
	assert.NotEqual(t, "s3cret-password", user.Password)

	out, err := svc.Login(ctx, &LoginInput{Email: "priya@shop.test", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	// The default client role came along with its permissions
	assert.True(t, out.User.HasRole("client"))
	assert.True(t, out.User.HasPermission("use-calculator"))
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya", LastName: "Sharma",
		Email: "priya@shop.test", Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{
		FirstName: "Other", LastName: "Person",
		Email: "priya@shop.test", Password: "another-password",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya", LastName: "Sharma",
		Email: "priya@shop.test", Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "priya@shop.test", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	// Unknown emails get the same error so accounts cannot be probed
	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@shop.test", Password: "whatever"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya", LastName: "Sharma",
		Email: "priya@shop.test", Password: "s3cret-password",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, &LoginInput{Email: "priya@shop.test", Password: "s3cret-password"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, out.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(ctx, "garbage-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya", LastName: "Sharma",
		Email: "priya@shop.test", Password: "s3cret-password",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID: user.ID, CurrentPassword: "wrong", NewPassword: "new-password",
	})
	require.Error(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID: user.ID, CurrentPassword: "s3cret-password", NewPassword: "new-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "priya@shop.test", Password: "new-password"})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya", LastName: "Sharma",
		Email: "priya@shop.test", Password: "s3cret-password",
	})
	require.NoError(t, err)

	token := &entity.PasswordResetToken{
		Email:     "priya@shop.test",
		Token:     "valid-reset-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(token).Error)

	err = svc.ResetPassword(ctx, &ResetPasswordInput{
		Email: "priya@shop.test", Token: "valid-reset-token", NewPassword: "reset-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "priya@shop.test", Password: "reset-password"})
	require.NoError(t, err)

	// The token is single use
	err = svc.ResetPassword(ctx, &ResetPasswordInput{
		Email: "priya@shop.test", Token: "valid-reset-token", NewPassword: "again",
	})
	require.Error(t, err)
}

func TestAuthService_ResetPasswordRejectsExpiredToken(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Priya", LastName: "Sharma",
		Email: "priya@shop.test", Password: "s3cret-password",
	})
	require.NoError(t, err)

	token := &entity.PasswordResetToken{
		Email:     "priya@shop.test",
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(token).Error)

	err = svc.ResetPassword(ctx, &ResetPasswordInput{
		Email: "priya@shop.test", Token: "stale-token", NewPassword: "reset-password",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestAuthService_LoginWithGoogleCreatesAccountOnce(t *testing.T) {
	db := setupServiceTest(t)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()
	photo := "https://lh3.example/photo.jpg"

	first, err := svc.LoginWithGoogle(ctx, &GoogleLoginInput{
		Email:     "priya@gmail.test",
		FirstName: "Priya",
		LastName:  "Sharma",
		Photo:     &photo,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.AccessToken)
	require.NotNil(t, first.User.Photo)
	assert.Equal(t, photo, *first.User.Photo)

	second, err := svc.LoginWithGoogle(ctx, &GoogleLoginInput{
		Email:     "priya@gmail.test",
		FirstName: "Priya",
		LastName:  "Sharma",
	})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "priya@gmail.test").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
