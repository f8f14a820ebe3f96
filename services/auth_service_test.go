package services

import (
	"context"
	"testing"

	"randevu.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T, password string, active bool) (*AuthService, *models.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{}
	user := &models.User{
		Name:         "Sistem Yöneticisi",
		Email:        "admin@randevu.link",
		PasswordHash: string(hash),
		Active:       active,
		IsSystem:     true,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return &AuthService{repo: repo}, user
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, user := newAuthFixture(t, "gizli-sifre", true)

	got, err := svc.Authenticate(context.Background(), user.Email, "gizli-sifre")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, got.IsSystem)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, user := newAuthFixture(t, "gizli-sifre", true)

	_, err := svc.Authenticate(context.Background(), user.Email, "yanlis")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, "gizli-sifre", true)

	// Bilinmeyen e-posta ile yanlış şifre aynı hatayı üretir.
	_, err := svc.Authenticate(context.Background(), "yok@randevu.link", "gizli-sifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestAuthenticateEmptyInput(t *testing.T) {
	svc, user := newAuthFixture(t, "gizli-sifre", true)

	_, err := svc.Authenticate(context.Background(), "", "gizli-sifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), user.Email, "")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	svc, user := newAuthFixture(t, "gizli-sifre", false)

	_, err := svc.Authenticate(context.Background(), user.Email, "gizli-sifre")
	assert.ErrorIs(t, err, ErrAuthUserInactive)
}

func TestUpdatePassword(t *testing.T) {
	svc, user := newAuthFixture(t, "eski-sifre", true)
	ctx := context.Background()

	err := svc.UpdatePassword(ctx, user.ID, "eski-sifre", "yeni-sifre")
	require.NoError(t, err)

	// Eski şifre artık geçersiz, yenisi çalışıyor.
	_, err = svc.Authenticate(ctx, user.Email, "eski-sifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Authenticate(ctx, user.Email, "yeni-sifre")
	assert.NoError(t, err)
}

func TestUpdatePasswordTooShort(t *testing.T) {
	svc, user := newAuthFixture(t, "eski-sifre", true)

	err := svc.UpdatePassword(context.Background(), user.ID, "eski-sifre", "kisa")
	assert.ErrorIs(t, err, ErrAuthPasswordTooShort)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	svc, user := newAuthFixture(t, "eski-sifre", true)

	err := svc.UpdatePassword(context.Background(), user.ID, "yanlis", "yeni-sifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t, "eski-sifre", true)

	err := svc.UpdatePassword(context.Background(), 999, "eski-sifre", "yeni-sifre")
	assert.ErrorIs(t, err, ErrAuthUserNotFound)
}
