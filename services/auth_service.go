package services

import (
	"context"
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceError kimlik doğrulama hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrAuthUserInactive       AuthServiceError = "hesap pasif durumda"
	ErrAuthUserNotFound       AuthServiceError = "kullanıcı bulunamadı"
	ErrAuthPasswordTooShort   AuthServiceError = "şifre en az 6 karakter olmalı"
)

// IAuthService giriş ve şifre işlemleri için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{repo: repositories.NewUserRepository(db)}
}

// Authenticate e-posta + şifre ile kullanıcıyı doğrular.
// Kullanıcı yok ile şifre yanlış ayrımı dışarı sızdırılmaz.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrAuthInvalidCredentials
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthInvalidCredentials
	}
	if !user.Active {
		return nil, ErrAuthUserInactive
	}
	configslog.SLog.Infof("Kullanıcı giriş yaptı: ID %d (%s)", user.ID, user.Email)
	return user, nil
}

// GetUserByID kullanıcıyı ID ile getirir.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdatePassword mevcut şifre doğrulandıktan sonra yeni şifreyi hash'leyip kaydeder.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrAuthPasswordTooShort
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrAuthInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Şifre hash'lenemedi", zap.Uint("userID", userID), zap.Error(err))
		return err
	}
	user.PasswordHash = string(hashed)
	if err := s.repo.Update(models.ContextWithUserID(ctx, userID), user); err != nil {
		configslog.Log.Error("Şifre güncellenemedi", zap.Uint("userID", userID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kullanıcı şifresi güncellendi: ID %d", userID)
	return nil
}

var _ IAuthService = (*AuthService)(nil)
