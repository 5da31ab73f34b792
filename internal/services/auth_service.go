package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
	"github.com/dinakar-24/sse-pay/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetCodeTTL    = 10 * time.Minute
)

type AuthService struct {
	StudentRepo  *repositories.StudentRepository
	AdminRepo    *repositories.AdminRepository
	SessionRepo  *repositories.SessionRepository
	TokenManager *utils.Manager
	RDB          *redis.Client
}

// SessionMeta carries the request metadata recorded against a session.
type SessionMeta struct {
	DeviceInfo string
	IPAddress  string
	UserAgent  string
}

func (s *AuthService) SignInStudent(ctx context.Context, req models.SignInRequest, meta SessionMeta) (models.Tokens, string, error) {
	id, hash, err := s.StudentRepo.GetCredentials(ctx, req.RollNo, req.Email)
	if err != nil {
		return models.Tokens{}, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return models.Tokens{}, "", models.ErrInvalidCredentials
	}
	tokens, err := s.issueTokens(ctx, id, models.UserTypeStudent, meta)
	return tokens, id, err
}

func (s *AuthService) SignInAdmin(ctx context.Context, req models.SignInRequest, meta SessionMeta) (models.Tokens, string, error) {
	id, hash, err := s.AdminRepo.GetCredentials(ctx, req.Email)
	if err != nil {
		return models.Tokens{}, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return models.Tokens{}, "", models.ErrInvalidCredentials
	}
	tokens, err := s.issueTokens(ctx, id, models.UserTypeAdmin, meta)
	return tokens, id, err
}

func (s *AuthService) issueTokens(ctx context.Context, userID, userType string, meta SessionMeta) (models.Tokens, error) {
	access, err := s.TokenManager.NewJWT(userID, userType, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session := models.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		UserType:     userType,
		RefreshToken: refresh,
		DeviceInfo:   meta.DeviceInfo,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.SessionRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, *models.Claims, error) {
	session, err := s.SessionRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return "", nil, models.ErrInvalidCredentials
	}
	if session.ExpiresAt.Before(time.Now()) {
		return "", nil, models.ErrInvalidCredentials
	}
	_ = s.SessionRepo.TouchSession(ctx, session.ID)

	access, err := s.TokenManager.NewJWT(session.UserID, session.UserType, accessTokenTTL)
	if err != nil {
		return "", nil, err
	}
	claims := &models.Claims{UserID: session.UserID, UserType: session.UserType}
	return access, claims, nil
}

func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	return s.SessionRepo.DeleteSessionByToken(ctx, refreshToken)
}

func (s *AuthService) GetSessions(ctx context.Context, userID, userType string) ([]models.Session, error) {
	return s.SessionRepo.GetSessionsByUser(ctx, userID, userType)
}

func (s *AuthService) RevokeSession(ctx context.Context, sessionID string) error {
	return s.SessionRepo.DeleteSession(ctx, sessionID)
}

// RequestPasswordReset stores a short-lived numeric code in Redis keyed by
// the student id. Delivery (mail/SMS) is handled outside this service.
func (s *AuthService) RequestPasswordReset(ctx context.Context, rollNo, email string) (string, error) {
	id, _, err := s.StudentRepo.GetCredentials(ctx, rollNo, email)
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.RDB.Set(ctx, resetCodeKey(id), code, resetCodeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, rollNo, email, code, newPassword string) error {
	id, _, err := s.StudentRepo.GetCredentials(ctx, rollNo, email)
	if err != nil {
		return err
	}
	stored, err := s.RDB.Get(ctx, resetCodeKey(id)).Result()
	if err != nil || stored != code {
		return models.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.StudentRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}
	s.RDB.Del(ctx, resetCodeKey(id))
	return nil
}

func resetCodeKey(studentID string) string {
	return fmt.Sprintf("resetcode:student:%s", studentID)
}
