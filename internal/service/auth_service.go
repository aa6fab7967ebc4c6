package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"careercompass/internal/config"
	"careercompass/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const counselorTokenTTL = 12 * time.Hour

// AuthService issues and checks counselor and student tokens
type AuthService struct {
	counselorUsername string
	counselorPassword string
	jwtSecret         []byte
	studentTTL        time.Duration
	now               func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		counselorUsername: cfg.CounselorUsername,
		counselorPassword: cfg.CounselorPassword,
		jwtSecret:         []byte(cfg.JWTSecret),
		studentTTL:        cfg.StudentTokenTTL,
		now:               time.Now,
	}
}

// Login validates counselor credentials and returns a token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.counselorUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.counselorPassword)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	counselorID := "counselor_" + uuid.New().String()[:8]
	now := s.now()

	claims := &model.CounselorClaims{
		CounselorID: counselorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(counselorTokenTTL)),
		},
	}

	tokenString, err := s.sign(claims)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:       tokenString,
		CounselorID: counselorID,
	}, nil
}

// ValidateCounselorToken validates a counselor JWT and returns claims
func (s *AuthService) ValidateCounselorToken(tokenString string) (*model.CounselorClaims, error) {
	claims := &model.CounselorClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.CounselorID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateStudentToken creates a session-scoped token for a student
func (s *AuthService) GenerateStudentToken(sessionID, studentID string) (string, error) {
	now := s.now()
	claims := &model.StudentClaims{
		SessionID: sessionID,
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.studentTTL)),
		},
	}
	return s.sign(claims)
}

// ValidateStudentToken validates a student JWT and returns claims
func (s *AuthService) ValidateStudentToken(tokenString string) (*model.StudentClaims, error) {
	claims := &model.StudentClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
