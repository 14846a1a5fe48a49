package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	redisrepo "github.com/muhammadheryan/home-service/repository/redis"
	userrepo "github.com/muhammadheryan/home-service/repository/user"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, principal *model.Principal) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
	CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.UserEntity, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.RedisRepository
}

// tokenClaims adds the caller identity to the registered claims.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.RedisRepository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: strings.ToLower(strings.TrimSpace(req.Email))})
	if err != nil {
		log.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// unknown email and wrong password are indistinguishable
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user)
	if err != nil {
		log.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		log.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, principal *model.Principal) error {
	if principal == nil || principal.SessionID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, principal.SessionID); err != nil {
		logger.FromContext(ctx).Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// a signed token is only usable while its session lives
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	return &model.Principal{
		ID:        userID,
		Email:     claims.Email,
		Role:      claims.Role,
		SessionID: jti,
	}, nil
}

func (s *UserAppImpl) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.UserEntity, error) {
	log := logger.FromContext(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		log.Error("[CreateAdmin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("[CreateAdmin] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         constant.RoleAdmin,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		log.Error("[CreateAdmin] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return user, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
