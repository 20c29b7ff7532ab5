package service

import (
	"context"
	"errors"
	"fmt"
	"submission_review/internal/common"
	"submission_review/internal/common/security"
	"submission_review/internal/domain/model"
	"submission_review/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student admin"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MeResponse struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return common.ErrBadRequest
	}
	role := model.Role(req.Role)
	if !role.Valid() {
		return common.Errorf("role must be student or admin: %w", common.ErrBadRequest)
	}

	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return common.ErrDuplicateUser
	} else if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized // Generic message for security
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// GetRole resolves the caller's role from the credential store. An absent
// user yields ErrUnauthorized rather than a lookup failure: the token may
// outlive the account it was issued to.
func (s *AuthService) GetRole(ctx context.Context, username string) (model.Role, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	return user.Role, nil
}

func (s *AuthService) Me(ctx context.Context, username string) (*MeResponse, error) {
	role, err := s.GetRole(ctx, username)
	if err != nil {
		return nil, err
	}
	return &MeResponse{Username: username, Role: role}, nil
}
