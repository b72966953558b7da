package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/common/security"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

type UserUpdateRequest struct {
	Email    *string     `json:"email"`
	Role     *model.Role `json:"role"`
	IsActive *bool       `json:"is_active"`
}

// Register creates a panel user. The admin-only gate lives on the route.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", common.ErrValidation)
	}
	if req.Role == "" {
		req.Role = model.RoleEditor
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, common.ErrValidation)
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("username or email already exists: %w", common.ErrConflict)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           req.Role,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is disabled: %w", common.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = ""
	return &LoginResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}

type InitAdminResult struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// InitAdmin bootstraps the very first admin account. Permitted only while
// the user collection is empty.
func (s *AuthService) InitAdmin(ctx context.Context) (*InitAdminResult, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("admin already exists: %w", common.ErrConflict)
	}

	hashedPassword, err := security.HashPassword("admin123")
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	admin := &model.User{
		ID:             uuid.NewString(),
		Username:       "admin",
		Email:          "admin@calius.digital",
		HashedPassword: hashedPassword,
		Role:           model.RoleAdmin,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &InitAdminResult{Username: "admin", Password: "admin123"}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

func (s *AuthService) UpdateUser(ctx context.Context, id string, req UserUpdateRequest) error {
	fields := bson.M{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return fmt.Errorf("unknown role %q: %w", *req.Role, common.ErrValidation)
		}
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return fmt.Errorf("no data to update: %w", common.ErrBadRequest)
	}
	return s.userRepo.Update(ctx, id, fields)
}

// DeleteUser removes a user. Self-deletion is rejected so an admin cannot
// lock themselves out; the actor id comes from their own token, so no
// cross-request locking is needed.
func (s *AuthService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return fmt.Errorf("cannot delete yourself: %w", common.ErrBadRequest)
	}
	return s.userRepo.Delete(ctx, targetID)
}
