package service

import (
	"context"
	"testing"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/common/security"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, fields bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	if email, ok := fields["email"].(string); ok {
		u.Email = email
	}
	if role, ok := fields["role"].(model.Role); ok {
		u.Role = role
	}
	if active, ok := fields["is_active"].(bool); ok {
		u.IsActive = active
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tm := security.NewTokenManager([]byte("test-signing-key"), time.Hour)
	return NewAuthService(repo, tm), repo
}

func TestInitAdminBootstrapsOnce(t *testing.T) {
	svc, repo := newTestAuthService()

	result, err := svc.InitAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.Len(t, repo.users, 1)

	_, err = svc.InitAdmin(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Len(t, repo.users, 1)
}

func TestLoginAfterInitAdmin(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.InitAdmin(context.Background())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.Empty(t, resp.User.HashedPassword)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.InitAdmin(context.Background())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLoginRejectsUnknownUserWithSameError(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, repo := newTestAuthService()
	_, err := svc.InitAdmin(context.Background())
	require.NoError(t, err)
	for _, u := range repo.users {
		u.IsActive = false
	}

	_, err = svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "editor1", Email: "editor1@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Username: "editor1", Email: "other@example.com", Password: "secret",
	})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRegisterDefaultsToEditorRole(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "editor1", Email: "editor1@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, user.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "x", Email: "x@example.com", Password: "secret", Role: "superuser",
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	svc, repo := newTestAuthService()
	_, err := svc.InitAdmin(context.Background())
	require.NoError(t, err)

	var adminID string
	for id := range repo.users {
		adminID = id
	}

	err = svc.DeleteUser(context.Background(), adminID, adminID)
	assert.ErrorIs(t, err, common.ErrBadRequest)
	assert.Len(t, repo.users, 1)
}

func TestUpdateUserRequiresFields(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.UpdateUser(context.Background(), "some-id", UserUpdateRequest{})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}
