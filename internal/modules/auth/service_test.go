package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bikerental/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "stub-token", nil
}

func newTestService(users *MockUserRepository) *Service {
	return NewService(users, stubJWT{}, "@kamk.fi")
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "erkki@kamk.fi").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users)

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Erkki",
		Email:    "Erkki@kamk.fi",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "stub-token", token)
	assert.Equal(t, int64(101), user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "erkki@kamk.fi", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
	users.AssertExpectations(t)
}

func TestRegister_WrongDomain(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Outsider",
		Email:    "someone@gmail.com",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrEmailDomain)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Duplicate(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "erkki@kamk.fi").Return(true, nil)

	svc := newTestService(users)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Erkki",
		Email:    "erkki@kamk.fi",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "erkki@kamk.fi").Return(&domain.User{
		ID:           5,
		Email:        "erkki@kamk.fi",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	svc := newTestService(users)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "erkki@kamk.fi",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "stub-token", token)
	assert.Equal(t, int64(5), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "erkki@kamk.fi").Return(&domain.User{
		ID:           5,
		PasswordHash: string(hash),
	}, nil)

	svc := newTestService(users)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "erkki@kamk.fi",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "nobody@kamk.fi").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@kamk.fi",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPromote_DefaultsToAdmin(t *testing.T) {
	users := new(MockUserRepository)
	users.On("UpdateRole", mock.Anything, int64(9), domain.RoleAdmin).Return(nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9, Role: domain.RoleAdmin}, nil)

	svc := newTestService(users)

	user, err := svc.Promote(context.Background(), PromoteRequest{UserID: 9})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	users.AssertExpectations(t)
}

func TestPromote_InvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users)

	_, err := svc.Promote(context.Background(), PromoteRequest{UserID: 9, Role: "superuser"})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestPromote_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("UpdateRole", mock.Anything, int64(404), domain.RoleAdmin).Return(gorm.ErrRecordNotFound)

	svc := newTestService(users)

	_, err := svc.Promote(context.Background(), PromoteRequest{UserID: 404})

	assert.ErrorIs(t, err, ErrUserNotFound)
}
