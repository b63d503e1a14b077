package auth

import (
	"context"
	"testing"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
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

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	users.On("ExistsByEmail", mock.Anything, "Asel@Example.Com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		u.ID = 7
		assert.Equal(t, "asel@example.com", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
	}).Return(nil)
	tokens.On("GenerateToken", int64(7), "asel@example.com").Return("signed-token", nil)

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "Asel@Example.Com",
		Password:  "secret1",
		FirstName: "Asel",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RaceOnUniqueIndex(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("ExistsByEmail", mock.Anything, "race@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "race@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)

	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "asel@example.com").Return(&domain.User{
		ID:           1,
		Email:        "asel@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, _, errUnknown := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	_, _, errWrongPw := svc.Login(context.Background(), LoginRequest{Email: "asel@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw, "both failures must be indistinguishable")
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)

	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "asel@example.com").Return(&domain.User{
		ID:           3,
		Email:        "asel@example.com",
		PasswordHash: string(hash),
	}, nil)
	tokens.On("GenerateToken", int64(3), "asel@example.com").Return("signed-token", nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{Email: "asel@example.com", Password: "secret1"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Empty(t, user.PasswordHash)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetCurrentUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:        5,
		Email:     "asel@example.com",
		FirstName: "Asel",
		LastName:  "M",
		Phone:     "+7 700 000 0000",
	}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.UpdateProfile(context.Background(), 5, UpdateProfileRequest{Phone: "+91 98100 12345"})

	assert.NoError(t, err)
	assert.Equal(t, "+91 98100 12345", user.Phone)
	assert.Equal(t, "Asel", user.FirstName)
	assert.Equal(t, "M", user.LastName)
}
