package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{Username: "alex", Email: "alex@example.com", Password: "secret123"}

	mockRepo.On("GetByUsername", "alex").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("GetByEmail", "alex@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)

	// The stored password must be a bcrypt hash of the original.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "existing-id", Username: "alex"}
	mockRepo.On("GetByUsername", "alex").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Username: "alex", Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "existing-id", Username: "other", Email: "alex@example.com"}
	mockRepo.On("GetByUsername", "alex").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("GetByEmail", "alex@example.com").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Username: "alex", Email: "alex@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "alex", Password: string(hash)}

	// Successful login returns a token that validates.
	mockRepo.On("GetByUsername", "alex").Return(user, nil).Once()
	token, err := service.LoginUser("alex", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "alex", claims["username"])

	// Wrong password is rejected without detail.
	mockRepo.On("GetByUsername", "alex").Return(user, nil).Once()
	_, err = service.LoginUser("alex", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Unknown user gets the same error as a wrong password.
	mockRepo.On("GetByUsername", "ghost").Return(nil, repositories.ErrNotFound).Once()
	_, err = service.LoginUser("ghost", "secret123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with another secret must not validate.
	other := services.NewAuthService(mockRepo, "other_secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-1", Username: "alex", Password: string(hash)}
	mockRepo.On("GetByUsername", "alex").Return(user, nil).Once()
	token, err := other.LoginUser("alex", "secret123")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
