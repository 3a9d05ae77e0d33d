package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		login         string
		password      string
		role          string
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expectedRole  string
		expectedError error
	}{
		{
			name:     "Customer registration",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleCustomer,
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
			},
			expectedRole: domain.RoleCustomer,
		},
		{
			name:     "Empty role defaults to customer",
			login:    "testuser",
			password: "testpassword",
			role:     "",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
			},
			expectedRole: domain.RoleCustomer,
		},
		{
			name:          "Admin can't self-register",
			login:         "testuser",
			password:      "testpassword",
			role:          domain.RoleAdmin,
			prepareMock:   func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {},
			expectedError: ErrInvalidRole,
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleProvider,
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleCustomer,
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher, _ := NewMock(t)
			tt.prepareMock(repo, hasher)

			user, err := service.Register(context.Background(), tt.login, tt.password, tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.Equal(t, "hashedpassword", user.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID: 1, Login: "testuser", PasswordHash: "hashed", Role: domain.RoleCustomer,
				}, nil)
				hasher.EXPECT().ComparePassword("hashed", "testpassword").Return(true)
			},
		},
		{
			name: "Wrong password",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID: 1, Login: "testuser", PasswordHash: "hashed",
				}, nil)
				hasher.EXPECT().ComparePassword("hashed", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Unknown user",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Suspended user is rejected",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID: 1, Login: "testuser", PasswordHash: "hashed", Suspended: true,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher, _ := NewMock(t)
			tt.prepareMock(repo, hasher)

			user, err := service.Authenticate(context.Background(), "testuser", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, domain.RoleCustomer, gomock.Any()).Return("token123", nil)

	token, err := service.GenerateToken(1, domain.RoleCustomer)
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
}
