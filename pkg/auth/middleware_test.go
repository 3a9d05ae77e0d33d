package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		prepareMock  func(jwtService *MockJWTServiceInterface)
		expectedCode int
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer good-token",
			prepareMock: func(jwtService *MockJWTServiceInterface) {
				jwtService.EXPECT().ValidateToken("good-token").Return(&Claims{UserID: 1, Role: "customer"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			prepareMock:  func(jwtService *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			authHeader:   "Basic dXNlcjpwYXNz",
			prepareMock:  func(jwtService *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer bad-token",
			prepareMock: func(jwtService *MockJWTServiceInterface) {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := NewMockJWTServiceInterface(ctrl)
			tt.prepareMock(jwtService)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, 1, r.Context().Value(UserIDKey))
				assert.Equal(t, "customer", r.Context().Value(RoleKey))
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			Middleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		allowed      []string
		expectedCode int
	}{
		{name: "Role allowed", role: "provider", allowed: []string{"provider"}, expectedCode: http.StatusOK},
		{name: "One of several roles", role: "admin", allowed: []string{"provider", "admin"}, expectedCode: http.StatusOK},
		{name: "Role denied", role: "customer", allowed: []string{"admin"}, expectedCode: http.StatusForbidden},
		{name: "No role in context", role: "", allowed: []string{"admin"}, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != "" {
				r = r.WithContext(context.WithValue(r.Context(), RoleKey, tt.role))
			}
			w := httptest.NewRecorder()

			RequireRole(tt.allowed...)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
