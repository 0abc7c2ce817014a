package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
)

// MockService реализует интерфейс me.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное чтение профиля",
			username: "alice",
			setupMock: func(m *MockService) {
				m.On("GetUserByUsername", mock.Anything, "alice").Return(&models.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "bcrypt-hash",
					Role:         models.RolePremium,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"alice"`,
		},
		{
			name:           "нет имени в контексте",
			username:       "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"authentication required"`,
		},
		{
			name:     "ошибка хранилища",
			username: "alice",
			setupMock: func(m *MockService) {
				m.On("GetUserByUsername", mock.Anything, "alice").
					Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to load user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			if tt.username != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.username))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			// Хэш пароля не уходит наружу
			assert.NotContains(t, w.Body.String(), "bcrypt-hash")
			mockService.AssertExpectations(t)
		})
	}
}
