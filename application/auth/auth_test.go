package auth_test

import (
	"context"
	"testing"
	"time"

	appauth "github.com/ecomstack/inventory-service/application/auth"
	"github.com/ecomstack/inventory-service/cmd/config"
	redismocks "github.com/ecomstack/inventory-service/mocks/repository/redis"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject, jti string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthApp_ValidateToken(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: testSecret}}

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		mockCall func(repo *redismocks.Repository)
		wantID   uint64
		wantErr  bool
	}{
		{
			name:  "success: valid token with live session",
			token: func(t *testing.T) string { return signToken(t, "42", "session-abc") },
			mockCall: func(repo *redismocks.Repository) {
				repo.On("GetSession", mock.Anything, "session-abc").Return(uint64(42), nil).Once()
			},
			wantID:  42,
			wantErr: false,
		},
		{
			name:  "error: session belongs to another user",
			token: func(t *testing.T) string { return signToken(t, "42", "session-abc") },
			mockCall: func(repo *redismocks.Repository) {
				repo.On("GetSession", mock.Anything, "session-abc").Return(uint64(7), nil).Once()
			},
			wantErr: true,
		},
		{
			name:     "error: garbage token",
			token:    func(t *testing.T) string { return "not-a-token" },
			mockCall: nil,
			wantErr:  true,
		},
		{
			name:     "error: missing jti",
			token:    func(t *testing.T) string { return signToken(t, "42", "") },
			mockCall: nil,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appauth.NewAuthApp(cfg, repo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.wantID {
				t.Fatalf("ValidateToken() userID = %d, want %d", got, tt.wantID)
			}
		})
	}
}
