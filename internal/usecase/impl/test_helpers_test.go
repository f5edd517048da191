package impl

import (
	"io"
	"log/slog"
	"time"

	"morrison/config"
	"morrison/internal/domain/service"
	"morrison/internal/infra/metrics"

	"github.com/golang-jwt/jwt/v5"
)

const testDefaultAvatar = "https://example.com/default.png"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4,
			HashConcurrency: 2,
			TokenTTL:        time.Hour,
		},
		Accounts: &config.AccountsConfig{
			DefaultAvatar:     testDefaultAvatar,
			UsernameMaxLength: 16,
		},
	}
}

func newTestMetrics() service.AuthMetrics {
	return metrics.NewAuthMetrics(metrics.NewRegistry())
}

func testClaims(accountID int64, username string) *service.Claims {
	now := time.Now()

	return &service.Claims{
		AccountID: accountID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func strPtr(s string) *string { return &s }
