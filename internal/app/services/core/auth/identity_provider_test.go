package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storedSessionPayload(expiresAt time.Time) string {
	payload, _ := json.Marshal(&models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Email:     "staff@clinic.example",
		Claims:    models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"},
		ExpiresAt: expiresAt,
	})
	return string(payload)
}

func newIdentityProviderFixture(redis *MockRedisRepository) *identityProvider {
	return &identityProvider{
		RedisRepository: redis,
		InternalConfig:  &config.InternalConfig{},
		Log:             zap.NewNop(),
	}
}

func TestRefreshSessionClaims(t *testing.T) {
	t.Run("rewrites a live session within its remaining lifetime", func(t *testing.T) {
		redis := new(MockRedisRepository)
		p := newIdentityProviderFixture(redis)

		redis.On("Get", mock.Anything, "session:sess-1").Return(storedSessionPayload(time.Now().Add(time.Hour)), nil)
		redis.On("Set", mock.Anything, "session:sess-1",
			mock.MatchedBy(func(payload []byte) bool {
				var session models.Session
				if err := json.Unmarshal(payload, &session); err != nil {
					return false
				}
				return session.Claims.Role == "assistant"
			}),
			mock.MatchedBy(func(ttl time.Duration) bool {
				return ttl > 0 && ttl <= time.Hour
			}),
		).Return(nil)

		err := p.RefreshSessionClaims(context.Background(), "sess-1", models.SessionClaims{
			Role: "assistant", ClinicID: "org-1", ClinicSlug: "downtown-ortho",
		})
		require.NoError(t, err)
		redis.AssertExpectations(t)
	})

	t.Run("session at the edge of expiry is treated as gone", func(t *testing.T) {
		redis := new(MockRedisRepository)
		p := newIdentityProviderFixture(redis)

		redis.On("Get", mock.Anything, "session:sess-1").Return(storedSessionPayload(time.Now().Add(-time.Minute)), nil)

		err := p.RefreshSessionClaims(context.Background(), "sess-1", models.SessionClaims{Role: "assistant"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 401, customErr.StatusCode)
		redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing session", func(t *testing.T) {
		redis := new(MockRedisRepository)
		p := newIdentityProviderFixture(redis)

		redis.On("Get", mock.Anything, "session:sess-1").Return("", nil)

		err := p.RefreshSessionClaims(context.Background(), "sess-1", models.SessionClaims{Role: "assistant"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 401, customErr.StatusCode)
	})
}
