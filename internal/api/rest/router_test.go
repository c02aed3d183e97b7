package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/service"
	"github.com/dtroode/garden-server/internal/testutil"
)

type recoveryMock struct{ mock.Mock }

func (m *recoveryMock) ValidateRecovery(ctx context.Context, userID uuid.UUID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *recoveryMock) ResetPassword(ctx context.Context, userID uuid.UUID, token string, in service.ResetPasswordInput) error {
	return m.Called(ctx, userID, token, in).Error(0)
}

type imagesMock struct{ mock.Mock }

func (m *imagesMock) GetImage(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testEnv struct {
	recovery *recoveryMock
	images   *imagesMock
	registry *prometheus.Registry
	handler  http.Handler
}

func newTestEnv(t *testing.T, db Pinger) *testEnv {
	t.Helper()
	env := &testEnv{
		recovery: &recoveryMock{},
		images:   &imagesMock{},
		registry: prometheus.NewRegistry(),
	}
	t.Cleanup(func() {
		env.recovery.AssertExpectations(t)
		env.images.AssertExpectations(t)
	})
	env.handler = NewRouter(env.recovery, env.images, env.registry, db, testutil.MakeNoopLogger())
	return env
}

func (e *testEnv) do(method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var out envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.NotNil(t, out.Error)
	return *out.Error
}

func TestRecovery_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		target     string
		setup      func(m *recoveryMock)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "valid link",
			target: "/user/recovery/" + userID.String() + "/tok.en.sig",
			setup: func(m *recoveryMock) {
				m.On("ValidateRecovery", mock.Anything, userID, "tok.en.sig").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "expired link",
			target: "/user/recovery/" + userID.String() + "/stale",
			setup: func(m *recoveryMock) {
				m.On("ValidateRecovery", mock.Anything, userID, "stale").Return(apiErrors.ErrRecoveryExpired).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrRecoveryExpired.Code,
		},
		{
			name:       "malformed id reads as expired",
			target:     "/user/recovery/not-an-id/tok",
			setup:      func(*recoveryMock) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrRecoveryExpired.Code,
		},
		{
			name:   "store failure is internal",
			target: "/user/recovery/" + userID.String() + "/tok",
			setup: func(m *recoveryMock) {
				m.On("ValidateRecovery", mock.Anything, userID, "tok").Return(errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternal.Code,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			tt.setup(env.recovery)

			rec := env.do(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestRecovery_Reset(t *testing.T) {
	userID := uuid.New()
	target := "/user/recovery/" + userID.String() + "/tok"

	t.Run("resets password", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.recovery.On("ResetPassword", mock.Anything, userID, "tok", service.ResetPasswordInput{
			Password:        "brand-new-password",
			ConfirmPassword: "brand-new-password",
		}).Return(nil).Once()

		rec := env.do(http.MethodPost, target,
			strings.NewReader(`{"password":"brand-new-password","confirm_password":"brand-new-password"}`))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "password has been reset")
	})

	t.Run("invalid body", func(t *testing.T) {
		env := newTestEnv(t, nil)
		rec := env.do(http.MethodPost, target, strings.NewReader(`{`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrValidation.Code, decodeError(t, rec).Code)
	})

	t.Run("passwords differ", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.recovery.On("ResetPassword", mock.Anything, userID, "tok", mock.Anything).
			Return(apiErrors.ErrPasswordsDiffer).Once()

		rec := env.do(http.MethodPost, target, strings.NewReader(`{"password":"a","confirm_password":"b"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrPasswordsDiffer.Code, decodeError(t, rec).Code)
	})
}

func TestMedia_Get(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("streams image", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.images.On("GetImage", mock.Anything, "users/abc/profile-1").
			Return(io.NopCloser(bytes.NewReader(png)), nil).Once()

		rec := env.do(http.MethodGet, "/media/users/abc/profile-1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("missing image", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.images.On("GetImage", mock.Anything, "users/abc/gone").
			Return(nil, apiErrors.ErrImageNotFound).Once()

		rec := env.do(http.MethodGet, "/media/users/abc/gone", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("keys outside user media are rejected", func(t *testing.T) {
		env := newTestEnv(t, nil)
		rec := env.do(http.MethodGet, "/media/secrets/config", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		rec := newTestEnv(t, nil).do(http.MethodGet, "/healthz", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database unreachable", func(t *testing.T) {
		env := newTestEnv(t, pingerFunc(func(context.Context) error { return errors.New("refused") }))
		rec := env.do(http.MethodGet, "/healthz", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	env := newTestEnv(t, nil)
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "garden_test_total"})
	env.registry.MustRegister(counter)
	counter.Inc()

	rec := env.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "garden_test_total 1")
}
