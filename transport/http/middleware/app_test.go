package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	"hotelier/shared/cache"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/transport/http/middleware"
)

func rateLimitConfig(enabled bool, maxReqs, windowSecs int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enabled
	cfg.App.RateLimiter.MaxRequests = maxReqs
	cfg.App.RateLimiter.WindowSeconds = windowSecs

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	t.Run("disabled limiter passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		m := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(false, 1, 60), redisCache)

		recorder := httptest.NewRecorder()
		m.RateLimit(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("first request starts the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		redisCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), 1, 60).
			Return(nil)

		m := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(true, 5, 60), redisCache)

		recorder := httptest.NewRecorder()
		m.RateLimit(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "5", recorder.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", recorder.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "60", recorder.Header().Get("X-RateLimit-Window"))
	})

	t.Run("exceeding the limit yields 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				count, _ := value.(*int)
				*count = 5

				return nil
			})

		m := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(true, 5, 60), redisCache)

		recorder := httptest.NewRecorder()
		m.RateLimit(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})

	t.Run("cache failure does not block the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		m := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(true, 5, 60), redisCache)

		recorder := httptest.NewRecorder()
		m.RateLimit(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestAppMiddleware_Tracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(false, 0, 0), redisCache)

	recorder := httptest.NewRecorder()
	m.Tracing(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
