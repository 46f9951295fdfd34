package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/infras/jwt"
	jwtMocks "hotelier/infras/jwt/mocks"
	"hotelier/infras/otel/mocks"
	"hotelier/permissions"
	"hotelier/shared/constant"
	"hotelier/transport/http/middleware"
)

// newAuthRouter wires the middleware into a real chi router so route
// patterns resolve the way they do in production.
func newAuthRouter(t *testing.T) (chi.Router, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	m := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get())

	router := chi.NewRouter()
	router.Use(m.Auth)
	router.Use(m.RBAC)

	return router, jwtService
}

func employeeClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:      "employee-1",
		Email:       "employee@example.com",
		Role:        constant.RoleEmployee,
		HotelID:     3,
		CompanyName: "Marriott",
		Type:        jwt.AccessToken,
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("skipped endpoint needs no token", func(t *testing.T) {
		router, _ := newAuthRouter(t)
		router.Post("/v1/auth/login", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		router, _ := newAuthRouter(t)
		router.Post("/v1/bookings/walkin", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/bookings/walkin", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		router, _ := newAuthRouter(t)
		router.Post("/v1/bookings/walkin", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		request := httptest.NewRequest(http.MethodPost, "/v1/bookings/walkin", nil)
		request.Header.Set("Authorization", "Token abc")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		router, jwtService := newAuthRouter(t)
		router.Post("/v1/bookings/walkin", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		jwtService.EXPECT().
			ValidateToken("stale-token", jwt.AccessToken).
			Return(nil, jwt.ErrExpiredToken)

		request := httptest.NewRequest(http.MethodPost, "/v1/bookings/walkin", nil)
		request.Header.Set("Authorization", "Bearer stale-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token injects identity into context", func(t *testing.T) {
		router, jwtService := newAuthRouter(t)

		var gotUserID, gotCompany string
		var gotHotelID int

		router.Post("/v1/bookings/walkin", func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			gotUserID, _ = ctx.Value(constant.ContextKeyUserID).(string)
			gotHotelID, _ = ctx.Value(constant.ContextKeyHotelID).(int)
			gotCompany, _ = ctx.Value(constant.ContextKeyCompanyName).(string)
			writer.WriteHeader(http.StatusOK)
		})

		jwtService.EXPECT().
			ValidateToken("good-token", jwt.AccessToken).
			Return(employeeClaims(), nil)

		request := httptest.NewRequest(http.MethodPost, "/v1/bookings/walkin", nil)
		request.Header.Set("Authorization", "Bearer good-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "employee-1", gotUserID)
		assert.Equal(t, 3, gotHotelID)
		assert.Equal(t, "Marriott", gotCompany)
	})
}

func TestRBACMiddleware(t *testing.T) {
	t.Run("role outside the allow list", func(t *testing.T) {
		router, jwtService := newAuthRouter(t)
		router.Post("/v1/bookings/walkin", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		claims := employeeClaims()
		claims.Role = constant.RoleCustomer

		jwtService.EXPECT().
			ValidateToken("customer-token", jwt.AccessToken).
			Return(claims, nil)

		request := httptest.NewRequest(http.MethodPost, "/v1/bookings/walkin", nil)
		request.Header.Set("Authorization", "Bearer customer-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("role inside the allow list", func(t *testing.T) {
		router, jwtService := newAuthRouter(t)
		router.Post("/v1/bookings/walkin", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		jwtService.EXPECT().
			ValidateToken("employee-token", jwt.AccessToken).
			Return(employeeClaims(), nil)

		request := httptest.NewRequest(http.MethodPost, "/v1/bookings/walkin", nil)
		request.Header.Set("Authorization", "Bearer employee-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
