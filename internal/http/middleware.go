package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/beerhall/internal/domain"
	"go.uber.org/zap"
)

const (
	SessionCookie = "beerhall_session"
	// CustomerHeader carries the email of the customer authenticated upstream.
	CustomerHeader = "X-Customer-Email"
)

type ctxKey string

const (
	sessionKey  ctxKey = "session_id"
	customerKey ctxKey = "customer"
)

// sessionMiddleware makes sure every request has a session id, issuing a new
// cookie when the request carries none or an invalid one.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(SessionCookie); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				sessionID = id.String()
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}

// requireCustomer loads the customer named by the identity layer. Requests
// without one are rejected.
func (h *Handler) requireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(CustomerHeader)
		if email == "" {
			h.respondError(w, http.StatusUnauthorized, "unauthorized", "customer authentication required")
			return
		}

		customer, err := h.customers.Current(r.Context(), email)
		if errors.Is(err, domain.ErrNotFound) {
			h.respondError(w, http.StatusForbidden, "forbidden", "no customer registered for "+email)
			return
		}
		if err != nil {
			h.respondFailure(w, r, err, "")
			return
		}

		ctx := context.WithValue(r.Context(), customerKey, customer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func customerFrom(ctx context.Context) *domain.Customer {
	c, _ := ctx.Value(customerKey).(*domain.Customer)
	return c
}

func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
