package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelola-hr/attendance-engine-go/internal/handler/http/response"
)

// ManagerOnly restricts a route to roles that may read other
// employees' attendance data.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, _ := claims["role"].(string)
		switch role {
		case "admin", "manager", "owner":
			next.ServeHTTP(w, r)
		default:
			response.Forbidden(w, "Insufficient role for this resource")
		}
	})
}
