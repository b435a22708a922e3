package auth

import (
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/pkg/utils"
)

const (
	CookieName = "token"

	loginPage    = "/login"
	userHomePage = "/user/dashboard"
)

type Area int

const (
	AreaPublic Area = iota
	AreaUser
	AreaAdmin
)

func (a Area) String() string {
	switch a {
	case AreaAdmin:
		return "admin"
	case AreaUser:
		return "user"
	default:
		return "public"
	}
}

var (
	adminPrefixes = []string{"/admin", "/api/admin"}
	userPrefixes  = []string{"/user", "/api/user"}
)

// Classify maps a request path to the area that guards it. The path is
// cleaned first, the same way the file server resolves it.
func Classify(urlPath string) Area {
	p := cleanPath(urlPath)
	for _, prefix := range adminPrefixes {
		if hasPathPrefix(p, prefix) {
			return AreaAdmin
		}
	}
	for _, prefix := range userPrefixes {
		if hasPathPrefix(p, prefix) {
			return AreaUser
		}
	}
	return AreaPublic
}

func cleanPath(urlPath string) string {
	return path.Clean("/" + urlPath)
}

func hasPathPrefix(p, prefix string) bool {
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/'
}

func isAPI(urlPath string) bool {
	return hasPathPrefix(cleanPath(urlPath), "/api")
}

// Guard rejects requests to protected areas that carry no valid token
// or whose role does not match the area.
type Guard struct {
	jwtService JWTServiceInterface
}

func NewGuard(jwtService JWTServiceInterface) *Guard {
	return &Guard{jwtService: jwtService}
}

func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		area := Classify(r.URL.Path)
		if area == AreaPublic {
			next.ServeHTTP(w, r)
			return
		}

		api := isAPI(r.URL.Path)
		token := extractToken(r, api)
		if token == "" {
			g.reject(w, r, api, loginPage)
			return
		}

		claims, err := g.jwtService.ValidateToken(token)
		if err != nil {
			zap.L().Debug("token rejected", zap.String("path", r.URL.Path), zap.Error(err))
			g.reject(w, r, api, loginPage)
			return
		}

		if area == AreaAdmin && !claims.Role.IsAdmin() {
			zap.L().Info("non-admin access to admin area", zap.String("path", r.URL.Path), zap.String("userID", claims.UserID.String()))
			g.reject(w, r, api, userHomePage)
			return
		}

		ctx := WithIdentity(r.Context(), Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, api bool, redirectTo string) {
	if api {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

// Data API requests prefer the Authorization header, page requests prefer the cookie.
func extractToken(r *http.Request, api bool) string {
	if api {
		if token := bearerToken(r); token != "" {
			return token
		}
		return cookieToken(r)
	}
	if token := cookieToken(r); token != "" {
		return token
	}
	return bearerToken(r)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

func cookieToken(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
