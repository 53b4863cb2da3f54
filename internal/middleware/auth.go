package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

const (
	ContextSujetID   = "sujetID"
	ContextPrincipal = "principal"
)

// tokenFromRequest reads the session token from the Authorization header or
// the session cookie.
func tokenFromRequest(c *gin.Context, verifier *identity.Verifier) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(verifier.CookieName()); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware requires a valid session and stores the subject id in the
// request context. 401 on a missing or invalid token.
func AuthMiddleware(verifier *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c, verifier)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		sujet, err := verifier.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Set(ContextSujetID, sujet)
		c.Next()
	}
}

// ResolvePrincipal loads the marketplace profile behind the authenticated
// subject. Must run after AuthMiddleware.
func ResolvePrincipal(resolver *services.PrincipalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sujet := GetSujetID(c)
		if sujet == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), sujet)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve profile"})
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// RequireAdmin rejects with 403 when the resolved principal has no admin
// profile.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || !p.EstAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

func RequireAnnonceur() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || !p.EstAnnonceur() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

func RequireComedien() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || !p.EstComedien() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

func GetSujetID(c *gin.Context) string {
	v, exists := c.Get(ContextSujetID)
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}

func GetPrincipal(c *gin.Context) *services.Principal {
	v, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil
	}
	p, _ := v.(*services.Principal)
	return p
}
