package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/logger"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

// gateRule guards one page-path prefix. First matching rule wins; paths
// matching no rule pass through unchanged.
type gateRule struct {
	prefix   string
	exempt   []string
	allowed  func(p *services.Principal) bool
	redirect string
}

var gateRules = []gateRule{
	{
		prefix:   "/dashboard",
		allowed:  func(p *services.Principal) bool { return p.EstComedien() },
		redirect: "/connexion",
	},
	{
		prefix:   "/annonceur",
		exempt:   []string{"/annonceur/inscription"},
		allowed:  func(p *services.Principal) bool { return p.EstAnnonceur() },
		redirect: "/connexion",
	},
	{
		prefix:   "/admin",
		allowed:  func(p *services.Principal) bool { return p.EstAdmin() },
		redirect: "/",
	},
}

// authPages are the login/signup pages an already-authenticated visitor is
// bounced away from, toward the home of their resolved profile.
var authPages = map[string]bool{
	"/connexion":   true,
	"/inscription": true,
}

// homeFor picks the redirect target in the fixed comedien > annonceur >
// admin priority order.
func homeFor(p *services.Principal) string {
	switch {
	case p.EstComedien():
		return "/dashboard"
	case p.EstAnnonceur():
		return "/annonceur"
	case p.EstAdmin():
		return "/admin"
	default:
		return ""
	}
}

func matches(rule gateRule, path string) bool {
	if !strings.HasPrefix(path, rule.prefix) {
		return false
	}
	for _, e := range rule.exempt {
		if path == e || strings.HasPrefix(path, e+"/") {
			return false
		}
	}
	return true
}

// AccessGate is the page-routing guard. It refreshes the session cookie on
// every request (valid session or not, routing decision or not), then
// applies the rule table.
func AccessGate(verifier *identity.Verifier, resolver *services.PrincipalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := refreshSession(c, verifier, resolver)

		path := c.Request.URL.Path

		if authPages[path] && principal != nil {
			if home := homeFor(principal); home != "" {
				c.Redirect(http.StatusFound, home)
				c.Abort()
				return
			}
		}

		for _, rule := range gateRules {
			if !matches(rule, path) {
				continue
			}
			if principal == nil || !rule.allowed(principal) {
				c.Redirect(http.StatusFound, rule.redirect)
				c.Abort()
				return
			}
			break
		}

		c.Next()
	}
}

// refreshSession validates the inbound token, slides the cookie expiry and
// resolves the principal. Returns nil for anonymous or invalid sessions.
func refreshSession(c *gin.Context, verifier *identity.Verifier, resolver *services.PrincipalService) *services.Principal {
	token := tokenFromRequest(c, verifier)
	if token == "" {
		return nil
	}

	sujet, err := verifier.Parse(token)
	if err != nil {
		return nil
	}

	if fresh, err := verifier.Issue(sujet); err == nil {
		c.SetCookie(verifier.CookieName(), fresh, int(verifier.TTL().Seconds()), "/", "", false, true)
	}

	principal, err := resolver.Resolve(c.Request.Context(), sujet)
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "principal resolution failed at gate", "error", err.Error())
		return nil
	}

	c.Set(ContextSujetID, sujet)
	c.Set(ContextPrincipal, principal)
	return principal
}
