package server

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	apiPrefix    = "/api"
	legacyPrefix = "/api/v1"
)

var (
	legacyCaseNotes = regexp.MustCompile(`^/participants/(\d+)/casenotes$`)
	legacyReferral  = regexp.MustCompile(`^/participants/\d+/referrals/(\d+)$`)
)

// CanonicalURL maps a legacy request URL onto the canonical route table.
// The query string is carried over. ok is false for URLs that are already canonical.
func CanonicalURL(u *url.URL) (target string, ok bool) {
	path := strings.TrimSuffix(u.Path, "/")
	rawQuery := u.RawQuery

	switch {
	case path == "/healthz":
		path = apiPrefix + "/health"
	case path == legacyPrefix || strings.HasPrefix(path, legacyPrefix+"/"):
		rest := strings.TrimPrefix(path, legacyPrefix)
		switch {
		case rest == "/reports/services":
			rest = "/reports/services_by_type"
			query := u.Query()
			query.Set("group", "date")
			rawQuery = query.Encode()
		case legacyCaseNotes.MatchString(rest):
			rest = legacyCaseNotes.ReplaceAllString(rest, "/participants/$1/notes")
		case legacyReferral.MatchString(rest):
			rest = legacyReferral.ReplaceAllString(rest, "/referrals/$1")
		}
		path = apiPrefix + rest
	default:
		return "", false
	}

	if rawQuery != "" {
		return path + "?" + rawQuery, true
	}
	return path, true
}

// redirectLegacy answers with 307 so the method and body are replayed.
func redirectLegacy(c *gin.Context) {
	target, ok := CanonicalURL(c.Request.URL)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found", "code": http.StatusNotFound})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
}
