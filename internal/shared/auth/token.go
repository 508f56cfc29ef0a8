package auth

import (
	"net/http"
	"strings"
)

// ExtractBearerTokenFromHeader returns the token of a "Bearer <token>" header value, or "".
func ExtractBearerTokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// ExtractToken picks the first non-empty token from the path segment, the query
// parameter and the Authorization header, in that order. It also reports the source.
func ExtractToken(r *http.Request, pathToken, queryParam string) (string, string) {
	if token := strings.TrimSpace(pathToken); token != "" {
		return token, "path"
	}
	if r == nil {
		return "", ""
	}
	if queryParam == "" {
		queryParam = "token"
	}
	if r.URL != nil {
		if token := strings.TrimSpace(r.URL.Query().Get(queryParam)); token != "" {
			return token, "query"
		}
	}
	if token := ExtractBearerTokenFromHeader(r.Header.Get("Authorization")); token != "" {
		return token, "header"
	}
	return "", ""
}
