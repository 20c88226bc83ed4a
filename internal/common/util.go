package common

import (
	"fmt"
	"strings"
)

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return fmt.Sprintf("%s %s", BearerScheme, token)
}

// ParseBearer extracts the token from an Authorization header value.
// The scheme is matched case-insensitively; ok is false when the header is
// empty, uses another scheme or carries no token.
func ParseBearer(header string) (token string, ok bool) {
	scheme, rest, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(rest)
	return token, token != ""
}

// EmailLocalPart returns the part of email before the first '@', or the
// whole string when there is none.
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
