package magento

import (
	"fmt"
	"strings"
)

// CustomerTokenCookie is the cookie used by legacy clients to carry the
// customer token.
const CustomerTokenCookie = "ccs-magento-customer-token"

// ExtractCustomerToken resolves the customer token from the incoming
// headers. An "Authorization: Bearer <token>" header wins over the legacy
// cookie. An empty result means the request is anonymous.
func ExtractCustomerToken(headers map[string]string) string {
	if token, ok := bearerToken(headers); ok {
		return token
	}
	if token, ok := cookieToken(headers); ok {
		return token
	}
	return ""
}

func bearerToken(headers map[string]string) (string, bool) {
	value, ok := lookupHeader(headers, "authorization")
	if !ok {
		return "", false
	}
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func cookieToken(headers map[string]string) (string, bool) {
	value, ok := lookupHeader(headers, "cookie")
	if !ok {
		return "", false
	}
	for _, cookie := range strings.Split(value, ";") {
		// the token itself may contain '='
		name, token, found := strings.Cut(strings.TrimSpace(cookie), "=")
		if found && strings.TrimSpace(name) == CustomerTokenCookie && token != "" {
			return token, true
		}
	}
	return "", false
}

func lookupHeader(headers map[string]string, name string) (string, bool) {
	if v, ok := headers[name]; ok {
		return v, true
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// CustomerTokenSetCookie renders the Set-Cookie value handed back to legacy
// clients after a successful login.
func CustomerTokenSetCookie(token string, maxAge int) string {
	return fmt.Sprintf("%s=%s;Path=/;Max-Age=%d", CustomerTokenCookie, token, maxAge)
}
