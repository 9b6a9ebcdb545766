package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// urlRegex splits a URL into scheme, optional userinfo, host, optional
	// port and optional remainder. The host is checked separately.
	urlRegex = regexp.MustCompile(`(?i)^(?:https?|ftp)://(?:[^\s/?#@]+@)?([^\s/?#:@]+)(?::\d{2,5})?(?:[/?#]\S*)?$`)

	ipv4Regex = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)

	// domainRegex: labels of letters, digits and inner hyphens, ending in an
	// alphabetic TLD of two or more characters, optional trailing dot.
	domainRegex = regexp.MustCompile(`(?i)^(?:[a-z\x{00a1}-\x{ffff}0-9]-*)*[a-z\x{00a1}-\x{ffff}0-9]+(?:\.(?:[a-z\x{00a1}-\x{ffff}0-9]-*)*[a-z\x{00a1}-\x{ffff}0-9]+)*\.[a-z\x{00a1}-\x{ffff}]{2,}\.?$`)
)

// URL passes for http, https and ftp URLs whose host is a domain name or a
// public IPv4 address.
func URL(_ string, value any, _ []any) (bool, error) {
	s, ok := asString(value)
	if !ok {
		return false, nil
	}
	m := urlRegex.FindStringSubmatch(s)
	if m == nil {
		return false, nil
	}
	host := m[1]
	if ip := ipv4Regex.FindStringSubmatch(host); ip != nil {
		return publicIPv4(ip[1:]), nil
	}
	return domainRegex.MatchString(host), nil
}

// publicIPv4 rejects private, loopback and link-local ranges as well as
// network and broadcast-style addresses.
func publicIPv4(parts []string) bool {
	var o [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return false
		}
		o[i] = n
	}

	switch {
	case o[0] < 1 || o[0] > 223:
		return false
	case o[0] == 10 || o[0] == 127:
		return false
	case o[0] == 169 && o[1] == 254:
		return false
	case o[0] == 192 && o[1] == 168:
		return false
	case o[0] == 172 && o[1] >= 16 && o[1] <= 31:
		return false
	case o[3] < 1 || o[3] > 254:
		return false
	}
	return true
}

// Email passes for strings holding a bare address (no display name) with a
// dotted domain.
func Email(_ string, value any, _ []any) (bool, error) {
	s, ok := scalarString(value)
	if !ok || strings.TrimSpace(s) == "" {
		return false, nil
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false, nil
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false, nil
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false, nil
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false, nil
		}
	}
	return true, nil
}

// Alpha passes for strings of ASCII letters.
func Alpha(_ string, value any, _ []any) (bool, error) {
	s, ok := asString(value)
	return ok && alphaRegex.MatchString(s), nil
}

// AlphaNum passes for strings and numbers made of ASCII letters and digits.
func AlphaNum(_ string, value any, _ []any) (bool, error) {
	s, ok := scalarString(value)
	return ok && alphanumericRegex.MatchString(s), nil
}

// Regex passes when value matches the pattern in params[0]. The pattern is
// not anchored. Values other than strings and numbers fail without matching.
func Regex(_ string, value any, params []any) (bool, error) {
	if err := requireParameterCount(1, params, RuleRegex); err != nil {
		return false, err
	}

	pattern, ok := scalarString(params[0])
	if !ok {
		return false, &TypeContractError{Rule: RuleRegex, Index: 0, Want: "pattern string", Got: params[0]}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("%w: %w", &TypeContractError{Rule: RuleRegex, Index: 0, Want: "valid pattern", Got: params[0]}, err)
	}

	s, ok := scalarString(value)
	if !ok {
		return false, nil
	}
	return re.MatchString(s), nil
}
