package middleware

import (
	"net/url"
	"strings"
)

// OriginPolicy decides which browser origins receive CORS headers.
// It is built once from config and only read afterwards.
type OriginPolicy struct {
	allowAll bool
	origins  map[string]struct{}
	suffixes []string
}

// NewOriginPolicy builds a policy from an exact allow-list (where "*" allows
// everything) and a list of host suffixes such as ".vercel.app".
func NewOriginPolicy(origins, suffixes []string) *OriginPolicy {
	p := &OriginPolicy{origins: make(map[string]struct{}, len(origins))}

	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if o == "*" {
			p.allowAll = true
			continue
		}
		p.origins[strings.ToLower(o)] = struct{}{}
	}

	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		// "vercel.app" must not match "evilvercel.app".
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		p.suffixes = append(p.suffixes, s)
	}

	return p
}

// Allowed reports whether origin may call the API from a browser. Requests
// without an Origin header are not cross-origin and are always allowed.
func (p *OriginPolicy) Allowed(origin string) bool {
	if origin == "" || p.allowAll {
		return true
	}

	if _, ok := p.origins[strings.ToLower(origin)]; ok {
		return true
	}

	if len(p.suffixes) == 0 {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, s := range p.suffixes {
		if strings.HasSuffix(host, s) {
			return true
		}
	}

	return false
}
