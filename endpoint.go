// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
	"golang.org/x/net/idna"
)

// Endpoint is the base URI that outbound requests are sent to.
//
// A mutable endpoint accepts an [*EndpointPrefix] that is prepended to its
// host (e.g., "data-" + "example.com"), while an immutable endpoint is used
// exactly as given and ignores any prefix.
//
// Construct using [NewMutableEndpoint] or [NewImmutableEndpoint].
type Endpoint struct {
	immutable bool
	uri       *url.URL
}

// NewMutableEndpoint parses rawURL into an [*Endpoint] accepting a host prefix.
func NewMutableEndpoint(rawURL string) (*Endpoint, error) {
	return newEndpoint(rawURL, false)
}

// NewImmutableEndpoint parses rawURL into an [*Endpoint] ignoring host prefixes.
func NewImmutableEndpoint(rawURL string) (*Endpoint, error) {
	return newEndpoint(rawURL, true)
}

func newEndpoint(rawURL string, immutable bool) (*Endpoint, error) {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return nil, NewResolveEndpointError("invalid endpoint URI").WithSource(err)
	}
	return &Endpoint{immutable: immutable, uri: uri}, nil
}

// URI returns a copy of the endpoint URI.
func (e *Endpoint) URI() *url.URL {
	uri := *e.uri
	return &uri
}

// Immutable returns whether the endpoint ignores host prefixes.
func (e *Endpoint) Immutable() bool {
	return e.immutable
}

// EndpointPrefix is a validated prefix for the host of a mutable [*Endpoint].
//
// Construct using [NewEndpointPrefix].
type EndpointPrefix struct {
	value string
}

// NewEndpointPrefix validates prefix and returns the corresponding [*EndpointPrefix].
//
// The prefix must be a valid beginning of an authority (e.g., "data-" or "tenant.").
func NewEndpointPrefix(prefix string) (*EndpointPrefix, error) {
	if prefix == "" || !httpguts.ValidHostHeader(prefix) {
		cause := fmt.Errorf("invalid endpoint prefix %q", prefix)
		return nil, errFailedToConstructAuthority(cause).resolveError()
	}
	return &EndpointPrefix{value: prefix}, nil
}

// String returns the prefix.
func (p *EndpointPrefix) String() string {
	return p.value
}

// Apply rewrites u to target the endpoint.
//
// The scheme and the authority of u are replaced with those of the endpoint,
// prepending prefix (if not nil) to the authority of mutable endpoints. The
// path of u is appended to the endpoint path, joined by exactly one slash,
// and the query of u is kept. The endpoint query, if any, is ignored.
// The userinfo of u is replaced only when the endpoint carries one.
//
// On failure, Apply returns a [*ResolveEndpointError] and leaves u untouched.
func (e *Endpoint) Apply(u *url.URL, prefix *EndpointPrefix) error {
	if err := e.apply(u, prefix); err != nil {
		return err.resolveError()
	}
	return nil
}

func (e *Endpoint) apply(u *url.URL, prefix *EndpointPrefix) *invalidEndpointError {
	if e.uri.Scheme == "" {
		return errEndpointMustHaveScheme()
	}

	authority := e.uri.Host
	if !e.immutable && prefix != nil {
		authority = prefix.value + authority
	}
	host, err := normalizeAuthority(authority)
	if err != nil {
		return errFailedToConstructAuthority(err)
	}

	target, err := url.ParseRequestURI(mergePaths(e.uri, u))
	if err != nil {
		return errFailedToConstructURI(err)
	}

	u.Scheme = e.uri.Scheme
	if e.uri.User != nil {
		u.User = e.uri.User
	}
	u.Host = host
	u.Path = target.Path
	u.RawPath = target.RawPath
	u.RawQuery = target.RawQuery
	u.ForceQuery = target.ForceQuery
	u.Opaque = ""
	u.Fragment, u.RawFragment = "", ""
	return nil
}

// normalizeAuthority converts the host of authority to ASCII and validates the result.
func normalizeAuthority(authority string) (string, error) {
	if authority == "" {
		return "", fmt.Errorf("empty authority")
	}
	host, port := authority, ""
	if h, p, err := net.SplitHostPort(authority); err == nil {
		host, port = h, p
	}
	if _, err := netip.ParseAddr(host); err != nil && !strings.HasPrefix(host, "[") {
		ascii, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", err
		}
		authority = ascii
		if port != "" {
			authority = net.JoinHostPort(ascii, port)
		}
	}
	if !httpguts.ValidHostHeader(authority) {
		return "", fmt.Errorf("invalid authority %q", authority)
	}
	return authority, nil
}

// mergePaths joins the endpoint path and the path and query of u.
func mergePaths(endpoint *url.URL, u *url.URL) string {
	pathAndQuery := u.EscapedPath()
	if u.RawQuery != "" || u.ForceQuery {
		pathAndQuery += "?" + u.RawQuery
	}
	endpointPath := endpoint.EscapedPath()
	switch {
	case endpointPath == "" && pathAndQuery == "":
		return "/"
	case endpointPath == "":
		if !strings.HasPrefix(pathAndQuery, "/") {
			pathAndQuery = "/" + pathAndQuery
		}
		return pathAndQuery
	default:
		return strings.TrimSuffix(endpointPath, "/") + "/" + strings.TrimPrefix(pathAndQuery, "/")
	}
}

// NewEndpointFunc returns a [Func] that always resolves to the given [*Endpoint].
//
// This is a convenience wrapper around [ConstFunc] for the common case of
// a fixed endpoint configured by the user.
func NewEndpointFunc(endpoint *Endpoint) Func[Unit, *Endpoint] {
	return ConstFunc(endpoint)
}

// NewStaticEndpointFunc returns a [Func] resolving to the mutable endpoint
// parsed from rawURL.
//
// Parsing happens once, here. When rawURL is invalid, every resolution
// fails with the corresponding [*ResolveEndpointError].
func NewStaticEndpointFunc(rawURL string) Func[Unit, *Endpoint] {
	endpoint, err := NewMutableEndpoint(rawURL)
	if err != nil {
		return FuncAdapter[Unit, *Endpoint](func(ctx context.Context, _ Unit) (*Endpoint, error) {
			return nil, err
		})
	}
	return NewEndpointFunc(endpoint)
}
