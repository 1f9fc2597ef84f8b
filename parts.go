// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"io"
	"net/http"
	"net/url"

	"github.com/bassosimone/runtimex"
)

// Parts is the head of a request: everything except the body.
//
// The URI, the headers, and the extensions are each independently
// takeable. A [PartsExtractor] that needs ownership of a field takes it
// and subsequent extractors observe the field as absent (the borrowing
// accessors return nil). Taking a field twice is a programming error
// and causes a panic.
//
// Construct using [NewRequest] or [NewParts].
type Parts struct {
	// Method is the request method.
	Method string

	// uri is the request URI or nil once taken.
	uri *url.URL

	// headers is the header map or nil once taken.
	headers http.Header

	// extensions is the extension map or nil once taken.
	extensions *Extensions
}

// NewParts creates a [*Parts] owning the given fields.
//
// A nil header map is replaced with an empty one, and so are nil extensions,
// so that a freshly created [*Parts] has every field present.
func NewParts(method string, uri *url.URL, headers http.Header, extensions *Extensions) *Parts {
	runtimex.Assert(uri != nil)
	if headers == nil {
		headers = http.Header{}
	}
	if extensions == nil {
		extensions = NewExtensions()
	}
	return &Parts{
		Method:     method,
		uri:        uri,
		headers:    headers,
		extensions: extensions,
	}
}

// URI returns the request URI or nil if it has been taken.
func (p *Parts) URI() *url.URL {
	return p.uri
}

// TakeURI moves the request URI out of the head.
//
// This method panics if the URI has already been taken.
func (p *Parts) TakeURI() *url.URL {
	runtimex.Assert(p.uri != nil)
	uri := p.uri
	p.uri = nil
	return uri
}

// Headers returns the header map or nil if it has been taken.
func (p *Parts) Headers() http.Header {
	return p.headers
}

// TakeHeaders moves the header map out of the head.
//
// This method panics if the headers have already been taken.
func (p *Parts) TakeHeaders() http.Header {
	runtimex.Assert(p.headers != nil)
	headers := p.headers
	p.headers = nil
	return headers
}

// Extensions returns the extension map or nil if it has been taken.
func (p *Parts) Extensions() *Extensions {
	return p.extensions
}

// TakeExtensions moves the extension map out of the head.
//
// This method panics if the extensions have already been taken.
func (p *Parts) TakeExtensions() *Extensions {
	runtimex.Assert(p.extensions != nil)
	extensions := p.extensions
	p.extensions = nil
	return extensions
}

// Request is a request head plus its body.
//
// A Request is consumed as a unit by exactly one [RequestExtractor],
// which owns the body. The extractor may [Request.Split] the request,
// run [PartsExtractor] instances against the head, and [JoinRequest]
// the pieces again.
type Request struct {
	// Parts is the request head.
	Parts *Parts

	// Body is the request body; never nil when built by [NewRequest].
	Body io.ReadCloser
}

// JoinRequest assembles a [*Request] from a head and a body.
//
// A nil body is replaced with [http.NoBody].
func JoinRequest(parts *Parts, body io.ReadCloser) *Request {
	runtimex.Assert(parts != nil)
	if body == nil {
		body = http.NoBody
	}
	return &Request{Parts: parts, Body: body}
}

// Split returns the head and the body of the request.
func (r *Request) Split() (*Parts, io.ReadCloser) {
	return r.Parts, r.Body
}

// NewRequest adapts an [*http.Request] to a [*Request].
//
// The head shares the URI and header map of req. The extensions contain
// the values attached to the request context using [ContextWithExtension],
// a [ConnectInfo] when the server uses [ConnContext], and the request's
// [*tls.ConnectionState] when the connection uses TLS.
func NewRequest(req *http.Request) *Request {
	ctx := req.Context()
	extensions := extensionsFromContext(ctx)
	if conn := connFromContext(ctx); conn != nil {
		InsertExtension(extensions, newConnectInfo(conn))
	}
	if req.TLS != nil {
		InsertExtension(extensions, req.TLS)
	}
	parts := NewParts(req.Method, req.URL, req.Header, extensions)
	return JoinRequest(parts, req.Body)
}
