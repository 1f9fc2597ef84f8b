// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"github.com/bassosimone/netstub"
	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// recordMessages returns the messages of the given records, in order.
func recordMessages(records []slog.Record) []string {
	var out []string
	for _, record := range records {
		out = append(out, record.Message)
	}
	return out
}

// recordAttr returns the value of the attribute with the given key.
func recordAttr(record slog.Record, key string) (slog.Value, bool) {
	var (
		value slog.Value
		found bool
	)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value, found = attr.Value, true
			return false
		}
		return true
	})
	return value, found
}

// newMinimalConn returns a [*netstub.FuncConn] with only LocalAddrFunc and
// RemoteAddrFunc set. This is the minimum needed for code that calls
// [safeconn.LocalAddr], [safeconn.RemoteAddr], and [safeconn.Network].
func newMinimalConn() *netstub.FuncConn {
	return &netstub.FuncConn{
		LocalAddrFunc:  func() net.Addr { return &net.TCPAddr{} },
		RemoteAddrFunc: func() net.Addr { return &net.TCPAddr{} },
	}
}

// newTestParts returns a [*Parts] for a GET of rawURL with the given headers.
func newTestParts(rawURL string, headers http.Header) *Parts {
	uri, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return NewParts("GET", uri, headers, nil)
}

// funcRoundTripper implements http.RoundTripper using a function.
type funcRoundTripper func(*http.Request) (*http.Response, error)

func (f funcRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// testRejection is a rejection used by the composition tests.
type testRejection struct {
	id string
}

func (r *testRejection) Error() string {
	return "rejected by " + r.id
}

// countingExtractor is a [PartsExtractor] stub counting its invocations.
//
// It records its id into the shared trace, so tests can check the order
// in which the members of a tuple run.
type countingExtractor struct {
	calls  int
	id     string
	reject bool
	trace  *[]string
}

func (e *countingExtractor) ExtractParts(parts *Parts) (string, *testRejection) {
	e.calls++
	if e.trace != nil {
		*e.trace = append(*e.trace, e.id)
	}
	if e.reject {
		return "", &testRejection{id: e.id}
	}
	return e.id, nil
}
