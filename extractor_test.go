// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejected(t *testing.T) {
	assert.False(t, Rejected[error](nil))
	assert.True(t, Rejected(errors.New("x")))
	assert.False(t, Rejected((*testRejection)(nil)))
	assert.True(t, Rejected(&testRejection{id: "a"}))
	assert.False(t, Rejected(Infallible{}))
}

func TestPartsFunc(t *testing.T) {
	fn := PartsFunc[string, *testRejection](func(parts *Parts) (string, *testRejection) {
		return parts.Method, nil
	})

	value, rejection := fn.ExtractParts(newTestParts("/", nil))

	assert.Nil(t, rejection)
	assert.Equal(t, "GET", value)
}

// Parts1 and Request1 delegate without wrapping the rejection.
func TestSingleMemberTuples(t *testing.T) {
	t.Run("Parts1", func(t *testing.T) {
		stub := &countingExtractor{id: "a", reject: true}

		_, rejection := Parts1(stub).ExtractParts(newTestParts("/", nil))

		assert.Equal(t, "rejected by a", rejection.Error())
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("Request1", func(t *testing.T) {
		stub := &countingExtractor{id: "a"}

		value, rejection := Request1(FromParts(stub)).ExtractRequest(
			context.Background(), JoinRequest(newTestParts("/", nil), nil))

		assert.Nil(t, rejection)
		assert.Equal(t, "a", value)
	})
}

// FromParts runs the parts extractor and leaves the body alone.
func TestFromParts(t *testing.T) {
	body := io.NopCloser(strings.NewReader("payload"))
	req := JoinRequest(newTestParts("/", nil), body)
	stub := &countingExtractor{id: "a"}

	value, rejection := FromParts(stub).ExtractRequest(context.Background(), req)

	assert.Nil(t, rejection)
	assert.Equal(t, "a", value)
	data, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

// positionedRejection is implemented by all tuple rejections.
type positionedRejection interface {
	error
	Position() int
}

// extractTuple runs a tuple of len(stubs) members.
func extractTuple(stubs []*countingExtractor, parts *Parts) ([]string, positionedRejection) {
	s := stubs
	switch len(s) {
	case 2:
		v, r := Parts2(s[0], s[1]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2}, nil
	case 3:
		v, r := Parts3(s[0], s[1], s[2]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2, v.V3}, nil
	case 4:
		v, r := Parts4(s[0], s[1], s[2], s[3]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2, v.V3, v.V4}, nil
	case 5:
		v, r := Parts5(s[0], s[1], s[2], s[3], s[4]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2, v.V3, v.V4, v.V5}, nil
	case 6:
		v, r := Parts6(s[0], s[1], s[2], s[3], s[4], s[5]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2, v.V3, v.V4, v.V5, v.V6}, nil
	case 7:
		v, r := Parts7(s[0], s[1], s[2], s[3], s[4], s[5], s[6]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, v.V7}, nil
	case 8:
		v, r := Parts8(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]).ExtractParts(parts)
		if r != nil {
			return nil, r
		}
		return []string{v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, v.V7, v.V8}, nil
	default:
		panic("unsupported arity")
	}
}

func newStubs(n int, rejecting ...int) ([]*countingExtractor, *[]string) {
	trace := &[]string{}
	stubs := make([]*countingExtractor, 0, n)
	for i := 1; i <= n; i++ {
		stubs = append(stubs, &countingExtractor{id: fmt.Sprintf("e%d", i), trace: trace})
	}
	for _, k := range rejecting {
		stubs[k-1].reject = true
	}
	return stubs, trace
}

// All members run, in declaration order, and the values keep that order.
func TestPartsTupleSuccess(t *testing.T) {
	for n := 2; n <= 8; n++ {
		t.Run(fmt.Sprintf("arity %d", n), func(t *testing.T) {
			stubs, trace := newStubs(n)

			values, rejection := extractTuple(stubs, newTestParts("/", nil))

			require.Nil(t, rejection)
			assert.Equal(t, *trace, values)
			for i, stub := range stubs {
				assert.Equal(t, 1, stub.calls)
				assert.Equal(t, fmt.Sprintf("e%d", i+1), values[i])
			}
		})
	}
}

// The first rejecting member stops the extraction and its rejection is
// returned, tagged with its position, while later members never run.
func TestPartsTupleFailFast(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for k := 1; k <= n; k++ {
			t.Run(fmt.Sprintf("arity %d rejecting %d", n, k), func(t *testing.T) {
				// make every member from k onward reject, so that we also
				// verify that only the first rejection is reported
				var rejecting []int
				for i := k; i <= n; i++ {
					rejecting = append(rejecting, i)
				}
				stubs, _ := newStubs(n, rejecting...)

				values, rejection := extractTuple(stubs, newTestParts("/", nil))

				assert.Nil(t, values)
				require.NotNil(t, rejection)
				assert.Equal(t, k, rejection.Position())
				var member *testRejection
				require.True(t, errors.As(rejection, &member))
				assert.Equal(t, fmt.Sprintf("e%d", k), member.id)
				assert.Equal(t, fmt.Sprintf("extractor #%d: rejected by e%d", k, k), rejection.Error())
				for i, stub := range stubs {
					if i < k {
						assert.Equal(t, 1, stub.calls, "member %d", i+1)
					} else {
						assert.Equal(t, 0, stub.calls, "member %d", i+1)
					}
				}
			})
		}
	}
}

// The typed accessors expose exactly the rejecting member.
func TestRejectionAccessors(t *testing.T) {
	stubs, _ := newStubs(3, 2)

	_, rejection := Parts3(stubs[0], stubs[1], stubs[2]).ExtractParts(newTestParts("/", nil))

	require.NotNil(t, rejection)
	_, ok1 := rejection.Get1()
	r2, ok2 := rejection.Get2()
	_, ok3 := rejection.Get3()
	assert.False(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)
	assert.Same(t, r2, rejection.Unwrap())
	assert.Equal(t, "e2", r2.id)
}

// Members observe the head as left by their predecessors.
func TestPartsTupleSharesHead(t *testing.T) {
	parts := newTestParts("/", http.Header{"X-Token": {"secret"}})
	var seen http.Header
	observer := PartsFunc[Unit, Infallible](func(parts *Parts) (Unit, Infallible) {
		seen = parts.Headers()
		return Unit{}, Infallible{}
	})

	value, rejection := Parts2(Headers{}, observer).ExtractParts(parts)

	assert.Nil(t, rejection)
	assert.Equal(t, "secret", value.V1.Get("X-Token"))
	assert.Nil(t, seen)
}

func TestRequest2(t *testing.T) {
	newRequest := func() *Request {
		return JoinRequest(newTestParts("/", http.Header{"X-Token": {"secret"}}),
			io.NopCloser(strings.NewReader("payload")))
	}

	readBody := RequestFunc[string, *testRejection](func(ctx context.Context, req *Request) (string, *testRejection) {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return "", &testRejection{id: "body"}
		}
		return string(data), nil
	})

	rejectBody := RequestFunc[string, *testRejection](func(ctx context.Context, req *Request) (string, *testRejection) {
		return "", &testRejection{id: "body"}
	})

	t.Run("success", func(t *testing.T) {
		stub := &countingExtractor{id: "head"}

		value, rejection := Request2(readBody, stub).ExtractRequest(context.Background(), newRequest())

		require.Nil(t, rejection)
		assert.Equal(t, "payload", value.V1)
		assert.Equal(t, "head", value.V2)
	})

	t.Run("the request extractor observes the head as left by the parts extractor", func(t *testing.T) {
		var seen http.Header
		observe := RequestFunc[Unit, Infallible](func(ctx context.Context, req *Request) (Unit, Infallible) {
			seen = req.Parts.Headers()
			return Unit{}, Infallible{}
		})

		value, rejection := Request2(observe, Headers{}).ExtractRequest(context.Background(), newRequest())

		require.Nil(t, rejection)
		assert.Equal(t, "secret", value.V2.Get("X-Token"))
		assert.Nil(t, seen)
	})

	t.Run("parts rejection", func(t *testing.T) {
		stub := &countingExtractor{id: "head", reject: true}

		_, rejection := Request2(readBody, stub).ExtractRequest(context.Background(), newRequest())

		require.NotNil(t, rejection)
		assert.Equal(t, 2, rejection.Position())
		r2, ok := rejection.Get2()
		require.True(t, ok)
		assert.Equal(t, "head", r2.id)
	})

	t.Run("request rejection", func(t *testing.T) {
		stub := &countingExtractor{id: "head"}

		_, rejection := Request2(rejectBody, stub).ExtractRequest(context.Background(), newRequest())

		require.NotNil(t, rejection)
		assert.Equal(t, 1, rejection.Position())
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("both reject and the first declared member wins", func(t *testing.T) {
		stub := &countingExtractor{id: "head", reject: true}

		_, rejection := Request2(rejectBody, stub).ExtractRequest(context.Background(), newRequest())

		require.NotNil(t, rejection)
		assert.Equal(t, 1, rejection.Position())
		r1, ok := rejection.Get1()
		require.True(t, ok)
		assert.Equal(t, "body", r1.id)
		assert.Equal(t, "extractor #1: rejected by body", rejection.Error())
	})

	// The request side finishes after the parts side has rejected, and
	// still its rejection is the one reported.
	t.Run("both reject and the slower request member wins", func(t *testing.T) {
		headDone := make(chan struct{})
		slowReject := RequestFunc[string, *testRejection](func(ctx context.Context, req *Request) (string, *testRejection) {
			select {
			case <-headDone:
			case <-time.After(time.Second):
				t.Error("the parts member did not run")
			}
			return "", &testRejection{id: "body"}
		})
		headReject := PartsFunc[string, *testRejection](func(parts *Parts) (string, *testRejection) {
			close(headDone)
			return "", &testRejection{id: "head"}
		})

		_, rejection := Request2(slowReject, headReject).ExtractRequest(context.Background(), newRequest())

		require.NotNil(t, rejection)
		assert.Equal(t, 1, rejection.Position())
		r1, ok := rejection.Get1()
		require.True(t, ok)
		assert.Equal(t, "body", r1.id)
		_, ok = rejection.Get2()
		assert.False(t, ok)
	})

	t.Run("nesting a parts tuple", func(t *testing.T) {
		stubs, _ := newStubs(3, 3)

		_, rejection := Request2(readBody, Parts3(stubs[0], stubs[1], stubs[2])).ExtractRequest(
			context.Background(), newRequest())

		require.NotNil(t, rejection)
		assert.Equal(t, 2, rejection.Position())
		inner, ok := rejection.Get2()
		require.True(t, ok)
		assert.Equal(t, 3, inner.Position())
		var member *testRejection
		require.True(t, errors.As(rejection, &member))
		assert.Equal(t, "e3", member.id)
	})
}
