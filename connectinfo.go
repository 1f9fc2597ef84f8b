// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"net"

	"github.com/bassosimone/safeconn"
)

// ConnectInfo describes the connection a request arrived on.
//
// [NewRequest] inserts a ConnectInfo into the request extensions when the
// server is configured with [ConnContext]. Extract it using [Extension]:
//
//	ext := extract.Extension[extract.ConnectInfo]{}
type ConnectInfo struct {
	// LocalAddr is the server side address.
	LocalAddr string

	// Network is the network protocol (e.g., "tcp").
	Network string

	// RemoteAddr is the client side address.
	RemoteAddr string
}

func newConnectInfo(conn net.Conn) ConnectInfo {
	return ConnectInfo{
		LocalAddr:  safeconn.LocalAddr(conn),
		Network:    safeconn.Network(conn),
		RemoteAddr: safeconn.RemoteAddr(conn),
	}
}

type connContextKey struct{}

// ConnContext records conn in ctx.
//
// Assign this function to [http.Server.ConnContext] so that [NewRequest]
// can expose the connection metadata as a [ConnectInfo] extension.
func ConnContext(ctx context.Context, conn net.Conn) context.Context {
	return context.WithValue(ctx, connContextKey{}, conn)
}

func connFromContext(ctx context.Context) net.Conn {
	conn, _ := ctx.Value(connContextKey{}).(net.Conn)
	return conn
}
