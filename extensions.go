// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"context"
	"reflect"
)

// Extensions is a typed side-channel map attached to a request head.
//
// Each entry is keyed by the type of its value, so there is at most one
// value per type. Use [InsertExtension], [GetExtension] and [RemoveExtension]
// to access the map.
//
// The zero value is not ready to use; construct using [NewExtensions].
type Extensions struct {
	values map[reflect.Type]any
}

// NewExtensions creates an empty [*Extensions].
func NewExtensions() *Extensions {
	return &Extensions{values: make(map[reflect.Type]any)}
}

// Len returns the number of values in the map.
func (e *Extensions) Len() int {
	return len(e.values)
}

// InsertExtension stores value in ext, returning the previous value of
// the same type, if any.
func InsertExtension[T any](ext *Extensions, value T) (T, bool) {
	key := reflect.TypeFor[T]()
	prev, found := ext.values[key]
	ext.values[key] = value
	old, _ := prev.(T)
	return old, found
}

// GetExtension returns the value of type T stored in ext, if any.
func GetExtension[T any](ext *Extensions) (T, bool) {
	value, found := ext.values[reflect.TypeFor[T]()]
	out, _ := value.(T)
	return out, found
}

// RemoveExtension removes and returns the value of type T stored in ext, if any.
func RemoveExtension[T any](ext *Extensions) (T, bool) {
	key := reflect.TypeFor[T]()
	value, found := ext.values[key]
	delete(ext.values, key)
	out, _ := value.(T)
	return out, found
}

// contextExtension is an immutable list of values attached to a context.
type contextExtension struct {
	key   reflect.Type
	value any
	next  *contextExtension
}

type contextExtensionKey struct{}

// ContextWithExtension returns a copy of ctx carrying value.
//
// Middleware running before a [*Handler] uses this function to attach
// side-channel data; [NewRequest] moves it into the [*Extensions] of the
// request head, where [Extension] extracts it. When the same type is
// attached more than once, the most recent value wins.
func ContextWithExtension[T any](ctx context.Context, value T) context.Context {
	head, _ := ctx.Value(contextExtensionKey{}).(*contextExtension)
	return context.WithValue(ctx, contextExtensionKey{}, &contextExtension{
		key:   reflect.TypeFor[T](),
		value: value,
		next:  head,
	})
}

func extensionsFromContext(ctx context.Context) *Extensions {
	ext := NewExtensions()
	head, _ := ctx.Value(contextExtensionKey{}).(*contextExtension)
	for entry := head; entry != nil; entry = entry.next {
		if _, found := ext.values[entry.key]; !found {
			ext.values[entry.key] = entry.value
		}
	}
	return ext
}
