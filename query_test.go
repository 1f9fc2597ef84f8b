// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listItemsQuery struct {
	Page   int      `query:"page"`
	Filter string   `query:"filter"`
	Tags   []string `query:"tag"`
}

func TestQuery(t *testing.T) {
	t.Run("decodes the query string", func(t *testing.T) {
		parts := newTestParts("/items?page=2&filter=open&tag=a&tag=b&unknown=1", nil)

		value, rejection := NewQuery[listItemsQuery]().ExtractParts(parts)

		require.Nil(t, rejection)
		assert.Equal(t, listItemsQuery{Page: 2, Filter: "open", Tags: []string{"a", "b"}}, value)
	})

	t.Run("empty query string", func(t *testing.T) {
		value, rejection := NewQuery[listItemsQuery]().ExtractParts(newTestParts("/items", nil))

		require.Nil(t, rejection)
		assert.Equal(t, listItemsQuery{}, value)
	})

	t.Run("conversion failure", func(t *testing.T) {
		parts := newTestParts("/items?page=two", nil)

		value, rejection := NewQuery[listItemsQuery]().ExtractParts(parts)

		require.NotNil(t, rejection)
		assert.Equal(t, listItemsQuery{}, value)
		assert.Equal(t, []string{"page"}, rejection.Fields)
		assert.Equal(t, "malformed query parameters: page", rejection.Error())
		assert.Equal(t, http.StatusBadRequest, rejection.StatusCode())
		assert.Equal(t, ErrorTypeSerialization, rejection.ErrorType())
	})

	t.Run("URI taken", func(t *testing.T) {
		parts := newTestParts("/items?page=2", nil)
		parts.TakeURI()

		_, rejection := NewQuery[listItemsQuery]().ExtractParts(parts)

		require.NotNil(t, rejection)
		assert.Error(t, rejection.Unwrap())
	})
}
