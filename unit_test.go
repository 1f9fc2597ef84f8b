// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	// Test that Unit zero value is usable
	var u Unit
	assert.Equal(t, Unit{}, u)

	// Test that Unit values are equal
	u1 := Unit{}
	u2 := Unit{}
	assert.Equal(t, u1, u2)
}

func TestUnitExtractParts(t *testing.T) {
	value, rejection := Unit{}.ExtractParts(newTestParts("/", nil))

	assert.Equal(t, Unit{}, value)
	assert.False(t, Rejected(rejection))
}

func TestInfallible(t *testing.T) {
	assert.False(t, Rejected(Infallible{}))
	assert.Equal(t, "infallible", Infallible{}.Error())
}
