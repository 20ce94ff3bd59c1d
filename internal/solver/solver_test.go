package solver

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/stretchr/testify/assert"
)

func TestDayCount_EmptyShifts(t *testing.T) {
	assert.Equal(t, 0, dayCount(nil))
}

func TestDayCount_UsesUnusedZeroIndexConvention(t *testing.T) {
	shifts := [][]cpmodel.BoolVar{
		make([]cpmodel.BoolVar, 29), // index 0 unused, days 1..28
	}
	assert.Equal(t, 28, dayCount(shifts))
}
