package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/reha-shift/internal/rostermodel"
	"github.com/tolga/reha-shift/internal/taxonomy"
)

func sampleDefs() []taxonomy.RoleDefinition {
	return []taxonomy.RoleDefinition{
		{
			Role:         "HOLIDAY_PAID",
			InputSymbols: []string{"有", "有休"},
			IsHoliday:    true,
			Strict:       true,
			WorkCoef:     0,
			OutputSymbol: "有",
			ExcludedFromMonthlyCount: true,
		},
		{
			Role:         "STRICT_WORK",
			InputSymbols: []string{"○"},
			IsHoliday:    false,
			Strict:       true,
			WorkCoef:     1.0,
			OutputSymbol: "○",
		},
		{
			Role:         "WEAK_HOLIDAY",
			InputSymbols: []string{"希"},
			IsHoliday:    true,
			Strict:       false,
			WorkCoef:     0,
			OutputSymbol: "希",
		},
		{
			Role:         "HALF_HOLIDAY",
			InputSymbols: []string{"半"},
			IsHoliday:    true,
			Strict:       false,
			WorkCoef:     0.5,
			OutputSymbol: "半",
		},
	}
}

func TestBuild_ResolvesMultipleAliases(t *testing.T) {
	tax, err := taxonomy.Build(sampleDefs(), "/", "", "出")
	require.NoError(t, err)

	for _, sym := range []string{"有", "有休"} {
		role, ok := tax.Resolve(sym)
		require.True(t, ok)
		assert.Equal(t, rostermodel.Role("HOLIDAY_PAID"), role)
	}
}

func TestBuild_UnknownSymbolIsNotFound(t *testing.T) {
	tax, err := taxonomy.Build(sampleDefs(), "/", "", "出")
	require.NoError(t, err)
	_, ok := tax.Resolve("???")
	assert.False(t, ok)
}

func TestBuild_RejectsReservedRoleCollision(t *testing.T) {
	defs := []taxonomy.RoleDefinition{{Role: rostermodel.RoleWorkDefault, WorkCoef: 1.0}}
	_, err := taxonomy.Build(defs, "/", "", "出")
	assert.Error(t, err)
}

func TestBuild_RejectsInvalidCoefficient(t *testing.T) {
	defs := []taxonomy.RoleDefinition{{Role: "BAD", WorkCoef: 0.3}}
	_, err := taxonomy.Build(defs, "/", "", "出")
	assert.Error(t, err)
}

func TestRoleClasses(t *testing.T) {
	tax, err := taxonomy.Build(sampleDefs(), "/", "", "出")
	require.NoError(t, err)

	paid, _ := tax.Behavior("HOLIDAY_PAID")
	assert.True(t, paid.IsStrictHoliday())
	assert.True(t, paid.IsFullHoliday())
	assert.True(t, paid.ExcludedFromMonthlyCount)

	weak, _ := tax.Behavior("WEAK_HOLIDAY")
	assert.True(t, weak.IsWeakHoliday())

	half, _ := tax.Behavior("HALF_HOLIDAY")
	assert.True(t, half.IsHalfHoliday())

	work, _ := tax.Behavior("STRICT_WORK")
	assert.True(t, work.IsStrictWork())
}
