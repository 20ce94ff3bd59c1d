package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tolga/reha-shift/internal/request"
	"github.com/tolga/reha-shift/internal/rostermodel"
)

func buildTaxonomy() rostermodel.Taxonomy {
	return rostermodel.Taxonomy{
		InputToRole: map[string]rostermodel.Role{
			"有": "HOLIDAY_PAID",
			"○": "STRICT_WORK",
		},
		Behaviors: map[rostermodel.Role]rostermodel.RoleBehavior{
			"HOLIDAY_PAID": {Role: "HOLIDAY_PAID", IsHoliday: true, Strict: true, WorkCoef: 0},
			"STRICT_WORK":  {Role: "STRICT_WORK", IsHoliday: false, Strict: true, WorkCoef: 1.0},
		},
	}
}

func TestResolve_DropsUnknownStaff(t *testing.T) {
	staff := []rostermodel.Staff{{ID: "s1"}}
	raw := rostermodel.RawRequestTable{"ghost": {5: "有"}}

	resolved, warnings := request.Resolve(staff, raw, buildTaxonomy())

	assert.Empty(t, resolved.RoleOf)
	assert.Len(t, warnings, 1)
	assert.Equal(t, rostermodel.RuleWarn, warnings[0].Rule)
}

func TestResolve_DropsUnknownSymbol(t *testing.T) {
	staff := []rostermodel.Staff{{ID: "s1"}}
	raw := rostermodel.RawRequestTable{"s1": {5: "???"}}

	resolved, warnings := request.Resolve(staff, raw, buildTaxonomy())

	_, ok := resolved.Role(0, 5)
	assert.False(t, ok)
	assert.Len(t, warnings, 1)
}

func TestResolve_ResolvesRoleAndCoefficient(t *testing.T) {
	staff := []rostermodel.Staff{{ID: "s1"}}
	raw := rostermodel.RawRequestTable{"s1": {5: "有", 6: "○"}}

	resolved, warnings := request.Resolve(staff, raw, buildTaxonomy())

	assert.Empty(t, warnings)
	role, ok := resolved.Role(0, 5)
	assert.True(t, ok)
	assert.Equal(t, rostermodel.Role("HOLIDAY_PAID"), role)
	assert.Equal(t, 0.0, resolved.Coef(0, 5))
	assert.Equal(t, 1.0, resolved.Coef(0, 6))
}

func TestResolve_DefaultCoefficientWhenNoRequest(t *testing.T) {
	staff := []rostermodel.Staff{{ID: "s1"}}
	resolved, _ := request.Resolve(staff, nil, buildTaxonomy())
	assert.Equal(t, 1.0, resolved.Coef(0, 1))
}
