package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/reha-shift/internal/calendarmonth"
	"github.com/tolga/reha-shift/internal/rostermodel"
	"github.com/tolga/reha-shift/internal/rules"
)

func reservedTaxonomy() rostermodel.Taxonomy {
	return rostermodel.Taxonomy{
		InputToRole: map[string]rostermodel.Role{},
		Behaviors: map[rostermodel.Role]rostermodel.RoleBehavior{
			rostermodel.RoleHolidayDefault: {Role: rostermodel.RoleHolidayDefault, IsHoliday: true},
			rostermodel.RoleWorkDefault:    {Role: rostermodel.RoleWorkDefault},
			rostermodel.RoleWorkFromWeak:   {Role: rostermodel.RoleWorkFromWeak},
		},
	}
}

func TestBuild_RejectsNegativeRuleWeight(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	_, err = rules.Build(rules.BuildInput{
		Staff:    []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}},
		Calendar: cal,
		Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: reservedTaxonomy(),
		Rules:    rostermodel.RuleConfig{H1: rostermodel.RuleSetting{Enabled: true, Weight: -5}},
	})

	assert.True(t, errors.Is(err, rules.ErrNegativeWeight))
}

func TestBuild_RejectsMissingReservedRole(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	_, err = rules.Build(rules.BuildInput{
		Staff:    []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}},
		Calendar: cal,
		Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: rostermodel.Taxonomy{InputToRole: map[string]rostermodel.Role{}, Behaviors: map[rostermodel.Role]rostermodel.RoleBehavior{}},
		Rules:    rostermodel.RuleConfig{},
	})

	assert.True(t, errors.Is(err, rules.ErrMissingReservedRole))
}

func TestBuild_RejectsStaffMissingRequiredFields(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	_, err = rules.Build(rules.BuildInput{
		Staff:    []rostermodel.Staff{{ID: "s1"}},
		Calendar: cal,
		Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: reservedTaxonomy(),
		Rules:    rostermodel.RuleConfig{},
	})

	assert.True(t, errors.Is(err, rules.ErrMissingStaffField))
}

func TestBuild_AcceptsValidInput(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	eng, err := rules.Build(rules.BuildInput{
		Staff:    []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular, DailyUnits: 8}},
		Calendar: cal,
		Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: reservedTaxonomy(),
		Rules:    rostermodel.RuleConfig{H1: rostermodel.RuleSetting{Enabled: true, Weight: 10}},
	})

	require.NoError(t, err)
	assert.Len(t, eng.Staff(), 1)
	assert.NotNil(t, eng.Builder())
}
