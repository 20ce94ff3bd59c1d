package roster_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tolga/reha-shift/internal/roster"
	"github.com/tolga/reha-shift/internal/rostermodel"
)

func baseTaxonomy() rostermodel.Taxonomy {
	return rostermodel.Taxonomy{
		InputToRole: map[string]rostermodel.Role{"有": "HOLIDAY_PAID"},
		Behaviors: map[rostermodel.Role]rostermodel.RoleBehavior{
			"HOLIDAY_PAID":                 {Role: "HOLIDAY_PAID", IsHoliday: true, Strict: true},
			rostermodel.RoleHolidayDefault: {Role: rostermodel.RoleHolidayDefault, IsHoliday: true, Strict: true},
			rostermodel.RoleWorkDefault:    {Role: rostermodel.RoleWorkDefault},
			rostermodel.RoleWorkFromWeak:   {Role: rostermodel.RoleWorkFromWeak},
		},
	}
}

func TestSolve_InvalidMonthIsConfigurationError(t *testing.T) {
	e := roster.New(zerolog.Nop(), 60*time.Second, 42)

	_, err := e.Solve(context.Background(), rostermodel.SolveInput{
		Year:       2026,
		Month:      13,
		StaffTable: []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}},
		Taxonomy:   baseTaxonomy(),
	})

	assert.True(t, errors.Is(err, roster.ErrConfiguration))
}

func TestSolve_MissingReservedRoleIsConfigurationError(t *testing.T) {
	e := roster.New(zerolog.Nop(), 60*time.Second, 42)

	_, err := e.Solve(context.Background(), rostermodel.SolveInput{
		Year:       2026,
		Month:      2,
		StaffTable: []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}},
		Taxonomy:   rostermodel.Taxonomy{InputToRole: map[string]rostermodel.Role{}, Behaviors: map[rostermodel.Role]rostermodel.RoleBehavior{}},
	})

	assert.True(t, errors.Is(err, roster.ErrConfiguration))
}

func TestSolve_NegativeRuleWeightIsConfigurationError(t *testing.T) {
	e := roster.New(zerolog.Nop(), 60*time.Second, 42)

	_, err := e.Solve(context.Background(), rostermodel.SolveInput{
		Year:       2026,
		Month:      2,
		StaffTable: []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}},
		Taxonomy:   baseTaxonomy(),
		Rules:      rostermodel.RuleConfig{H1: rostermodel.RuleSetting{Enabled: true, Weight: -1}},
	})

	assert.True(t, errors.Is(err, roster.ErrConfiguration))
}
