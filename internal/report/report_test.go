package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/reha-shift/internal/calendarmonth"
	"github.com/tolga/reha-shift/internal/report"
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

func TestReport_H2ViolationWhenStrictHolidayWorked(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	staff := []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}}
	reqs := rostermodel.NewResolvedRequests()
	reqs.Set(0, 5, "HOLIDAY_PAID", 0)

	assignment := rostermodel.NewAssignment(1, cal.Days[len(cal.Days)-1])
	assignment.Set(0, 5, true)

	violations := report.Report(report.Input{
		Staff: staff, Calendar: cal, Requests: reqs, Taxonomy: baseTaxonomy(),
		Rules:      rostermodel.RuleConfig{H2: rostermodel.RuleSetting{Enabled: true, Weight: 10}},
		Assignment: assignment,
	})

	found := false
	for _, v := range violations {
		if v.Rule == rostermodel.RuleH2 && v.StaffID == "s1" && v.Day == 5 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReport_NoViolationsWhenRulesDisabled(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	staff := []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, Employment: rostermodel.EmploymentRegular}}
	assignment := rostermodel.NewAssignment(1, cal.Days[len(cal.Days)-1])

	violations := report.Report(report.Input{
		Staff: staff, Calendar: cal, Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: baseTaxonomy(), Rules: rostermodel.RuleConfig{}, Assignment: assignment,
	})

	assert.Empty(t, violations)
}
