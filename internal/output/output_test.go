package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/reha-shift/internal/calendarmonth"
	"github.com/tolga/reha-shift/internal/output"
	"github.com/tolga/reha-shift/internal/rostermodel"
)

func taxonomy() rostermodel.Taxonomy {
	return rostermodel.Taxonomy{
		InputToRole: map[string]rostermodel.Role{
			"有": "HOLIDAY_PAID",
			"△": "HALF_HOLIDAY",
		},
		Behaviors: map[rostermodel.Role]rostermodel.RoleBehavior{
			"HOLIDAY_PAID":                 {Role: "HOLIDAY_PAID", IsHoliday: true, Strict: true, OutputSymbol: "有"},
			"HALF_HOLIDAY":                 {Role: "HALF_HOLIDAY", IsHoliday: true, WorkCoef: 0.5, OutputSymbol: "△"},
			rostermodel.RoleHolidayDefault: {Role: rostermodel.RoleHolidayDefault, IsHoliday: true, Strict: true, OutputSymbol: "/"},
			rostermodel.RoleWorkDefault:    {Role: rostermodel.RoleWorkDefault, OutputSymbol: ""},
			rostermodel.RoleWorkFromWeak:   {Role: rostermodel.RoleWorkFromWeak, OutputSymbol: "△出"},
		},
	}
}

func TestCellSymbol_OffDayWithNoRoleUsesHolidayDefault(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)
	staff := []rostermodel.Staff{{ID: "s1"}}
	assignment := rostermodel.NewAssignment(1, cal.Days[len(cal.Days)-1])

	grid := output.ScheduleGrid(output.Input{
		Staff: staff, Calendar: cal, Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: taxonomy(), Assignment: assignment,
	})

	assert.Equal(t, "/", grid[0].Symbol)
}

func TestCellSymbol_WorkedHalfHolidayUsesWorkFromWeak(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)
	staff := []rostermodel.Staff{{ID: "s1"}}
	reqs := rostermodel.NewResolvedRequests()
	reqs.Set(0, 3, "HALF_HOLIDAY", 0.5)
	assignment := rostermodel.NewAssignment(1, cal.Days[len(cal.Days)-1])
	assignment.Set(0, 3, true)

	grid := output.ScheduleGrid(output.Input{
		Staff: staff, Calendar: cal, Requests: reqs, Taxonomy: taxonomy(), Assignment: assignment,
	})

	var symbol string
	for _, c := range grid {
		if c.Day == 3 {
			symbol = c.Symbol
		}
	}
	assert.Equal(t, "△出", symbol)
}

func TestDailySummaries_HalfHolidayContributesHalfHeadcount(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)
	staff := []rostermodel.Staff{{ID: "s1", Profession: rostermodel.ProfessionPT, DailyUnits: 10}}
	reqs := rostermodel.NewResolvedRequests()
	reqs.Set(0, 3, "HALF_HOLIDAY", 0.5)
	assignment := rostermodel.NewAssignment(1, cal.Days[len(cal.Days)-1])
	assignment.Set(0, 3, true)

	summaries := output.DailySummaries(output.Input{
		Staff: staff, Calendar: cal, Requests: reqs, Taxonomy: taxonomy(), Assignment: assignment,
	})

	for _, s := range summaries {
		if s.Day == 3 {
			assert.Equal(t, 0.5, s.HeadcountTotal)
		}
	}
}

func TestLastWeekHolidays_FullOffDayCountsAsOne(t *testing.T) {
	cal, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)
	staff := []rostermodel.Staff{{ID: "s1"}}
	assignment := rostermodel.NewAssignment(1, cal.Days[len(cal.Days)-1])

	carries := output.LastWeekHolidays(output.Input{
		Staff: staff, Calendar: cal, Requests: rostermodel.NewResolvedRequests(),
		Taxonomy: taxonomy(), Assignment: assignment,
	})

	lastWeek := cal.Weeks[len(cal.Weeks)-1]
	assert.Equal(t, float64(len(lastWeek.Days)), carries[0].LastWeekHolidays)
}
