// Package improve implements the local-search improver (spec.md §4.5):
// a bounded hill-climbing pass over a finalized CP assignment that
// trades a peak weekday's headcount for a trough weekday's, per
// profession per week, subject to move_is_safe.
package improve

import (
	"math"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

const maxOuterIterations = 100

// Improver holds the per-solve context the hill-climb needs: the same
// inputs the rule engine built its model from, operating here on the
// realized Assignment instead of CP decision variables.
type Improver struct {
	staff                []rostermodel.Staff
	calendar             rostermodel.CalendarMonth
	reqs                 rostermodel.ResolvedRequests
	tax                  rostermodel.Taxonomy
	cfg                  rostermodel.RuleConfig
	prevLastWeekHolidays map[string]float64

	byProfession map[rostermodel.Profession][]int
}

// New builds an Improver for one solve.
func New(staff []rostermodel.Staff, calendar rostermodel.CalendarMonth, reqs rostermodel.ResolvedRequests, tax rostermodel.Taxonomy, cfg rostermodel.RuleConfig, prevLastWeekHolidays map[string]float64) *Improver {
	byProf := make(map[rostermodel.Profession][]int, len(rostermodel.Professions))
	for idx, s := range staff {
		byProf[s.Profession] = append(byProf[s.Profession], idx)
	}
	return &Improver{
		staff:                staff,
		calendar:             calendar,
		reqs:                 reqs,
		tax:                  tax,
		cfg:                  cfg,
		prevLastWeekHolidays: prevLastWeekHolidays,
		byProfession:         byProf,
	}
}

// Run performs the bounded hill-climb of spec.md §4.5 and returns the
// (possibly unchanged) improved assignment.
func (im *Improver) Run(start rostermodel.Assignment) rostermodel.Assignment {
	current := start.Clone()
	best := im.secondaryScore(current)

	weekdaysByWeek := im.weekdaysByWeek()

	for iter := 0; iter < maxOuterIterations; iter++ {
		committed := false

		for widx, week := range im.calendar.Weeks {
			weekdays := weekdaysByWeek[widx]
			for _, prof := range rostermodel.Professions {
				members := im.byProfession[prof]
				weekdaysInWeek := weekdays
				if len(members) == 0 || len(weekdaysInWeek) < 2 {
					continue
				}

				dMax, dMin, countMax, countMin := im.peakAndTrough(current, members, weekdaysInWeek)
				if dMax == 0 || countMax <= countMin+1 {
					continue
				}

				for _, idx := range members {
					if !current.Get(idx, dMax) || current.Get(idx, dMin) {
						continue
					}
					if !im.candidateEligible(idx, dMax, dMin) {
						continue
					}

					trial := current.Clone()
					trial.Set(idx, dMax, false)
					trial.Set(idx, dMin, true)

					if !im.moveIsSafe(trial, idx, widx, week, dMax, dMin) {
						continue
					}

					moveCost := im.moveCost(idx, dMin)
					newScore := im.secondaryScore(trial)
					if newScore+moveCost < best {
						current = trial
						best = newScore
						committed = true
					}
				}
			}
		}

		if !committed {
			break
		}
	}

	return current
}

// candidateEligible checks spec.md §4.5 step 2's role preconditions
// independent of the swap's safety: the trough day's request must be
// absent or weak-holiday, and the peak day's request must not be
// strict-work.
func (im *Improver) candidateEligible(staffIdx, dMax, dMin int) bool {
	if role, ok := im.reqs.Role(staffIdx, dMin); ok {
		behavior, ok := im.tax.Behavior(role)
		if !ok || !behavior.IsWeakHoliday() {
			return false
		}
	}
	if role, ok := im.reqs.Role(staffIdx, dMax); ok {
		behavior, ok := im.tax.Behavior(role)
		if ok && behavior.IsStrictWork() {
			return false
		}
	}
	return true
}

// moveCost is w_tri when the trough-day role was a weak holiday, else 0.
func (im *Improver) moveCost(staffIdx, dMin int) float64 {
	role, ok := im.reqs.Role(staffIdx, dMin)
	if !ok {
		return 0
	}
	behavior, ok := im.tax.Behavior(role)
	if !ok || !behavior.IsWeakHoliday() {
		return 0
	}
	return float64(im.cfg.TriageWeight)
}

// weekdaysByWeek restricts each week's days to the calendar's weekdays
// (spec.md §4.5 step 1: "profession J with at least two weekdays in w").
func (im *Improver) weekdaysByWeek() [][]int {
	weekday := make(map[int]bool, len(im.calendar.Weekdays))
	for _, d := range im.calendar.Weekdays {
		weekday[d] = true
	}
	out := make([][]int, len(im.calendar.Weeks))
	for i, w := range im.calendar.Weeks {
		for _, d := range w.Days {
			if weekday[d] {
				out[i] = append(out[i], d)
			}
		}
	}
	return out
}

// peakAndTrough computes per-weekday headcount for the profession's
// members over the given days and returns the argmax/argmin day plus
// their counts.
func (im *Improver) peakAndTrough(a rostermodel.Assignment, members, days []int) (dMax, dMin, countMax, countMin int) {
	if len(days) == 0 {
		return 0, 0, 0, 0
	}
	countMax = -1
	countMin = math.MaxInt32
	for _, d := range days {
		c := 0
		for _, idx := range members {
			if a.Get(idx, d) {
				c++
			}
		}
		if c > countMax {
			countMax, dMax = c, d
		}
		if c < countMin {
			countMin, dMin = c, d
		}
	}
	return dMax, dMin, countMax, countMin
}

// secondaryScore is spec.md §4.5's cheap objective: the sum over
// professions of the population standard deviation of per-weekday
// assigned headcount.
func (im *Improver) secondaryScore(a rostermodel.Assignment) float64 {
	var total float64
	for _, prof := range rostermodel.Professions {
		members := im.byProfession[prof]
		if len(members) == 0 || len(im.calendar.Weekdays) == 0 {
			continue
		}
		counts := make([]float64, len(im.calendar.Weekdays))
		var mean float64
		for i, d := range im.calendar.Weekdays {
			c := 0
			for _, idx := range members {
				if a.Get(idx, d) {
					c++
				}
			}
			counts[i] = float64(c)
			mean += counts[i]
		}
		mean /= float64(len(counts))

		var variance float64
		for _, c := range counts {
			variance += (c - mean) * (c - mean)
		}
		variance /= float64(len(counts))
		total += math.Sqrt(variance)
	}
	return total
}
