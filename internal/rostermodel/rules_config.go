package rostermodel

// RuleSetting is one entry in the rule catalog (spec.md §9 Design
// Notes: "expose rules as an enumerated catalog keyed by rule-id with
// fields {enabled, weight, extras...}").
type RuleSetting struct {
	Enabled bool
	Weight  int
}

// RuleConfig is the §6 input `rule_config`: on/off switches per rule
// plus weights and the tolerance τ.
type RuleConfig struct {
	H1 RuleSetting // P1 monthly holiday target (w_H1)
	H2 RuleSetting // P2 strict leave respect (w_H2)
	H3 RuleSetting // P3 manager presence (w_H3)
	H5 RuleSetting // P4 weekend caps (w_H5)
	S4 RuleSetting // P6 weak leave respect (w_S4)
	S0 RuleSetting // P7 weekly rest, 7-day weeks (w_S0)
	S2 RuleSetting // P7 weekly rest, short weeks (w_S2)
	S1a RuleSetting // P8 weekend headcount, combined (w_S1a)
	S1b RuleSetting // P8 weekend headcount, per-profession (w_S1b)
	S1c RuleSetting // P8 weekend headcount, ST (w_S1c)
	S3 RuleSetting // P9 outpatient co-absence (w_S3)
	S5 RuleSetting // P10 recovery-ward coverage (w_S5)
	S6 RuleSetting // P11 per-profession workload leveling (w_S6)
	S6Heavy RuleSetting // P11 alternate weight (w_S6_heavy)
	S7 RuleSetting // P12 consecutive-workday cap (w_S7)

	// Tolerance is τ, used by P8's S1b band.
	Tolerance int

	// TriageWeight is w_tri, the improver's weak-holiday move cost
	// (spec.md §4.5 step 2c).
	TriageWeight int
}

// ProfessionTargets is `targets`: `{day_type} -> {pt, ot, st} -> int`.
type ProfessionTargets struct {
	PT int
	OT int
	ST int
}

// Targets is the §6 input `targets`.
type Targets map[DayType]ProfessionTargets

// EventUnits is the §6 input `event_units`:
// `{scope in {all, pt, ot, st}} -> (day -> int)`.
type EventUnits struct {
	All map[int]int
	PT  map[int]int
	OT  map[int]int
	ST  map[int]int
}

// ForProfession returns the per-day event units configured for the
// given profession's scope (empty map if unconfigured).
func (e EventUnits) ForProfession(p Profession) map[int]int {
	switch p {
	case ProfessionPT:
		return e.PT
	case ProfessionOT:
		return e.OT
	case ProfessionST:
		return e.ST
	default:
		return nil
	}
}
