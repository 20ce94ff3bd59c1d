package rules

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// oneMinus returns the linear expression `1 - v`, used throughout the
// penalty rules below wherever spec.md writes `1 - x[s,d]`.
func oneMinus(v cpmodel.BoolVar) *cpmodel.LinearExpr {
	return cpmodel.NewLinearExpr().AddTerm(v, -1).AddConstant(1)
}

// sumBoolsScaled returns coeff*Σ vs as a linear expression, accumulated
// directly with the scaled coefficient rather than built then doubled
// (LinearExpr exposes no term-rewrite API to scale a finished sum).
func sumBoolsScaled(vs []cpmodel.BoolVar, coeff int64) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, v := range vs {
		expr = expr.AddTerm(v, coeff)
	}
	return expr
}

// sumOneMinusScaled returns coeff*Σ (1-vs[i]), expanded term by term as
// `-coeff*v + coeff` per variable rather than scaling a built sum.
func sumOneMinusScaled(vs []cpmodel.BoolVar, coeff int64) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, v := range vs {
		expr = expr.AddTerm(v, -coeff).AddConstant(coeff)
	}
	return expr
}

// absDeviation introduces an integer variable constrained (via
// add_abs_eq, spec.md §9's CP abstraction) to equal |expr|, bounded by
// [0, bound].
func (m *model) absDeviation(name string, expr cpmodel.LinearArgument, bound int64) cpmodel.IntVar {
	v := m.b.NewIntVar(0, bound).WithName(name)
	m.b.AddAbsEquality(v, expr)
	return v
}

// positivePart introduces an integer variable constrained to equal
// max(0, expr), bounded above by `bound`. Since every call site only
// ever adds the result into a minimized objective with a non-negative
// weight, the solver is free to leave slack above max(0, expr) but
// never has incentive to — the same `over_limit >= ...; over_limit >=
// 0` shape the original prototype uses for every cap penalty.
func (m *model) positivePart(name string, expr cpmodel.LinearArgument, bound int64) cpmodel.IntVar {
	v := m.b.NewIntVar(0, bound).WithName(name)
	m.b.AddLessOrEqual(expr, v)
	return v
}

// indicatorAtLeastOne introduces a boolean variable constrained to 1
// whenever `expr >= 1`, given the caller-supplied known upper bound on
// expr. The single constraint `expr <= maxValue*indicator` is tight in
// both directions precisely because maxValue is expr's true ceiling:
// when indicator=0 it forces expr<=0, and when 1<=expr<=maxValue it
// forces indicator=1. Minimization drives indicator to 0 whenever
// expr<=0 is feasible. The same shape recurs for P3's "no manager
// assigned" and P7's "below weekly-rest threshold" checks.
func (m *model) indicatorAtLeastOne(name string, expr cpmodel.LinearArgument, maxValue int64) cpmodel.BoolVar {
	indicator := m.b.NewBoolVar().WithName(name)
	scaled := cpmodel.NewLinearExpr().AddTerm(indicator, maxValue)
	m.b.AddLessOrEqual(expr, scaled)
	return indicator
}

// indicatorAllTrue introduces a boolean variable constrained to 1
// whenever every var in vars is 1 (i.e. Σvars >= len(vars)). It
// reduces to indicatorAtLeastOne over `len(vars) - Σvars`, whose
// ceiling is exactly len(vars) since the sum cannot go negative.
func (m *model) indicatorAllTrue(name string, vars []cpmodel.BoolVar) cpmodel.BoolVar {
	n := int64(len(vars))
	deficit := sumBoolsScaled(vars, -1).AddConstant(n)
	return m.indicatorAtLeastOne(name, deficit, n)
}

// addPenalty appends a weighted linear term to the objective and
// records its bookkeeping for later reporting/debugging.
func (m *model) addPenalty(rule string, weight int64, term cpmodel.LinearArgument) {
	if weight == 0 {
		return
	}
	m.objective = m.objective.AddTerm(term, weight)
	m.penaltyKinds = append(m.penaltyKinds, rule)
}
