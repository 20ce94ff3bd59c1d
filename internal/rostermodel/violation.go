package rostermodel

// Violation is a Violation Record (spec.md §3, §4.6). StaffID/Day are
// empty/0 when the rule-id is day-only or staff-only respectively,
// matching spec.md's "(rule-id, staff or `-`, day or `-`, ...)".
type Violation struct {
	Rule            RuleID
	StaffID         string
	Day             int
	HighlightedDays []int
	Detail          string
}
