package rules

import "errors"

// ErrNegativeWeight is a ConfigurationError (spec.md §7): a rule
// weight supplied in rule_config was negative.
var ErrNegativeWeight = errors.New("rules: rule weight must be non-negative")

// ErrMissingReservedRole is a ConfigurationError (spec.md §7): the
// taxonomy is missing one of the three reserved roles (HOLIDAY_DEFAULT,
// WORK_DEFAULT, WORK_FROM_WEAK) used for output-symbol fallback.
var ErrMissingReservedRole = errors.New("rules: taxonomy is missing a reserved role")

// ErrMissingStaffField is a ConfigurationError (spec.md §7): a
// required staff field (id, profession, employment kind) was unset.
// DailyUnits is not checked: it is a plain int and 0 is accepted.
var ErrMissingStaffField = errors.New("rules: staff record is missing a required field")
