// Package taxonomy builds and resolves the Symbol Taxonomy (spec.md
// §3, §4.2, component C2): input-symbol -> role -> behavior. Roles are
// encoded as a closed lookup table, per spec.md §9 Design Notes
// ("encode roles as a closed variant with behavior data; the
// input->role resolver is a prebuilt table"), the same
// enum-plus-struct shape the teacher uses for BreakType/BreakConfig.
package taxonomy

import (
	"fmt"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// RoleDefinition is one configured role entry, keyed by the caller when
// building a Builder.
type RoleDefinition struct {
	Role          rostermodel.Role
	InputSymbols  []string
	IsHoliday     bool
	Strict        bool
	WorkCoef      float64
	OutputSymbol  string
	ExcludedFromMonthlyCount bool
}

// Build assembles a rostermodel.Taxonomy from configured role
// definitions plus the three reserved roles (HOLIDAY_DEFAULT,
// WORK_DEFAULT, WORK_FROM_WEAK). It returns an error if a definition
// reuses a reserved role id, has a work coefficient outside
// {0, 0.5, 0.7, 1.0}, or maps an input symbol already mapped to
// another role.
func Build(defs []RoleDefinition, holidayDefaultOutput, workDefaultOutput, workFromWeakOutput string) (rostermodel.Taxonomy, error) {
	tax := rostermodel.Taxonomy{
		InputToRole: make(map[string]rostermodel.Role),
		Behaviors:   make(map[rostermodel.Role]rostermodel.RoleBehavior),
	}

	validCoefs := map[float64]bool{0: true, 0.5: true, 0.7: true, 1.0: true}

	for _, def := range defs {
		if def.Role == rostermodel.RoleHolidayDefault || def.Role == rostermodel.RoleWorkDefault || def.Role == rostermodel.RoleWorkFromWeak {
			return rostermodel.Taxonomy{}, fmt.Errorf("taxonomy: role %q collides with a reserved role", def.Role)
		}
		if !validCoefs[def.WorkCoef] {
			return rostermodel.Taxonomy{}, fmt.Errorf("taxonomy: role %q has invalid work coefficient %v", def.Role, def.WorkCoef)
		}
		tax.Behaviors[def.Role] = rostermodel.RoleBehavior{
			Role:                     def.Role,
			IsHoliday:                def.IsHoliday,
			Strict:                   def.Strict,
			WorkCoef:                 def.WorkCoef,
			OutputSymbol:             def.OutputSymbol,
			ExcludedFromMonthlyCount: def.ExcludedFromMonthlyCount,
		}
		for _, sym := range def.InputSymbols {
			if existing, ok := tax.InputToRole[sym]; ok && existing != def.Role {
				return rostermodel.Taxonomy{}, fmt.Errorf("taxonomy: input symbol %q already mapped to role %q", sym, existing)
			}
			tax.InputToRole[sym] = def.Role
		}
	}

	tax.Behaviors[rostermodel.RoleHolidayDefault] = rostermodel.RoleBehavior{
		Role:         rostermodel.RoleHolidayDefault,
		IsHoliday:    true,
		WorkCoef:     0,
		OutputSymbol: holidayDefaultOutput,
	}
	tax.Behaviors[rostermodel.RoleWorkDefault] = rostermodel.RoleBehavior{
		Role:         rostermodel.RoleWorkDefault,
		IsHoliday:    false,
		WorkCoef:     1.0,
		OutputSymbol: workDefaultOutput,
	}
	tax.Behaviors[rostermodel.RoleWorkFromWeak] = rostermodel.RoleBehavior{
		Role:         rostermodel.RoleWorkFromWeak,
		IsHoliday:    false,
		WorkCoef:     1.0,
		OutputSymbol: workFromWeakOutput,
	}

	return tax, nil
}
