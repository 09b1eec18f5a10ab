// Description: This file contains the evaluation engine: a structural diff
// of a final workspace state against a goal state. Every goal entity present
// in the final state is a milestone; goal entities absent are differences;
// permissions granted beyond the goal are minefields, reported separately
// and deliberately excluded from the success computation.
package evaluation

import (
	"fmt"
	"maps"
	"sort"

	"github.com/mugiliam/saasbench/internal/workspace"
)

// TableIssue describes one incorrect table: either a column schema mismatch
// or insufficient row data.
type TableIssue struct {
	Table        string            `json:"table"`
	Issue        string            `json:"issue"`
	Expected     map[string]string `json:"expected,omitempty"`
	Actual       map[string]string `json:"actual,omitempty"`
	ExpectedRows int               `json:"expected_rows,omitempty"`
	ActualRows   int               `json:"actual_rows,omitempty"`
}

// ExtraResources lists final-state resources beyond the goal. Informational
// only; extras are never penalized.
type ExtraResources struct {
	Catalogs []string `json:"catalogs,omitempty"`
	Tables   []string `json:"tables,omitempty"`
}

// Differences collects everything the final state got wrong or left out.
type Differences struct {
	MissingCatalogs    []string       `json:"missing_catalogs"`
	MissingSchemas     []string       `json:"missing_schemas"`
	MissingTables      []string       `json:"missing_tables"`
	MissingNotebooks   []string       `json:"missing_notebooks"`
	MissingPermissions []string       `json:"missing_permissions"`
	IncorrectTables    []TableIssue   `json:"incorrect_tables"`
	ExtraResources     ExtraResources `json:"extra_resources"`
}

// Result is the outcome of one evaluation.
type Result struct {
	Success             bool        `json:"success"`
	Score               float64     `json:"score"`
	MilestonesAchieved  []string    `json:"milestones_achieved"`
	MinefieldsTriggered []string    `json:"minefields_triggered"`
	Differences         Differences `json:"differences"`
}

type permissionTuple struct {
	principal string
	privilege string
	securable string
}

func permissionSet(perms []workspace.Permission) map[permissionTuple]struct{} {
	set := make(map[permissionTuple]struct{}, len(perms))
	for _, p := range perms {
		set[permissionTuple{p.Principal, p.Privilege, p.SecurableName}] = struct{}{}
	}
	return set
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func columnTypes(columns map[string]workspace.Column) map[string]string {
	types := make(map[string]string, len(columns))
	for name, col := range columns {
		types[name] = col.Type
	}
	return types
}

// Evaluate compares a final state to a goal state and scores task
// completion. Success requires every goal resource present, every goal table
// column-correct, and every goal permission granted; extra grants only
// trigger minefields.
func Evaluate(finalState, goalState *workspace.State) Result {
	differences := Differences{
		MissingCatalogs:    []string{},
		MissingSchemas:     []string{},
		MissingTables:      []string{},
		MissingNotebooks:   []string{},
		MissingPermissions: []string{},
		IncorrectTables:    []TableIssue{},
	}
	milestones := []string{}
	minefields := []string{}

	for _, name := range sortedKeys(goalState.Catalogs) {
		if _, ok := finalState.Catalogs[name]; !ok {
			differences.MissingCatalogs = append(differences.MissingCatalogs, name)
		} else {
			milestones = append(milestones, fmt.Sprintf("Catalog '%s' exists", name))
		}
	}

	for _, key := range sortedKeys(goalState.Schemas) {
		if _, ok := finalState.Schemas[key]; !ok {
			differences.MissingSchemas = append(differences.MissingSchemas, key)
		} else {
			milestones = append(milestones, fmt.Sprintf("Schema '%s' exists", key))
		}
	}

	for _, key := range sortedKeys(goalState.Tables) {
		goalTable := goalState.Tables[key]
		finalTable, ok := finalState.Tables[key]
		if !ok {
			differences.MissingTables = append(differences.MissingTables, key)
			continue
		}

		// Columns are compared as a name-keyed set: order does not matter,
		// attributes do.
		goalColumns := make(map[string]workspace.Column, len(goalTable.Columns))
		for _, col := range goalTable.Columns {
			goalColumns[col.Name] = col
		}
		finalColumns := make(map[string]workspace.Column, len(finalTable.Columns))
		for _, col := range finalTable.Columns {
			finalColumns[col.Name] = col
		}

		if !maps.Equal(goalColumns, finalColumns) {
			differences.IncorrectTables = append(differences.IncorrectTables, TableIssue{
				Table:    key,
				Issue:    "Column schema mismatch",
				Expected: columnTypes(goalColumns),
				Actual:   columnTypes(finalColumns),
			})
		} else {
			milestones = append(milestones, fmt.Sprintf("Table '%s' created with correct schema", key))
		}

		// Row content beyond count is not verified; the data check is
		// deliberately coarse.
		if len(goalTable.Data) > 0 {
			if len(finalTable.Data) < len(goalTable.Data) {
				differences.IncorrectTables = append(differences.IncorrectTables, TableIssue{
					Table:        key,
					Issue:        "Insufficient data rows",
					ExpectedRows: len(goalTable.Data),
					ActualRows:   len(finalTable.Data),
				})
			} else {
				milestones = append(milestones, fmt.Sprintf("Table '%s' has data inserted", key))
			}
		}
	}

	for _, path := range sortedKeys(goalState.Notebooks) {
		if _, ok := finalState.Notebooks[path]; !ok {
			differences.MissingNotebooks = append(differences.MissingNotebooks, path)
		} else {
			milestones = append(milestones, fmt.Sprintf("Notebook '%s' created", path))
		}
	}

	goalPermissions := permissionSet(goalState.Permissions)
	finalPermissions := permissionSet(finalState.Permissions)

	var missingPerms []string
	for tuple := range goalPermissions {
		if _, ok := finalPermissions[tuple]; !ok {
			missingPerms = append(missingPerms,
				fmt.Sprintf("%s - %s on %s", tuple.principal, tuple.privilege, tuple.securable))
		}
	}
	if len(missingPerms) > 0 {
		sort.Strings(missingPerms)
		differences.MissingPermissions = missingPerms
	} else {
		milestones = append(milestones, "All required permissions granted")
	}

	var extraCatalogs, extraTables []string
	for name := range finalState.Catalogs {
		if _, ok := goalState.Catalogs[name]; !ok {
			extraCatalogs = append(extraCatalogs, name)
		}
	}
	for key := range finalState.Tables {
		if _, ok := goalState.Tables[key]; !ok {
			extraTables = append(extraTables, key)
		}
	}
	sort.Strings(extraCatalogs)
	sort.Strings(extraTables)
	differences.ExtraResources = ExtraResources{Catalogs: extraCatalogs, Tables: extraTables}

	hasMissingResources := len(differences.MissingCatalogs) > 0 ||
		len(differences.MissingSchemas) > 0 ||
		len(differences.MissingTables) > 0 ||
		len(differences.MissingNotebooks) > 0
	success := !hasMissingResources &&
		len(differences.IncorrectTables) == 0 &&
		len(differences.MissingPermissions) == 0

	totalChecks := len(goalState.Catalogs) +
		len(goalState.Schemas) +
		len(goalState.Tables) +
		len(goalState.Notebooks) +
		len(goalState.Permissions)
	score := 1.0
	if totalChecks > 0 {
		score = float64(len(milestones)) / float64(totalChecks)
	}

	// Over-granted permissions trigger minefields but do not flip success.
	var extraPerms []string
	for tuple := range finalPermissions {
		if _, ok := goalPermissions[tuple]; !ok {
			extraPerms = append(extraPerms,
				fmt.Sprintf("%s - %s on %s", tuple.principal, tuple.privilege, tuple.securable))
		}
	}
	if len(extraPerms) > 0 {
		sort.Strings(extraPerms)
		for _, perm := range extraPerms {
			minefields = append(minefields, fmt.Sprintf("Unexpected permission granted: %s", perm))
		}
	}

	return Result{
		Success:             success,
		Score:               score,
		MilestonesAchieved:  milestones,
		MinefieldsTriggered: minefields,
		Differences:         differences,
	}
}
