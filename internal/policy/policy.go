// Description: This file contains the advisory policy checks consulted by an
// agent harness before mutating the workspace. The checks are side-effect
// free and fail open: actions with an unrecognized type pass trivially. The
// tool library does not gate on these checks; they document the rules a
// well-behaved agent is expected to follow.
package policy

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/saasbench/internal/config"
	"github.com/mugiliam/saasbench/internal/workspace"
)

const MaxNameLength = 255

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var v *validator.Validate

// resourceNameValidator checks if the given name is alphanumeric with underscores.
func resourceNameValidator(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

func init() {
	v = validator.New()
	if err := v.RegisterValidation("resourceNameValidator", resourceNameValidator); err != nil {
		panic(err)
	}
}

func validateName(kind, name string) (bool, string) {
	if name == "" {
		return false, fmt.Sprintf("%s name cannot be empty", kind)
	}
	if err := v.Var(name, fmt.Sprintf("max=%d", MaxNameLength)); err != nil {
		return false, fmt.Sprintf("%s name exceeds maximum length of %d", kind, MaxNameLength)
	}
	if err := v.Var(name, "resourceNameValidator"); err != nil {
		return false, fmt.Sprintf("%s name must contain only alphanumeric characters and underscores", kind)
	}
	return true, ""
}

// ValidateCatalogName validates a catalog name against naming conventions.
func ValidateCatalogName(name string) (bool, string) {
	return validateName("Catalog", name)
}

// ValidateSchemaName validates a schema name against naming conventions.
func ValidateSchemaName(name string) (bool, string) {
	return validateName("Schema", name)
}

// ValidateTableName validates a table name against naming conventions.
func ValidateTableName(name string) (bool, string) {
	return validateName("Table", name)
}

// ValidateClusterCount checks the workspace-wide cluster ceiling.
func ValidateClusterCount(state *workspace.State) (bool, string) {
	limit := config.Config().MaxClustersPerWorkspace
	if len(state.Clusters) >= limit {
		return false, fmt.Sprintf("Maximum number of clusters (%d) exceeded", limit)
	}
	return true, ""
}

// Action is the unit submitted to ValidateAction: a tool name plus its
// arguments.
type Action struct {
	Type string
	Args map[string]any
}

// ValidateAction dispatches on the action type to the relevant check.
// Unrecognized action types pass validation.
func ValidateAction(state *workspace.State, action Action) (bool, string) {
	switch action.Type {
	case "create_catalog":
		if name, ok := action.Args["catalog_name"].(string); ok && name != "" {
			return ValidateCatalogName(name)
		}
	case "create_schema":
		if name, ok := action.Args["schema_name"].(string); ok && name != "" {
			return ValidateSchemaName(name)
		}
	case "create_table":
		if name, ok := action.Args["table_name"].(string); ok && name != "" {
			return ValidateTableName(name)
		}
	case "create_cluster":
		return ValidateClusterCount(state)
	}
	return true, ""
}
