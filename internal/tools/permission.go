package tools

import (
	"context"
	"fmt"

	"github.com/mugiliam/saasbench/internal/workspace"
)

// GrantPrivilege appends a permission unless the exact
// (principal, privilege, securable_name) tuple was already granted.
// Re-granting an identical tuple is an error, not a no-op.
func GrantPrivilege(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	privilege := args.str("privilege")
	securableType := args.str("securable_type")
	securableName := args.str("securable_name")
	principal := args.str("principal")

	if privilege == "" || securableType == "" || securableName == "" || principal == "" {
		return state, errorf("privilege, securable_type, securable_name, and principal are required")
	}

	for _, p := range state.Permissions {
		if p.Principal == principal && p.SecurableName == securableName && p.Privilege == privilege {
			return state, errorf("Permission already granted")
		}
	}

	newPermission := workspace.Permission{
		Principal:     principal,
		Privilege:     privilege,
		SecurableType: securableType,
		SecurableName: securableName,
	}
	newPermissions := append(append([]workspace.Permission{}, state.Permissions...), newPermission)
	newState := state.WithPermissions(newPermissions)

	return newState, Response{
		"success":    true,
		"permission": fmt.Sprintf("%s on %s to %s", privilege, securableName, principal),
	}
}

// RevokePrivilege removes every permission matching the
// (principal, privilege, securable_name) tuple. Revoking a tuple that was
// never granted is an error rather than a silent no-op.
func RevokePrivilege(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	privilege := args.str("privilege")
	securableName := args.str("securable_name")
	principal := args.str("principal")

	if privilege == "" || securableName == "" || principal == "" {
		return state, errorf("privilege, securable_name, and principal are required")
	}

	newPermissions := make([]workspace.Permission, 0, len(state.Permissions))
	for _, p := range state.Permissions {
		if p.Principal == principal && p.SecurableName == securableName && p.Privilege == privilege {
			continue
		}
		newPermissions = append(newPermissions, p)
	}

	if len(newPermissions) == len(state.Permissions) {
		return state, errorf("Permission not found")
	}

	newState := state.WithPermissions(newPermissions)
	return newState, Response{"success": true}
}
