package tools

import (
	"context"
	"sort"
	"time"

	"github.com/mugiliam/saasbench/internal/config"
	"github.com/mugiliam/saasbench/internal/workspace"
)

// UseCatalog sets the active catalog context. No other field changes.
func UseCatalog(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	if catalogName == "" {
		return state, errorf("catalog_name is required")
	}
	if _, ok := state.Catalogs[catalogName]; !ok {
		return state, errorf("Catalog '%s' does not exist", catalogName)
	}
	newState := state.WithActiveCatalog(catalogName)
	return newState, Response{"success": true, "active_catalog": catalogName}
}

// ListCatalogs lists all catalogs in the workspace, ordered by name.
func ListCatalogs(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	names := make([]string, 0, len(state.Catalogs))
	for name := range state.Catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	catalogList := make([]Response, 0, len(names))
	for _, name := range names {
		c := state.Catalogs[name]
		catalogList = append(catalogList, Response{
			"name":    c.Name,
			"owner":   c.Owner,
			"comment": c.Comment,
		})
	}
	return state, Response{"catalogs": catalogList}
}

// CreateCatalog creates a new catalog. Owner defaults from configuration;
// the only failure beyond a missing name is a collision.
func CreateCatalog(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	owner := args.strOr("owner", config.Config().DefaultOwner)
	comment := args.str("comment")

	if catalogName == "" {
		return state, errorf("catalog_name is required")
	}
	if _, ok := state.Catalogs[catalogName]; ok {
		return state, errorf("Catalog '%s' already exists", catalogName)
	}

	newCatalog := workspace.Catalog{
		Name:      catalogName,
		Owner:     owner,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	newState := state.WithCatalog(catalogName, newCatalog)
	return newState, Response{"success": true, "catalog": catalogName}
}
