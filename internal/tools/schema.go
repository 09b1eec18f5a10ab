package tools

import (
	"context"
	"sort"
	"time"

	"github.com/mugiliam/saasbench/internal/config"
	"github.com/mugiliam/saasbench/internal/workspace"
)

// ListSchemas lists the schemas of one catalog, ordered by canonical key.
func ListSchemas(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	if catalogName == "" {
		return state, errorf("catalog_name is required")
	}
	if _, ok := state.Catalogs[catalogName]; !ok {
		return state, errorf("Catalog '%s' does not exist", catalogName)
	}

	keys := make([]string, 0, len(state.Schemas))
	for key, sc := range state.Schemas {
		if sc.CatalogName == catalogName {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	schemaList := make([]Response, 0, len(keys))
	for _, key := range keys {
		sc := state.Schemas[key]
		schemaList = append(schemaList, Response{
			"catalog_name": sc.CatalogName,
			"schema_name":  sc.SchemaName,
			"owner":        sc.Owner,
			"comment":      sc.Comment,
		})
	}
	return state, Response{"schemas": schemaList}
}

// CreateSchema creates a schema under an existing catalog, keyed by
// "catalog.schema".
func CreateSchema(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	schemaName := args.str("schema_name")
	owner := args.strOr("owner", config.Config().DefaultOwner)
	comment := args.str("comment")

	if catalogName == "" || schemaName == "" {
		return state, errorf("catalog_name and schema_name are required")
	}
	if _, ok := state.Catalogs[catalogName]; !ok {
		return state, errorf("Catalog '%s' does not exist", catalogName)
	}

	schemaKey := workspace.SchemaKey(catalogName, schemaName)
	if _, ok := state.Schemas[schemaKey]; ok {
		return state, errorf("Schema '%s' already exists", schemaKey)
	}

	newSchema := workspace.Schema{
		CatalogName: catalogName,
		SchemaName:  schemaName,
		Owner:       owner,
		Comment:     comment,
		CreatedAt:   time.Now(),
	}
	newState := state.WithSchema(schemaKey, newSchema)
	return newState, Response{"success": true, "schema": schemaKey}
}
