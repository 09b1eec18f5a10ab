package tools

import (
	"context"
	"testing"

	"github.com/mugiliam/saasbench/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workspaceWithCatalog builds a fresh state holding one catalog, for tests
// that start below the catalog level.
func workspaceWithCatalog(t *testing.T, catalogName string) *workspace.State {
	t.Helper()
	state, resp := CreateCatalog(context.Background(), workspace.NewState(), Args{"catalog_name": catalogName})
	require.NotContains(t, resp, "error")
	return state
}

func TestCreateSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("create under existing catalog", func(t *testing.T) {
		state := workspaceWithCatalog(t, "main")
		newState, resp := CreateSchema(ctx, state, Args{"catalog_name": "main", "schema_name": "default"})
		require.NotContains(t, resp, "error")
		assert.Equal(t, "main.default", resp["schema"])

		sc, ok := newState.Schemas["main.default"]
		require.True(t, ok)
		assert.Equal(t, "main", sc.CatalogName)
		assert.Equal(t, "default", sc.SchemaName)
		assert.Equal(t, "admin", sc.Owner)
	})

	t.Run("missing parent catalog", func(t *testing.T) {
		state := workspace.NewState()
		newState, resp := CreateSchema(ctx, state, Args{"catalog_name": "main", "schema_name": "default"})
		assert.Equal(t, "Catalog 'main' does not exist", resp["error"])
		assert.Same(t, state, newState)
	})

	t.Run("missing arguments", func(t *testing.T) {
		state := workspaceWithCatalog(t, "main")
		_, resp := CreateSchema(ctx, state, Args{"catalog_name": "main"})
		assert.Equal(t, "catalog_name and schema_name are required", resp["error"])
	})

	t.Run("duplicate key", func(t *testing.T) {
		state := workspaceWithCatalog(t, "main")
		state, resp := CreateSchema(ctx, state, Args{"catalog_name": "main", "schema_name": "default"})
		require.NotContains(t, resp, "error")
		newState, resp := CreateSchema(ctx, state, Args{"catalog_name": "main", "schema_name": "default"})
		assert.Equal(t, "Schema 'main.default' already exists", resp["error"])
		assert.Same(t, state, newState)
	})
}

func TestListSchemas(t *testing.T) {
	ctx := context.Background()
	state := workspaceWithCatalog(t, "main")
	var resp Response
	state, resp = CreateCatalog(ctx, state, Args{"catalog_name": "other"})
	require.NotContains(t, resp, "error")

	for _, pair := range [][2]string{{"main", "bronze"}, {"main", "silver"}, {"other", "default"}} {
		state, resp = CreateSchema(ctx, state, Args{"catalog_name": pair[0], "schema_name": pair[1]})
		require.NotContains(t, resp, "error")
	}

	t.Run("filters by catalog, sorted", func(t *testing.T) {
		_, resp := ListSchemas(ctx, state, Args{"catalog_name": "main"})
		list, ok := resp["schemas"].([]Response)
		require.True(t, ok)
		require.Len(t, list, 2)
		assert.Equal(t, "bronze", list[0]["schema_name"])
		assert.Equal(t, "silver", list[1]["schema_name"])
	})

	t.Run("unknown catalog", func(t *testing.T) {
		_, resp := ListSchemas(ctx, state, Args{"catalog_name": "nope"})
		assert.Equal(t, "Catalog 'nope' does not exist", resp["error"])
	})

	t.Run("missing argument", func(t *testing.T) {
		_, resp := ListSchemas(ctx, state, Args{})
		assert.Equal(t, "catalog_name is required", resp["error"])
	})
}
