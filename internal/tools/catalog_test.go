package tools

import (
	"context"
	"testing"

	"github.com/mugiliam/saasbench/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("create and defaults", func(t *testing.T) {
		state := workspace.NewState()
		newState, resp := CreateCatalog(ctx, state, Args{"catalog_name": "main"})
		require.NotContains(t, resp, "error")
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "main", resp["catalog"])

		cat, ok := newState.Catalogs["main"]
		require.True(t, ok)
		assert.Equal(t, "admin", cat.Owner)
		assert.Empty(t, state.Catalogs, "input state must not be mutated")
	})

	t.Run("explicit owner and comment", func(t *testing.T) {
		state := workspace.NewState()
		newState, resp := CreateCatalog(ctx, state, Args{
			"catalog_name": "sales",
			"owner":        "data_team",
			"comment":      "sales data",
		})
		require.NotContains(t, resp, "error")
		cat := newState.Catalogs["sales"]
		assert.Equal(t, "data_team", cat.Owner)
		assert.Equal(t, "sales data", cat.Comment)
	})

	t.Run("missing name", func(t *testing.T) {
		state := workspace.NewState()
		newState, resp := CreateCatalog(ctx, state, Args{})
		assert.Equal(t, "catalog_name is required", resp["error"])
		assert.Same(t, state, newState)
	})

	t.Run("duplicate", func(t *testing.T) {
		state := workspace.NewState()
		state, resp := CreateCatalog(ctx, state, Args{"catalog_name": "main"})
		require.NotContains(t, resp, "error")
		newState, resp := CreateCatalog(ctx, state, Args{"catalog_name": "main"})
		assert.Equal(t, "Catalog 'main' already exists", resp["error"])
		assert.Same(t, state, newState)
	})
}

func TestUseCatalog(t *testing.T) {
	ctx := context.Background()
	state := workspace.NewState()
	state, resp := CreateCatalog(ctx, state, Args{"catalog_name": "main"})
	require.NotContains(t, resp, "error")

	t.Run("set active", func(t *testing.T) {
		newState, resp := UseCatalog(ctx, state, Args{"catalog_name": "main"})
		require.NotContains(t, resp, "error")
		assert.Equal(t, "main", resp["active_catalog"])
		assert.Equal(t, "main", newState.ActiveCatalog)
		assert.Equal(t, "", state.ActiveCatalog)
	})

	t.Run("nonexistent catalog", func(t *testing.T) {
		newState, resp := UseCatalog(ctx, state, Args{"catalog_name": "nope"})
		assert.Equal(t, "Catalog 'nope' does not exist", resp["error"])
		assert.Same(t, state, newState)
	})

	t.Run("missing name", func(t *testing.T) {
		_, resp := UseCatalog(ctx, state, Args{})
		assert.Equal(t, "catalog_name is required", resp["error"])
	})
}

func TestListCatalogs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty workspace", func(t *testing.T) {
		newState, resp := ListCatalogs(ctx, workspace.NewState(), Args{})
		require.NotContains(t, resp, "error")
		assert.Empty(t, resp["catalogs"])
		assert.NotNil(t, newState)
	})

	t.Run("sorted by name", func(t *testing.T) {
		state := workspace.NewState()
		for _, name := range []string{"zeta", "alpha", "mid"} {
			var resp Response
			state, resp = CreateCatalog(ctx, state, Args{"catalog_name": name})
			require.NotContains(t, resp, "error")
		}

		_, resp := ListCatalogs(ctx, state, Args{})
		list, ok := resp["catalogs"].([]Response)
		require.True(t, ok)
		require.Len(t, list, 3)
		assert.Equal(t, "alpha", list[0]["name"])
		assert.Equal(t, "mid", list[1]["name"])
		assert.Equal(t, "zeta", list[2]["name"])
	})
}
