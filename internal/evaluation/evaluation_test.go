package evaluation

import (
	"testing"

	"github.com/mugiliam/saasbench/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalWithTable() *workspace.State {
	goal := workspace.NewState()
	goal = goal.WithCatalog("main", workspace.Catalog{Name: "main", Owner: "admin"})
	goal = goal.WithSchema("main.default", workspace.Schema{CatalogName: "main", SchemaName: "default"})
	goal = goal.WithTable("main.default.users", workspace.Table{
		CatalogName: "main",
		SchemaName:  "default",
		TableName:   "users",
		Columns: []workspace.Column{
			{Name: "id", Type: "INT", Nullable: false},
			{Name: "name", Type: "STRING", Nullable: true},
		},
	})
	return goal
}

func TestEvaluateEmptyGoal(t *testing.T) {
	result := Evaluate(workspace.NewState(), workspace.NewState())
	assert.True(t, result.Success)
	assert.Equal(t, 1.0, result.Score)
	assert.Empty(t, result.MinefieldsTriggered)
	assert.Empty(t, result.Differences.MissingCatalogs)
}

func TestEvaluateGoalReached(t *testing.T) {
	goal := goalWithTable()
	result := Evaluate(goal, goal)

	assert.True(t, result.Success)
	assert.Contains(t, result.MilestonesAchieved, "Catalog 'main' exists")
	assert.Contains(t, result.MilestonesAchieved, "Schema 'main.default' exists")
	assert.Contains(t, result.MilestonesAchieved, "Table 'main.default.users' created with correct schema")
	assert.Contains(t, result.MilestonesAchieved, "All required permissions granted")
	assert.Empty(t, result.Differences.IncorrectTables)
	assert.Empty(t, result.MinefieldsTriggered)
}

func TestEvaluateMissingResources(t *testing.T) {
	goal := goalWithTable()
	final := workspace.NewState().WithCatalog("main", workspace.Catalog{Name: "main"})

	result := Evaluate(final, goal)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"main.default"}, result.Differences.MissingSchemas)
	assert.Equal(t, []string{"main.default.users"}, result.Differences.MissingTables)
	assert.Empty(t, result.Differences.MissingCatalogs)
	assert.Less(t, result.Score, 1.0)
	assert.Greater(t, result.Score, 0.0)
}

func TestEvaluateColumnMismatch(t *testing.T) {
	goal := goalWithTable()
	final := goalWithTable()
	table := final.Tables["main.default.users"]
	table.Columns = []workspace.Column{
		{Name: "id", Type: "STRING", Nullable: true},
		{Name: "name", Type: "STRING", Nullable: true},
	}
	final = final.WithTable("main.default.users", table)

	result := Evaluate(final, goal)
	assert.False(t, result.Success)
	require.Len(t, result.Differences.IncorrectTables, 1)
	issue := result.Differences.IncorrectTables[0]
	assert.Equal(t, "main.default.users", issue.Table)
	assert.Equal(t, "Column schema mismatch", issue.Issue)
	assert.Equal(t, "INT", issue.Expected["id"])
	assert.Equal(t, "STRING", issue.Actual["id"])
}

func TestEvaluateColumnOrderIrrelevant(t *testing.T) {
	goal := goalWithTable()
	final := goalWithTable()
	table := final.Tables["main.default.users"]
	table.Columns = []workspace.Column{table.Columns[1], table.Columns[0]}
	final = final.WithTable("main.default.users", table)

	result := Evaluate(final, goal)
	assert.True(t, result.Success)
	assert.Empty(t, result.Differences.IncorrectTables)
}

func TestEvaluateRowCount(t *testing.T) {
	goal := goalWithTable()
	goalTable := goal.Tables["main.default.users"]
	goalTable.Data = []workspace.Row{{"id": 1, "name": "ada"}, {"id": 2, "name": "grace"}}
	goal = goal.WithTable("main.default.users", goalTable)

	t.Run("insufficient rows", func(t *testing.T) {
		final := goalWithTable()
		finalTable := final.Tables["main.default.users"]
		finalTable.Data = []workspace.Row{{"id": 1, "name": "ada"}}
		final = final.WithTable("main.default.users", finalTable)

		result := Evaluate(final, goal)
		assert.False(t, result.Success)
		require.Len(t, result.Differences.IncorrectTables, 1)
		issue := result.Differences.IncorrectTables[0]
		assert.Equal(t, "Insufficient data rows", issue.Issue)
		assert.Equal(t, 2, issue.ExpectedRows)
		assert.Equal(t, 1, issue.ActualRows)
	})

	t.Run("more rows than goal is fine", func(t *testing.T) {
		final := goalWithTable()
		finalTable := final.Tables["main.default.users"]
		finalTable.Data = []workspace.Row{{"id": 1}, {"id": 2}, {"id": 3}}
		final = final.WithTable("main.default.users", finalTable)

		result := Evaluate(final, goal)
		assert.True(t, result.Success)
		assert.Contains(t, result.MilestonesAchieved, "Table 'main.default.users' has data inserted")
	})
}

func TestEvaluatePermissions(t *testing.T) {
	perm := workspace.Permission{
		Principal:     "analysts",
		Privilege:     "SELECT",
		SecurableType: "TABLE",
		SecurableName: "main.default.users",
	}

	t.Run("missing permission fails", func(t *testing.T) {
		goal := workspace.NewState().WithPermissions([]workspace.Permission{perm})
		result := Evaluate(workspace.NewState(), goal)
		assert.False(t, result.Success)
		assert.Equal(t, []string{"analysts - SELECT on main.default.users"}, result.Differences.MissingPermissions)
	})

	t.Run("extra permission triggers minefield but not failure", func(t *testing.T) {
		extra := perm
		extra.Principal = "interns"
		final := workspace.NewState().WithPermissions([]workspace.Permission{perm, extra})
		goal := workspace.NewState().WithPermissions([]workspace.Permission{perm})

		result := Evaluate(final, goal)
		assert.True(t, result.Success)
		assert.Equal(t,
			[]string{"Unexpected permission granted: interns - SELECT on main.default.users"},
			result.MinefieldsTriggered)
	})
}

func TestEvaluateExtraResourcesInformational(t *testing.T) {
	goal := workspace.NewState().WithCatalog("main", workspace.Catalog{Name: "main"})
	final := goalWithTable().WithCatalog("scratch", workspace.Catalog{Name: "scratch"})

	result := Evaluate(final, goal)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"scratch"}, result.Differences.ExtraResources.Catalogs)
	assert.Equal(t, []string{"main.default.users"}, result.Differences.ExtraResources.Tables)
}

func TestEvaluateScoreIsMilestoneFraction(t *testing.T) {
	goal := workspace.NewState().
		WithCatalog("a", workspace.Catalog{Name: "a"}).
		WithCatalog("b", workspace.Catalog{Name: "b"})
	final := workspace.NewState().WithCatalog("a", workspace.Catalog{Name: "a"})

	// One of two goal catalogs present, plus the permissions milestone over
	// two total checks.
	result := Evaluate(final, goal)
	assert.False(t, result.Success)
	assert.Equal(t, 1.0, result.Score)
	assert.Len(t, result.MilestonesAchieved, 2)
}
