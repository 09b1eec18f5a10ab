package tools

import (
	"context"
	"sort"
	"time"

	"github.com/mugiliam/saasbench/internal/config"
	"github.com/mugiliam/saasbench/internal/workspace"
)

// ListTables lists the tables of one catalog.schema, ordered by key.
func ListTables(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	schemaName := args.str("schema_name")
	if catalogName == "" || schemaName == "" {
		return state, errorf("catalog_name and schema_name are required")
	}

	schemaKey := workspace.SchemaKey(catalogName, schemaName)
	if _, ok := state.Schemas[schemaKey]; !ok {
		return state, errorf("Schema '%s' does not exist", schemaKey)
	}

	keys := make([]string, 0, len(state.Tables))
	for key, t := range state.Tables {
		if t.CatalogName == catalogName && t.SchemaName == schemaName {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	tableList := make([]Response, 0, len(keys))
	for _, key := range keys {
		t := state.Tables[key]
		tableList = append(tableList, Response{
			"catalog_name": t.CatalogName,
			"schema_name":  t.SchemaName,
			"table_name":   t.TableName,
			"owner":        t.Owner,
			"column_count": len(t.Columns),
		})
	}
	return state, Response{"tables": tableList}
}

// columnFromSpec converts one raw column spec into a Column record with the
// library defaults (type STRING, nullable true).
func columnFromSpec(spec map[string]any) workspace.Column {
	col := workspace.Column{
		Type:     "STRING",
		Nullable: true,
	}
	if name, ok := spec["name"].(string); ok {
		col.Name = name
	}
	if typ, ok := spec["type"].(string); ok && typ != "" {
		col.Type = typ
	}
	if nullable, ok := spec["nullable"].(bool); ok {
		col.Nullable = nullable
	}
	if comment, ok := spec["comment"].(string); ok {
		col.Comment = comment
	}
	return col
}

// CreateTable creates a table under an existing schema, keyed by
// "catalog.schema.table".
func CreateTable(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	schemaName := args.str("schema_name")
	tableName := args.str("table_name")
	owner := args.strOr("owner", config.Config().DefaultOwner)

	if catalogName == "" || schemaName == "" || tableName == "" {
		return state, errorf("catalog_name, schema_name, and table_name are required")
	}

	schemaKey := workspace.SchemaKey(catalogName, schemaName)
	if _, ok := state.Schemas[schemaKey]; !ok {
		return state, errorf("Schema '%s' does not exist", schemaKey)
	}

	tableKey := workspace.TableKey(catalogName, schemaName, tableName)
	if _, ok := state.Tables[tableKey]; ok {
		return state, errorf("Table '%s' already exists", tableKey)
	}

	var columns []workspace.Column
	for _, raw := range args.list("columns") {
		if spec, ok := raw.(map[string]any); ok {
			columns = append(columns, columnFromSpec(spec))
		}
	}

	newTable := workspace.Table{
		CatalogName: catalogName,
		SchemaName:  schemaName,
		TableName:   tableName,
		Columns:     columns,
		Owner:       owner,
		CreatedAt:   time.Now(),
	}
	newState := state.WithTable(tableKey, newTable)
	return newState, Response{"success": true, "table": tableKey}
}

// InsertIntoTable appends rows to a table. Row values are zipped onto the
// declared columns positionally; the call is atomic, so a single malformed
// row rejects the whole batch.
func InsertIntoTable(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	schemaName := args.str("schema_name")
	tableName := args.str("table_name")
	rows := args.list("rows")

	if catalogName == "" || schemaName == "" || tableName == "" {
		return state, errorf("catalog_name, schema_name, and table_name are required")
	}

	tableKey := workspace.TableKey(catalogName, schemaName, tableName)
	table, ok := state.Tables[tableKey]
	if !ok {
		return state, errorf("Table '%s' does not exist", tableKey)
	}
	if len(rows) == 0 {
		return state, errorf("No rows provided")
	}

	columnNames := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columnNames[i] = col.Name
	}

	newRows := make([]workspace.Row, 0, len(rows))
	for _, raw := range rows {
		values, _ := raw.([]any)
		if len(values) != len(columnNames) {
			return state, errorf("Row has %d values but table has %d columns", len(values), len(columnNames))
		}
		row := make(workspace.Row, len(columnNames))
		for i, name := range columnNames {
			row[name] = values[i]
		}
		newRows = append(newRows, row)
	}

	updatedTable := table
	updatedTable.Data = append(append([]workspace.Row{}, table.Data...), newRows...)
	newState := state.WithTable(tableKey, updatedTable)
	return newState, Response{"success": true, "rows_inserted": len(newRows)}
}

// QueryTable returns a shallow copy of the table's rows. The optional query
// argument is accepted but not applied; every call is a full scan.
func QueryTable(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	catalogName := args.str("catalog_name")
	schemaName := args.str("schema_name")
	tableName := args.str("table_name")

	if catalogName == "" || schemaName == "" || tableName == "" {
		return state, errorf("catalog_name, schema_name, and table_name are required")
	}

	tableKey := workspace.TableKey(catalogName, schemaName, tableName)
	table, ok := state.Tables[tableKey]
	if !ok {
		return state, errorf("Table '%s' does not exist", tableKey)
	}

	results := make([]workspace.Row, len(table.Data))
	copy(results, table.Data)

	return state, Response{"results": results, "row_count": len(results)}
}
