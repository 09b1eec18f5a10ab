// Description: This file contains the declarative parameter schemas for the
// tool library. The specs are JSON-Schema-shaped and are handed to a calling
// agent in bulk for capability discovery; they are documentation, not a
// validation gate (each tool checks its own preconditions).
package tools

import (
	"github.com/mugiliam/common/apperrors"
)

// Property describes a single parameter. Array items and object members
// reuse the same shape.
type Property struct {
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Enum        []any               `json:"enum,omitempty"`
	Default     any                 `json:"default,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

// ParameterSchema defines a tool's parameters in JSON Schema format.
type ParameterSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Spec describes one tool for a calling agent.
type Spec struct {
	Name        ToolName        `json:"name"`
	Description string          `json:"description"`
	Parameters  ParameterSchema `json:"parameters"`
}

var specs = map[ToolName]Spec{
	ToolUseCatalog: {
		Name:        ToolUseCatalog,
		Description: "Set the active catalog context",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog to use"},
			},
			Required: []string{"catalog_name"},
		},
	},
	ToolListCatalogs: {
		Name:        ToolListCatalogs,
		Description: "List all catalogs in the workspace",
		Parameters: ParameterSchema{
			Type:       "object",
			Properties: map[string]Property{},
		},
	},
	ToolCreateCatalog: {
		Name:        ToolCreateCatalog,
		Description: "Create a new catalog in the workspace",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
				"owner":        {Type: "string", Description: "Owner of the catalog", Default: "admin"},
				"comment":      {Type: "string", Description: "Comment describing the catalog"},
			},
			Required: []string{"catalog_name"},
		},
	},
	ToolListSchemas: {
		Name:        ToolListSchemas,
		Description: "List all schemas in a catalog",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
			},
			Required: []string{"catalog_name"},
		},
	},
	ToolCreateSchema: {
		Name:        ToolCreateSchema,
		Description: "Create a schema in a catalog",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
				"schema_name":  {Type: "string", Description: "Name of the schema"},
				"owner":        {Type: "string", Description: "Owner of the schema", Default: "admin"},
				"comment":      {Type: "string", Description: "Comment describing the schema"},
			},
			Required: []string{"catalog_name", "schema_name"},
		},
	},
	ToolListTables: {
		Name:        ToolListTables,
		Description: "List all tables in a catalog.schema",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
				"schema_name":  {Type: "string", Description: "Name of the schema"},
			},
			Required: []string{"catalog_name", "schema_name"},
		},
	},
	ToolCreateTable: {
		Name:        ToolCreateTable,
		Description: "Create a table with schema in a catalog.schema",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
				"schema_name":  {Type: "string", Description: "Name of the schema"},
				"table_name":   {Type: "string", Description: "Name of the table"},
				"columns": {
					Type:        "array",
					Description: "List of column definitions",
					Items: &Property{
						Type: "object",
						Properties: map[string]Property{
							"name":     {Type: "string"},
							"type":     {Type: "string", Default: "STRING"},
							"nullable": {Type: "boolean", Default: true},
							"comment":  {Type: "string"},
						},
						Required: []string{"name"},
					},
				},
				"owner": {Type: "string", Description: "Owner of the table", Default: "admin"},
			},
			Required: []string{"catalog_name", "schema_name", "table_name", "columns"},
		},
	},
	ToolInsertIntoTable: {
		Name:        ToolInsertIntoTable,
		Description: "Insert data rows into a table",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
				"schema_name":  {Type: "string", Description: "Name of the schema"},
				"table_name":   {Type: "string", Description: "Name of the table"},
				"rows": {
					Type:        "array",
					Description: "List of rows to insert (each row is a list of values)",
					Items:       &Property{Type: "array"},
				},
			},
			Required: []string{"catalog_name", "schema_name", "table_name", "rows"},
		},
	},
	ToolQueryTable: {
		Name:        ToolQueryTable,
		Description: "Query a table (SELECT operation); the optional filter query is accepted but not applied",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"catalog_name": {Type: "string", Description: "Name of the catalog"},
				"schema_name":  {Type: "string", Description: "Name of the schema"},
				"table_name":   {Type: "string", Description: "Name of the table"},
				"query":        {Type: "string", Description: "Optional filter query"},
			},
			Required: []string{"catalog_name", "schema_name", "table_name"},
		},
	},
	ToolGrantPrivilege: {
		Name:        ToolGrantPrivilege,
		Description: "Grant a privilege to a principal on a securable",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"privilege":      {Type: "string", Description: "Privilege to grant (e.g., SELECT, INSERT, ALL_PRIVILEGES)"},
				"securable_type": {Type: "string", Description: "Type of securable (TABLE, CATALOG, SCHEMA)"},
				"securable_name": {Type: "string", Description: "Full name of securable (e.g., catalog.schema.table)"},
				"principal":      {Type: "string", Description: "User or group name"},
			},
			Required: []string{"privilege", "securable_type", "securable_name", "principal"},
		},
	},
	ToolRevokePrivilege: {
		Name:        ToolRevokePrivilege,
		Description: "Revoke a privilege from a principal",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"privilege":      {Type: "string", Description: "Privilege to revoke"},
				"securable_name": {Type: "string", Description: "Full name of securable"},
				"principal":      {Type: "string", Description: "User or group name"},
			},
			Required: []string{"privilege", "securable_name", "principal"},
		},
	},
	ToolCreateNotebook: {
		Name:        ToolCreateNotebook,
		Description: "Create a new notebook",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"path": {Type: "string", Description: "Path to the notebook"},
				"language": {
					Type:        "string",
					Description: "Notebook language",
					Enum:        []any{"sql", "python", "scala", "r"},
					Default:     "python",
				},
			},
			Required: []string{"path"},
		},
	},
	ToolListNotebooks: {
		Name:        ToolListNotebooks,
		Description: "List all notebooks",
		Parameters: ParameterSchema{
			Type:       "object",
			Properties: map[string]Property{},
		},
	},
	ToolRunNotebookCell: {
		Name:        ToolRunNotebookCell,
		Description: "Execute a notebook cell",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"notebook_path": {Type: "string", Description: "Path to the notebook"},
				"cell_content":  {Type: "string", Description: "Content of the cell to execute"},
			},
			Required: []string{"notebook_path", "cell_content"},
		},
	},
	ToolCreateVisualization: {
		Name:        ToolCreateVisualization,
		Description: "Create a visualization in a notebook",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"notebook_path": {Type: "string", Description: "Path to the notebook"},
				"visualization_type": {
					Type:        "string",
					Description: "Type of visualization",
					Enum:        []any{"bar", "line", "pie", "scatter"},
					Default:     "bar",
				},
				"x_column": {Type: "string", Description: "Column for X axis"},
				"y_column": {Type: "string", Description: "Column for Y axis"},
				"group_by": {Type: "string", Description: "Column to group by"},
			},
			Required: []string{"notebook_path"},
		},
	},
	ToolListClusters: {
		Name:        ToolListClusters,
		Description: "List all compute clusters",
		Parameters: ParameterSchema{
			Type:       "object",
			Properties: map[string]Property{},
		},
	},
	ToolCreateCluster: {
		Name:        ToolCreateCluster,
		Description: "Create a compute cluster",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"name":          {Type: "string", Description: "Name of the cluster"},
				"node_type":     {Type: "string", Description: "Node type", Default: "i3.xlarge"},
				"num_workers":   {Type: "integer", Description: "Number of worker nodes", Default: 1},
				"spark_version": {Type: "string", Description: "Spark version", Default: "13.3.x-scala2.12"},
			},
			Required: []string{"name"},
		},
	},
	ToolAttachToCluster: {
		Name:        ToolAttachToCluster,
		Description: "Attach a notebook to a cluster",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"notebook_path": {Type: "string", Description: "Path to the notebook"},
				"cluster_id":    {Type: "string", Description: "ID of the cluster"},
			},
			Required: []string{"notebook_path", "cluster_id"},
		},
	},
	ToolListJobs: {
		Name:        ToolListJobs,
		Description: "List all scheduled jobs",
		Parameters: ParameterSchema{
			Type:       "object",
			Properties: map[string]Property{},
		},
	},
	ToolCreateJob: {
		Name:        ToolCreateJob,
		Description: "Create a scheduled job",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]Property{
				"name":     {Type: "string", Description: "Name of the job"},
				"schedule": {Type: "string", Description: "Cron expression for schedule"},
				"tasks": {
					Type:        "array",
					Description: "List of tasks for the job",
					Items:       &Property{Type: "object"},
				},
			},
			Required: []string{"name"},
		},
	},
}

// SpecFor returns the parameter spec for one tool. An unrecognized name
// returns ErrUnknownToolSpec, distinct from the registry lookup failure.
func SpecFor(name ToolName) (Spec, apperrors.Error) {
	spec, ok := specs[name]
	if !ok {
		return Spec{}, ErrUnknownToolSpec.Msg(string(name))
	}
	return spec, nil
}

// AllSpecs returns the specs for every registered tool, in name order.
func AllSpecs() []Spec {
	all := make([]Spec, 0, len(registry))
	for _, name := range Names() {
		if spec, ok := specs[name]; ok {
			all = append(all, spec)
		}
	}
	return all
}
