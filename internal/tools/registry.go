// Description: This file contains the static registry mapping the closed set
// of tool names to their functions. The set is fixed at compile time; there
// is no dynamic registration.
package tools

import (
	"sort"

	"github.com/mugiliam/common/apperrors"
)

// ToolName identifies one operation in the library.
type ToolName string

const (
	ToolUseCatalog          ToolName = "use_catalog"
	ToolListCatalogs        ToolName = "list_catalogs"
	ToolCreateCatalog       ToolName = "create_catalog"
	ToolListSchemas         ToolName = "list_schemas"
	ToolCreateSchema        ToolName = "create_schema"
	ToolListTables          ToolName = "list_tables"
	ToolCreateTable         ToolName = "create_table"
	ToolInsertIntoTable     ToolName = "insert_into_table"
	ToolQueryTable          ToolName = "query_table"
	ToolGrantPrivilege      ToolName = "grant_privilege"
	ToolRevokePrivilege     ToolName = "revoke_privilege"
	ToolCreateNotebook      ToolName = "create_notebook"
	ToolListNotebooks       ToolName = "list_notebooks"
	ToolRunNotebookCell     ToolName = "run_notebook_cell"
	ToolCreateVisualization ToolName = "create_visualization"
	ToolListClusters        ToolName = "list_clusters"
	ToolCreateCluster       ToolName = "create_cluster"
	ToolAttachToCluster     ToolName = "attach_to_cluster"
	ToolListJobs            ToolName = "list_jobs"
	ToolCreateJob           ToolName = "create_job"
)

var registry = map[ToolName]Func{
	ToolUseCatalog:          UseCatalog,
	ToolListCatalogs:        ListCatalogs,
	ToolCreateCatalog:       CreateCatalog,
	ToolListSchemas:         ListSchemas,
	ToolCreateSchema:        CreateSchema,
	ToolListTables:          ListTables,
	ToolCreateTable:         CreateTable,
	ToolInsertIntoTable:     InsertIntoTable,
	ToolQueryTable:          QueryTable,
	ToolGrantPrivilege:      GrantPrivilege,
	ToolRevokePrivilege:     RevokePrivilege,
	ToolCreateNotebook:      CreateNotebook,
	ToolListNotebooks:       ListNotebooks,
	ToolRunNotebookCell:     RunNotebookCell,
	ToolCreateVisualization: CreateVisualization,
	ToolListClusters:        ListClusters,
	ToolCreateCluster:       CreateCluster,
	ToolAttachToCluster:     AttachToCluster,
	ToolListJobs:            ListJobs,
	ToolCreateJob:           CreateJob,
}

// Lookup resolves a tool name to its function. An unrecognized name returns
// ErrUnknownTool, distinct from the spec lookup failure.
func Lookup(name ToolName) (Func, apperrors.Error) {
	fn, ok := registry[name]
	if !ok {
		return nil, ErrUnknownTool.Msg(string(name))
	}
	return fn, nil
}

// Names returns every registered tool name, sorted.
func Names() []ToolName {
	names := make([]ToolName, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
