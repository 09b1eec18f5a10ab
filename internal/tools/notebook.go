package tools

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mugiliam/saasbench/internal/workspace"
)

// CreateNotebook creates a notebook at the given path. Language defaults to
// python.
func CreateNotebook(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	path := args.str("path")
	language := args.strOr("language", "python")

	if path == "" {
		return state, errorf("path is required")
	}
	if _, ok := state.Notebooks[path]; ok {
		return state, errorf("Notebook '%s' already exists", path)
	}

	newNotebook := workspace.Notebook{
		Path:      path,
		Language:  language,
		CreatedAt: time.Now(),
	}
	newState := state.WithNotebook(path, newNotebook)
	return newState, Response{"success": true, "notebook": path}
}

// ListNotebooks lists all notebooks, ordered by path.
func ListNotebooks(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	paths := make([]string, 0, len(state.Notebooks))
	for path := range state.Notebooks {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	notebookList := make([]Response, 0, len(paths))
	for _, path := range paths {
		n := state.Notebooks[path]
		notebookList = append(notebookList, Response{
			"path":             n.Path,
			"language":         n.Language,
			"cell_count":       len(n.Cells),
			"attached_cluster": n.AttachedClusterID,
		})
	}
	return state, Response{"notebooks": notebookList}
}

// appendCell returns a copy of the notebook with one cell appended. The
// original cell slice is never touched.
func appendCell(n workspace.Notebook, cell string) workspace.Notebook {
	n.Cells = append(append([]string{}, n.Cells...), cell)
	return n
}

// RunNotebookCell records a cell execution by appending its content to the
// notebook. Cells are not interpreted; there is no real compute here.
func RunNotebookCell(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	notebookPath := args.str("notebook_path")
	cellContent := args.str("cell_content")

	if notebookPath == "" || cellContent == "" {
		return state, errorf("notebook_path and cell_content are required")
	}
	notebook, ok := state.Notebooks[notebookPath]
	if !ok {
		return state, errorf("Notebook '%s' does not exist", notebookPath)
	}

	newState := state.WithNotebook(notebookPath, appendCell(notebook, cellContent))
	return newState, Response{"success": true, "cell_executed": true}
}

// CreateVisualization appends a synthetic visualization cell. The
// visualization is serialized into a descriptive string, not a structured
// record.
func CreateVisualization(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	notebookPath := args.str("notebook_path")
	visualizationType := args.strOr("visualization_type", "bar")
	xColumn := args.str("x_column")
	yColumn := args.str("y_column")
	groupBy := args.str("group_by")

	if notebookPath == "" {
		return state, errorf("notebook_path is required")
	}
	notebook, ok := state.Notebooks[notebookPath]
	if !ok {
		return state, errorf("Notebook '%s' does not exist", notebookPath)
	}

	vizCell := fmt.Sprintf("VISUALIZATION: type=%s, x=%s, y=%s, group_by=%s",
		visualizationType, xColumn, yColumn, groupBy)
	newState := state.WithNotebook(notebookPath, appendCell(notebook, vizCell))
	return newState, Response{"success": true, "visualization_created": true}
}

// AttachToCluster sets a notebook's attached cluster. Both sides must exist.
func AttachToCluster(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	notebookPath := args.str("notebook_path")
	clusterID := args.str("cluster_id")

	if notebookPath == "" || clusterID == "" {
		return state, errorf("notebook_path and cluster_id are required")
	}
	notebook, ok := state.Notebooks[notebookPath]
	if !ok {
		return state, errorf("Notebook '%s' does not exist", notebookPath)
	}
	if _, ok := state.Clusters[clusterID]; !ok {
		return state, errorf("Cluster '%s' does not exist", clusterID)
	}

	notebook.AttachedClusterID = clusterID
	newState := state.WithNotebook(notebookPath, notebook)
	return newState, Response{"success": true, "attached": true}
}
