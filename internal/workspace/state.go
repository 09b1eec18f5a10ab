// Description: This file defines the immutable workspace state container and
// the entity records it aggregates. Nothing in this package mutates in place;
// every change goes through a With* builder that clones exactly the touched
// collection and shares the rest.
package workspace

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// Column is a value type embedded in Table. It is never stored independently.
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Comment  string `json:"comment,omitempty"`
}

// UnmarshalJSON defaults Nullable to true when the document omits it.
func (c *Column) UnmarshalJSON(data []byte) error {
	type alias struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Nullable *bool  `json:"nullable"`
		Comment  string `json:"comment"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	c.Name = a.Name
	c.Type = a.Type
	c.Comment = a.Comment
	c.Nullable = true
	if a.Nullable != nil {
		c.Nullable = *a.Nullable
	}
	return nil
}

// Catalog sits at the top of the resource hierarchy. Keyed by name.
type Catalog struct {
	Name       string            `json:"name"`
	Owner      string            `json:"owner"`
	Comment    string            `json:"comment,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	CreatedAt  time.Time         `json:"created_at,omitempty"`
}

// Schema lives inside a catalog. Keyed by "catalog.schema".
type Schema struct {
	CatalogName string    `json:"catalog_name"`
	SchemaName  string    `json:"schema_name"`
	Owner       string    `json:"owner"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Row is one table record, keyed by column name.
type Row map[string]any

// Table is keyed by "catalog.schema.table". Row data is append-only.
type Table struct {
	CatalogName string    `json:"catalog_name"`
	SchemaName  string    `json:"schema_name"`
	TableName   string    `json:"table_name"`
	Columns     []Column  `json:"columns"`
	Data        []Row     `json:"data,omitempty"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Notebook is keyed by its path. Cells are opaque content strings.
type Notebook struct {
	Path              string    `json:"path"`
	Language          string    `json:"language"`
	Cells             []string  `json:"cells,omitempty"`
	AttachedClusterID string    `json:"attached_cluster_id,omitempty"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}

// Cluster is keyed by its generated cluster id. There is no real
// provisioning; clusters are created directly in the RUNNING state.
type Cluster struct {
	ClusterID    string    `json:"cluster_id"`
	Name         string    `json:"name"`
	State        string    `json:"state"`
	NodeType     string    `json:"node_type"`
	NumWorkers   int       `json:"num_workers"`
	SparkVersion string    `json:"spark_version"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Job is keyed by its generated job id. Tasks are stored opaquely.
type Job struct {
	JobID     string           `json:"job_id"`
	Name      string           `json:"name"`
	Schedule  string           `json:"schedule,omitempty"`
	Tasks     []map[string]any `json:"tasks,omitempty"`
	CreatedAt time.Time        `json:"created_at,omitempty"`
}

// Permission is identified by the (principal, privilege, securable_name)
// tuple. The permissions list is deduplicated by value, not identity.
type Permission struct {
	Principal     string `json:"principal"`
	Privilege     string `json:"privilege"`
	SecurableType string `json:"securable_type"`
	SecurableName string `json:"securable_name"`
}

// State is the root aggregate for one workspace. Tools receive a State and
// return a new one; the zero-argument constructor is the empty workspace.
type State struct {
	Catalogs      map[string]Catalog  `json:"catalogs,omitempty"`
	Schemas       map[string]Schema   `json:"schemas,omitempty"`
	Tables        map[string]Table    `json:"tables,omitempty"`
	Notebooks     map[string]Notebook `json:"notebooks,omitempty"`
	Clusters      map[string]Cluster  `json:"clusters,omitempty"`
	Jobs          map[string]Job      `json:"jobs,omitempty"`
	Permissions   []Permission        `json:"permissions,omitempty"`
	ActiveCatalog string              `json:"active_catalog,omitempty"`
}

func NewState() *State {
	return &State{
		Catalogs:  make(map[string]Catalog),
		Schemas:   make(map[string]Schema),
		Tables:    make(map[string]Table),
		Notebooks: make(map[string]Notebook),
		Clusters:  make(map[string]Cluster),
		Jobs:      make(map[string]Job),
	}
}

// SchemaKey derives the canonical key for a schema in the schemas map.
func SchemaKey(catalogName, schemaName string) string {
	return fmt.Sprintf("%s.%s", catalogName, schemaName)
}

// TableKey derives the canonical key for a table in the tables map.
func TableKey(catalogName, schemaName, tableName string) string {
	return fmt.Sprintf("%s.%s.%s", catalogName, schemaName, tableName)
}

// shallow copies the root aggregate. Collections stay shared until a
// builder below replaces one of them.
func (s *State) shallow() *State {
	ns := *s
	return &ns
}

// WithCatalog returns a new state with the named catalog set. Only the
// catalogs map is cloned.
func (s *State) WithCatalog(name string, c Catalog) *State {
	ns := s.shallow()
	ns.Catalogs = maps.Clone(s.Catalogs)
	if ns.Catalogs == nil {
		ns.Catalogs = make(map[string]Catalog)
	}
	ns.Catalogs[name] = c
	return ns
}

func (s *State) WithSchema(key string, sc Schema) *State {
	ns := s.shallow()
	ns.Schemas = maps.Clone(s.Schemas)
	if ns.Schemas == nil {
		ns.Schemas = make(map[string]Schema)
	}
	ns.Schemas[key] = sc
	return ns
}

func (s *State) WithTable(key string, t Table) *State {
	ns := s.shallow()
	ns.Tables = maps.Clone(s.Tables)
	if ns.Tables == nil {
		ns.Tables = make(map[string]Table)
	}
	ns.Tables[key] = t
	return ns
}

func (s *State) WithNotebook(path string, n Notebook) *State {
	ns := s.shallow()
	ns.Notebooks = maps.Clone(s.Notebooks)
	if ns.Notebooks == nil {
		ns.Notebooks = make(map[string]Notebook)
	}
	ns.Notebooks[path] = n
	return ns
}

func (s *State) WithCluster(id string, c Cluster) *State {
	ns := s.shallow()
	ns.Clusters = maps.Clone(s.Clusters)
	if ns.Clusters == nil {
		ns.Clusters = make(map[string]Cluster)
	}
	ns.Clusters[id] = c
	return ns
}

func (s *State) WithJob(id string, j Job) *State {
	ns := s.shallow()
	ns.Jobs = maps.Clone(s.Jobs)
	if ns.Jobs == nil {
		ns.Jobs = make(map[string]Job)
	}
	ns.Jobs[id] = j
	return ns
}

// WithPermissions replaces the permissions list wholesale. Callers build the
// new list themselves; the old slice is never appended to in place.
func (s *State) WithPermissions(perms []Permission) *State {
	ns := s.shallow()
	ns.Permissions = perms
	return ns
}

func (s *State) WithActiveCatalog(name string) *State {
	ns := s.shallow()
	ns.ActiveCatalog = name
	return ns
}
