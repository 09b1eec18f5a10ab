package policy

// Document returns the policy text presented to agents alongside the tool
// specs.
func Document() string {
	return `# Workspace Policy

## Naming Conventions

### Catalogs
- Names must contain only alphanumeric characters and underscores
- Maximum length: 255 characters
- Examples: ` + "`main`, `sales_data`, `analytics_2024`" + `

### Schemas
- Names must contain only alphanumeric characters and underscores
- Maximum length: 255 characters
- Examples: ` + "`default`, `staging`, `production`" + `

### Tables
- Names must contain only alphanumeric characters and underscores
- Maximum length: 255 characters
- Examples: ` + "`customers`, `orders_2024`, `user_profiles`" + `

## Catalog Requirements

### Hierarchy
- Tables must be created within an existing catalog and schema
- Full table name format: ` + "`catalog.schema.table`" + `
- Permissions follow the catalog -> schema -> table hierarchy

### Ownership
- Resources are owned by the creator by default
- Only owners can grant permissions on their resources
- Ownership can be transferred (not covered in this policy)

## Compute Usage Limits

### Clusters
- Maximum clusters per workspace: 100
- Cluster names should follow naming conventions
- Clusters should be terminated when not in use to save costs

## Security Constraints

### Permissions
- Permissions are granted at the catalog, schema, or table level
- Common privileges: SELECT, INSERT, MODIFY, ALL_PRIVILEGES
- Only resource owners can grant permissions
- Use least privilege: grant only necessary permissions
- Regularly review and audit permissions
- Use groups for permission management when possible

## Data Quality

### Tables
- Tables should have descriptive column names
- Use appropriate data types for columns
- Add comments to tables and columns for documentation
- Validate data before insertion

## Operational Guidelines

### Notebooks
- Use descriptive notebook paths
- Attach notebooks to appropriate clusters
- Clean up unused notebooks regularly

### Jobs
- Use descriptive job names
- Set appropriate schedules for recurring jobs
- Monitor job execution and failures
`
}
