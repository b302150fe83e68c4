/*
Package registry resolves logical entities to physical table names per site.

Each site owns a prefixed copy of most tables ("company_projects", "ngo_programs").
A few entities live in a single shared table partitioned by the site column.
Irregular plurals are listed explicitly:

	registry.TableName(site.NGO, registry.Story)     // "ngo_stories"
	registry.TableName(site.Company, registry.Team)  // "company_team_members"
	registry.TableName(site.NGO, registry.Category)  // "categories" (shared)

A Registry is an explicit lookup. Resolve never falls back to a guessed
"<prefix>_<entity>" name; an unmapped pair returns ErrUnknownTable. Validate should
run at startup so a broken table map fails fast:

	reg, err := registry.LoadFile("tables.yaml")
	if err == nil {
	    err = reg.Validate()
	}

The registry is thread-safe.
*/
package registry
