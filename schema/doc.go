/*
Package schema describes remote entity types as static tables of field descriptors.

An Entity is a named, ordered list of Fields. Every Field has a semantic Type and
two independent capabilities: it may appear in a filter expression sent to the
remote API (Filterable), in a sort expression (Sortable), in both, or in neither.

Entities are declared as literals and frozen into a Registry at startup:

	var Catalogue = schema.MustNewRegistry(
	    schema.Entity{
	        Name:    "Agent",
	        Aliases: []string{"KAgent"},
	        Fields: []schema.Field{
	            schema.NewField("AgentId", schema.Number, schema.Filterable),
	            schema.NewField("AgentName", schema.Text, schema.Filterable|schema.Sortable),
	            schema.NewField("Attributes", schema.Opaque, 0),
	        },
	    },
	)

	fields, err := Catalogue.FilterableFields("Agent") // AgentId, AgentName

A Registry never changes after construction. All lookups are pure, allocate a
fresh result, and are safe for concurrent use without locking. Looking up a
type the registry does not define fails with errors.ConfigurationError.
*/
package schema
