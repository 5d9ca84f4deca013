/*
Package registry binds Go instance types to catalogue entity types.

The catalogue in package schema describes entities by name only. The registry
connects those names to the Go value containers that carry instances of them.

Type Registry:
Maps entity type names to instance factories, so that stored items can be
decoded polymorphically from their EntityType attribute:

	registry.RegisterType("Agent", func() any {
	    return &kaseya.Agent{}
	})

	obj, err := registry.NewInstance("Agent") // *kaseya.Agent

Bindings:
Associate a Go type with its entity type and, for entities with an identity
field, the key template of its snapshots:

	registry.Bind[kaseya.Agent]("Agent", map[string]string{
	    "PK": "Agent",
	    "SK": "{AgentId}",
	})

	name, _ := registry.EntityTypeOf[kaseya.Agent]() // "Agent"

Both registries are thread-safe and are populated during initialization by the
init function of package kaseya.
*/
package registry
