/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/kaseyaschema/errors"
)

const both = Filterable | Sortable

func testEntities() []Entity {
	return []Entity{
		{
			Name:    "TicketStatus",
			Aliases: []string{"KTicketStatus"},
			Fields: []Field{
				NewField("ServiceDeskTicketId", Number, both),
				NewField("Summary", Text, Filterable),
				NewField("LastModifiedDate", Text, Sortable),
				NewField("Phone", Text, 0),
			},
		},
		{
			Name:    "Credentials",
			Aliases: []string{"KCredentials"},
			Fields: []Field{
				NewField("CredentialId", Number, 0),
				NewField("Attributes", Opaque, 0),
			},
		},
		{
			Name: "Probe",
			Fields: []Field{
				NewField("ProbeId", Number, Filterable),
				NewField("ProbeType", EntityOf("ProbeType"), 0),
			},
		},
		{
			Name: "ProbeType",
			Fields: []Field{
				NewField("ProbeTypeId", Number, Filterable),
				NewField("ProbeTypeName", Text, both),
			},
		},
	}
}

func fieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func TestRegistryQueries(t *testing.T) {
	r, err := NewRegistry(testEntities()...)
	require.NoError(t, err)

	t.Run("FilterableInDeclarationOrder", func(t *testing.T) {
		fields, err := r.FilterableFields("TicketStatus")
		require.NoError(t, err)
		assert.Equal(t, []string{"ServiceDeskTicketId", "Summary"}, fieldNames(fields))
	})

	t.Run("SortableIndependentOfFilterable", func(t *testing.T) {
		fields, err := r.SortableFields("TicketStatus")
		require.NoError(t, err)
		assert.Equal(t, []string{"ServiceDeskTicketId", "LastModifiedDate"}, fieldNames(fields))
	})

	t.Run("NoAnnotatedFieldsIsEmptyNotError", func(t *testing.T) {
		filterable, err := r.FilterableFields("Credentials")
		require.NoError(t, err)
		assert.NotNil(t, filterable)
		assert.Empty(t, filterable)

		sortable, err := r.SortableFields("Credentials")
		require.NoError(t, err)
		assert.NotNil(t, sortable)
		assert.Empty(t, sortable)
	})

	t.Run("AliasResolves", func(t *testing.T) {
		fields, err := r.FilterableFields("KTicketStatus")
		require.NoError(t, err)
		assert.Len(t, fields, 2)

		name, err := r.Canonical("KTicketStatus")
		require.NoError(t, err)
		assert.Equal(t, "TicketStatus", name)
	})

	t.Run("UnknownEntityIsConfigurationError", func(t *testing.T) {
		_, err := r.FilterableFields("Widget")
		assert.True(t, errors.IsConfigurationError(err))

		_, err = r.SortableFields("")
		assert.True(t, errors.IsConfigurationError(err))

		_, err = r.Lookup("ticketstatus")
		assert.True(t, errors.IsConfigurationError(err), "lookups are case sensitive")
		assert.False(t, r.Has("Widget"))
	})

	t.Run("NamesInDeclarationOrder", func(t *testing.T) {
		assert.Equal(t, []string{"TicketStatus", "Credentials", "Probe", "ProbeType"}, r.Names())
		assert.Equal(t, 4, r.Len())
	})
}

func TestRegistryIsImmutable(t *testing.T) {
	defs := testEntities()
	r, err := NewRegistry(defs...)
	require.NoError(t, err)

	defs[0].Fields[0].Name = "Mutated"
	defs[0].Fields[1].Filterable = false

	fields, err := r.Fields("TicketStatus")
	require.NoError(t, err)
	assert.Equal(t, "ServiceDeskTicketId", fields[0].Name)

	fields[0].Name = "MutatedAgain"
	fields[0].Sortable = false

	again, err := r.SortableFields("TicketStatus")
	require.NoError(t, err)
	assert.Equal(t, "ServiceDeskTicketId", again[0].Name)

	e, err := r.Lookup("Probe")
	require.NoError(t, err)
	e.Fields[1].Type.Entity = "Mutated"
	f, ok := r.entities[2].Field("ProbeType")
	require.True(t, ok)
	assert.Equal(t, "ProbeType", f.Type.Entity)
}

func TestRegistryDeterministic(t *testing.T) {
	r := MustNewRegistry(testEntities()...)
	first, err := r.FilterableFields("TicketStatus")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		next, err := r.FilterableFields("TicketStatus")
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestRegistryConcurrentReaders(t *testing.T) {
	r := MustNewRegistry(testEntities()...)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, name := range r.Names() {
				if _, err := r.FilterableFields(name); err != nil {
					t.Errorf("goroutine %d: %v", i, err)
				}
				if _, err := r.SortableFields(name); err != nil {
					t.Errorf("goroutine %d: %v", i, err)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestEntityPartitionsFields(t *testing.T) {
	r := MustNewRegistry(testEntities()...)

	for _, e := range r.Entities() {
		t.Run(e.Name, func(t *testing.T) {
			seen := map[string]int{}
			for _, f := range e.FilterableFields() {
				seen[f.Name]++
			}
			for _, f := range e.SortableFields() {
				if !f.Filterable {
					seen[f.Name]++
				}
			}
			for _, f := range e.PlainFields() {
				seen[f.Name]++
			}
			require.Len(t, seen, len(e.Fields))
			for name, n := range seen {
				assert.Equal(t, 1, n, "field %s counted %d times", name, n)
			}
		})
	}
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name     string
		entities []Entity
	}{
		{"empty entity name", []Entity{{Name: ""}}},
		{"duplicate entity", []Entity{{Name: "Agent"}, {Name: "Agent"}}},
		{"alias collides with name", []Entity{{Name: "Agent"}, {Name: "AgentView", Aliases: []string{"Agent"}}}},
		{"empty alias", []Entity{{Name: "Agent", Aliases: []string{""}}}},
		{"alias repeats own name", []Entity{{Name: "Agent", Aliases: []string{"Agent"}}}},
		{"repeated alias", []Entity{{Name: "Agent", Aliases: []string{"KAgent", "KAgent"}}}},
		{"kind name as entity name", []Entity{{Name: "text"}}},
		{"array prefix in entity name", []Entity{{Name: "[]Agent"}}},
		{"padded entity name", []Entity{{Name: " Agent"}}},
		{"empty field name", []Entity{{Name: "Agent", Fields: []Field{{Name: "", Type: Text}}}}},
		{"duplicate field", []Entity{{Name: "Agent", Fields: []Field{
			NewField("AgentId", Number, Filterable),
			NewField("AgentId", Text, 0),
		}}}},
		{"invalid kind", []Entity{{Name: "Agent", Fields: []Field{{Name: "AgentId"}}}}},
		{"array without element", []Entity{{Name: "Agent", Fields: []Field{{Name: "Ids", Type: Type{Kind: KindArray}}}}}},
		{"undefined reference", []Entity{{Name: "Asset", Fields: []Field{
			NewField("DeviceFound", ArrayOf(EntityOf("DeviceFound")), 0),
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entities...)
			require.Error(t, err)
			assert.True(t, errors.IsSchemaError(err), "got %v", err)
		})
	}
}

func TestForwardReferencesResolve(t *testing.T) {
	_, err := NewRegistry(
		Entity{Name: "Organization", Fields: []Field{NewField("ContactInfo", EntityOf("ContactInfo"), 0)}},
		Entity{Name: "ContactInfo", Fields: []Field{NewField("City", Text, 0)}},
	)
	assert.NoError(t, err)
}

func TestDottedEntityNames(t *testing.T) {
	r, err := NewRegistry(
		Entity{Name: "Kaseya.Device", Fields: []Field{NewField("FoundBy", EntityOf("Kaseya.Probe"), 0)}},
		Entity{Name: "Kaseya.Probe"},
	)
	require.NoError(t, err)
	e, err := r.Lookup("Kaseya.Device")
	require.NoError(t, err)

	parsed, err := ParseType(e.Fields[0].Type.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(EntityOf("Kaseya.Probe")))
}

func TestMustNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry(Entity{Name: "Agent"}, Entity{Name: "Agent"})
	})
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	_, err := r.FilterableFields("Agent")
	assert.True(t, errors.IsConfigurationError(err))
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Names())
}

func TestFieldCapabilities(t *testing.T) {
	f := NewField("Summary", Text, Filterable)
	assert.True(t, f.Filterable)
	assert.False(t, f.Sortable)
	assert.Equal(t, Filterable, f.Capabilities())
	assert.Equal(t, both, NewField("TicketRef", Text, both).Capabilities())
	assert.Equal(t, Capability(0), NewField("Phone", Text, 0).Capabilities())
}
