/*
Package kaseyaschema describes the entities exposed by the Kaseya VSA REST API and which of
their fields the API accepts in filter and sort expressions.

The catalogue is a fixed table built at compile time:
  - Entities: every record shape the API returns, such as Agent, Asset or TicketStatus
  - Fields: the wire name and value type of each attribute, in declaration order
  - Capabilities: whether a field may appear in $filter, in $orderby, in both or in neither

Filterable and sortable are independent. A field that can be filtered is not necessarily
sortable, and the reverse holds too.

Basic Usage:

	fields, err := kaseyaschema.FilterableFields("Agent")
	if errors.IsConfigurationError(err) {
		// not a known entity type
	}
	for _, f := range fields {
		fmt.Println(f.Name, f.Type)
	}

	// Resolve through the Go container type instead of the name.
	sortable, _ := kaseyaschema.SortableFieldsOf[kaseya.TicketStatus]()

Instances fetched from the API by a caller can be kept as local snapshots in any
datastore.DataStore, for example the DynamoDB store in datastore/ddb:

	snaps := kaseyaschema.NewSnapshots()
	store, _ := ddb.NewDynamodbDataStore[kaseya.Agent](ctx, ddb.Options{Table: "kaseya"})
	_ = kaseyaschema.Attach[kaseya.Agent](snaps, store)
*/
package kaseyaschema
