/*
Package ddb provides a DynamoDB implementation of the DataStore interface for Kaseya
entity snapshots.

Table layout (single table):
  - PK: the catalogue name of the entity type, e.g. "Agent"
  - SK: the SK template bound to the Go type, expanded against the snapshot
  - EntityType: injected on every item so queries can decode any partition

	registry.Bind[kaseya.Ticket]("Ticket", map[string]string{
	    "PK": "Ticket",
	    "SK": "{ServiceDeskId}#{ServiceDeskTicketId}", // Becomes "12#3051"
	})

Attributes carry the json wire names of the entity, and timestamps keep their API
string form.

Streaming:
Stream walks every page of a partition:

	results := store.Stream(ctx, &storagemodels.QueryParams{KeyPrefix: "12#"},
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	    storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) {
	        log.Info().Int64("items", p.ItemsProcessed).Msg("progress")
	    }),
	)

The store talks to DynamoDB through the API interface, which *dynamodb.Client satisfies.
*/
package ddb
