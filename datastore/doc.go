/*
Package datastore defines the snapshot persistence layer for Kaseya entity instances.

A snapshot is an entity instance a caller already fetched from the VSA API and wants to
keep locally. The main interface is DataStore[T]:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	    Delete(ctx context.Context, key string) error
	}

Keys come from the index map bound to T in the registry package. The SK template names
json fields of the entity, so a ticket bound with "{ServiceDeskId}#{ServiceDeskTicketId}"
is stored under "12#3051":

	keys, err := datastore.ExpandKeys(map[string]string{"PK": "Ticket", "SK": "{ServiceDeskId}#{ServiceDeskTicketId}"}, ticket)

Implementations:
  - ddb: DynamoDB single-table implementation, one partition per entity type
  - mock: In-memory implementation for testing
*/
package datastore
