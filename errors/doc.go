/*
Package errors provides semantic error types for kaseyaschema.

The package defines the failure modes of the catalogue and of the snapshot
datastores as typed errors that can be checked with the standard errors.Is()
function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("entity not found")
	    ErrAlreadyExists     = errors.New("entity already exists")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrUnknownEntityType = errors.New("unknown entity type")
	    ErrInvalidSchema     = errors.New("invalid entity schema")
	    ErrNoIndexMap        = errors.New("no index map found for type")
	)

Usage:

	fields, err := kaseya.Catalogue.FilterableFields("Agnet")
	if err != nil {
	    if errors.IsConfigurationError(err) {
	        // the entity type is misspelled or not part of the catalogue
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewConfigurationError("Agnet")
	err := errors.NewSchemaError("Agent", "AgentId", "duplicate field name")
	err := errors.NewNotFoundError("Agent", "1234")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
