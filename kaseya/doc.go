/*
Package kaseya declares the entity catalogue of the Kaseya VSA REST API.

Catalogue is a schema.Registry holding every entity type the API exposes,
declared as literal field tables with explicit filterable and sortable flags.
Entity names drop the K prefix of the original API definitions (KAgent is
Agent); the original names remain valid aliases.

	fields, err := kaseya.Catalogue.FilterableFields("Agent")
	// AgentId, Online, OSType, OSInfo, AgentName, ...

Every entity has a plain value container with json tags matching the remote
field names, so responses decode directly:

	var agent kaseya.Agent
	err := json.Unmarshal(body, &agent)

Timestamps use strfmt.DateTime. Fields the API leaves untyped are declared as
any. The init function binds every container to its entity name in package
registry; entity types with an identity field also get a snapshot key.

A few field types of the original definitions pointed at unrelated entity
types. They are declared here with the scalar type the API actually returns:
Document.Size and File.Size are integers, the User field of the event logs is
text, and the Is* flags of Asset and SecurityProduct are booleans.
*/
package kaseya
