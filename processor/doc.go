/*
Package processor converts entity catalogues between their Go, YAML and OpenAPI forms.

YAML catalogue:
Export and Load write and read a document that lists entities in declaration order:

	entities:
	  - name: TicketStatus
	    aliases: [KTicketStatus]
	    fields:
	      - name: TicketRef
	        type: text
	        filterable: true
	        sortable: true
	      - name: Summary
	        type: text
	        filterable: true

OpenAPI Extension:
LoadOpenAPI reads object schemas and looks for the x-filterable and x-sortable vendor
extensions on their properties:

	Agent:
	  type: object
	  x-aliases: [KAgent]
	  properties:
	    AgentId:
	      type: number
	      x-filterable: true
	    AgentName:
	      type: string
	      x-filterable: true
	      x-sortable: true

Generated Code:
Generate emits the literal tables of a catalogue:

	var Entities = []schema.Entity{
	    {
	        Name: "Agent",
	        Fields: []schema.Field{
	            {Name: "AgentId", Type: schema.Number, Filterable: true, Sortable: false},
	        },
	    },
	}
*/
package processor
