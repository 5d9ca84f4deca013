/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// ServiceDesk is a service desk definition.
type ServiceDesk struct {
	ServiceDeskID           float64 `json:"ServiceDeskId"`
	DefaultServDeskDefnFlag string  `json:"defaultServDeskDefnFlag"`
	Prefix                  string  `json:"Prefix"`
	ServiceDeskName         string  `json:"ServiceDeskName"`
	Description             string  `json:"Description"`
	EditingTemplate         string  `json:"EditingTemplate"`
	DefinationTemplate      string  `json:"DefinationTemplate"`
	DisplayMachineInfo      string  `json:"DisplayMachineInfo"`
	RequiredMachineInfo     string  `json:"RequiredMachineInfo"`
	AutoSaveClock           string  `json:"AutoSaveClock"`
	AutoInsertNote          string  `json:"AutoInsertNote"`
	AutoInsertHiddenNote    string  `json:"AutoInsertHiddenNote"`
	ShowIncidentNotePan     string  `json:"ShowIncidentNotePan"`
	ShowWorkOrders          string  `json:"ShowWorkOrders"`
	ShowSessionTimers       string  `json:"ShowSessionTimers"`
	ShowTasks               string  `json:"ShowTasks"`
	AllowDeleteNotes        string  `json:"AllowDeleteNotes"`
	TimeZoneOffset          string  `json:"TimeZoneOffset"`
	DefaultPolicy           string  `json:"DefaultPolicy"`
	DeskAdministrator       string  `json:"DeskAdministrator"`
	ChangeProcedure         string  `json:"ChangeProcedure"`
	GoalProcedure           string  `json:"GoalProcedure"`
	AotoArchiveTime         int32   `json:"AotoArchiveTime"`
	EmailDisplayName        string  `json:"EmailDisplayName"`
}

var serviceDeskSchema = schema.Entity{
	Name:        "ServiceDesk",
	Aliases:     []string{"KServiceDesk"},
	Description: "Service desk definition",
	Fields: []schema.Field{
		field("ServiceDeskId", schema.Number, both),
		field("defaultServDeskDefnFlag", schema.Text, both),
		field("Prefix", schema.Text, both),
		field("ServiceDeskName", schema.Text, both),
		field("Description", schema.Text, both),
		field("EditingTemplate", schema.Text, both),
		field("DefinationTemplate", schema.Text, both),
		field("DisplayMachineInfo", schema.Text, both),
		field("RequiredMachineInfo", schema.Text, both),
		field("AutoSaveClock", schema.Text, both),
		field("AutoInsertNote", schema.Text, both),
		field("AutoInsertHiddenNote", schema.Text, both),
		field("ShowIncidentNotePan", schema.Text, both),
		field("ShowWorkOrders", schema.Text, both),
		field("ShowSessionTimers", schema.Text, both),
		field("ShowTasks", schema.Text, both),
		field("AllowDeleteNotes", schema.Text, both),
		field("TimeZoneOffset", schema.Text, both),
		field("DefaultPolicy", schema.Text, both),
		field("DeskAdministrator", schema.Text, both),
		field("ChangeProcedure", schema.Text, both),
		field("GoalProcedure", schema.Text, both),
		field("AotoArchiveTime", schema.Integer, both),
		field("EmailDisplayName", schema.Text, both),
	},
}

// Ticket is a service desk ticket.
type Ticket struct {
	ServiceDeskID       float64         `json:"ServiceDeskId"`
	ServiceDeskTicketID float64         `json:"ServiceDeskTicketId"`
	TicketRef           string          `json:"TicketRef"`
	Summary             string          `json:"Summary"`
	TicketStatus        string          `json:"TicketStatus"`
	Stage               string          `json:"Stage"`
	Priority            string          `json:"Priority"`
	Severity            string          `json:"Severity"`
	Category            string          `json:"Category"`
	Resolution          string          `json:"Resolution"`
	Submitter           string          `json:"Submitter"`
	Assignee            string          `json:"Assignee"`
	Owner               string          `json:"Owner"`
	Organization        string          `json:"Organization"`
	Staff               string          `json:"Staff"`
	Phone               string          `json:"Phone"`
	AgentGUID           float64         `json:"AgentGuid"`
	InventoryAssetID    float64         `json:"InventoryAssetId"`
	CreatedDate         strfmt.DateTime `json:"CreatedDate"`
	ModifiedDate        strfmt.DateTime `json:"ModifiedDate"`
	LastPublicUpdate    strfmt.DateTime `json:"LastPublicUpdate"`
	Closed              strfmt.DateTime `json:"Closed"`
	Due                 strfmt.DateTime `json:"Due"`
	Promised            strfmt.DateTime `json:"Promised"`
	Escalation          strfmt.DateTime `json:"Escalation"`
	StageGoal           string          `json:"StageGoal"`
	ResolutionDate      string          `json:"ResolutionDate"`
	LockedBy            string          `json:"LockedBy"`
	LockedOn            strfmt.DateTime `json:"LockedOn"`
	SourceType          string          `json:"SourceType"`
	Policy              string          `json:"Policy"`
	SubmitterEmail      string          `json:"SubmitterEmail"`
}

var ticketSchema = schema.Entity{
	Name:        "Ticket",
	Aliases:     []string{"KTicket"},
	Description: "Service desk ticket",
	Fields: []schema.Field{
		field("ServiceDeskId", schema.Number, both),
		field("ServiceDeskTicketId", schema.Number, both),
		field("TicketRef", schema.Text, both),
		field("Summary", schema.Text, flt),
		field("TicketStatus", schema.Text, both),
		field("Stage", schema.Text, both),
		field("Priority", schema.Text, both),
		field("Severity", schema.Text, both),
		field("Category", schema.Text, both),
		field("Resolution", schema.Text, both),
		field("Submitter", schema.Text, both),
		field("Assignee", schema.Text, both),
		field("Owner", schema.Text, both),
		field("Organization", schema.Text, flt),
		field("Staff", schema.Text, flt),
		field("Phone", schema.Text, none),
		field("AgentGuid", schema.Number, flt),
		field("InventoryAssetId", schema.Number, both),
		field("CreatedDate", schema.Timestamp, both),
		field("ModifiedDate", schema.Timestamp, both),
		field("LastPublicUpdate", schema.Timestamp, both),
		field("Closed", schema.Timestamp, both),
		field("Due", schema.Timestamp, both),
		field("Promised", schema.Timestamp, both),
		field("Escalation", schema.Timestamp, both),
		field("StageGoal", schema.Text, both),
		field("ResolutionDate", schema.Text, both),
		field("LockedBy", schema.Text, both),
		field("LockedOn", schema.Timestamp, both),
		field("SourceType", schema.Text, both),
		field("Policy", schema.Text, both),
		field("SubmitterEmail", schema.Text, both),
	},
}

// TicketStatus is the status view of a service desk ticket.
type TicketStatus struct {
	ServiceDeskID       float64         `json:"ServiceDeskId"`
	ServiceDeskTicketID float64         `json:"ServiceDeskTicketId"`
	TicketRef           string          `json:"TicketRef"`
	Summary             string          `json:"Summary"`
	TicketStatus        string          `json:"TicketStatus"`
	Stage               string          `json:"Stage"`
	Priority            string          `json:"Priority"`
	Severity            string          `json:"Severity"`
	Category            string          `json:"Category"`
	Resolution          string          `json:"Resolution"`
	Submitter           string          `json:"Submitter"`
	Assignee            string          `json:"Assignee"`
	Owner               string          `json:"Owner"`
	Organization        string          `json:"Organization"`
	Staff               string          `json:"Staff"`
	Phone               string          `json:"Phone"`
	AgentGUID           float64         `json:"AgentGuid"`
	InventoryAssetID    float64         `json:"InventoryAssetId"`
	CreatedDate         strfmt.DateTime `json:"CreatedDate"`
	ModifiedDate        strfmt.DateTime `json:"ModifiedDate"`
	LastPublicUpdate    strfmt.DateTime `json:"LastPublicUpdate"`
	Closed              strfmt.DateTime `json:"Closed"`
	Due                 strfmt.DateTime `json:"Due"`
	Promised            strfmt.DateTime `json:"Promised"`
	Escalation          strfmt.DateTime `json:"Escalation"`
	StageGoal           string          `json:"StageGoal"`
	ResolutionDate      string          `json:"ResolutionDate"`
	LockedBy            string          `json:"LockedBy"`
	LockedOn            strfmt.DateTime `json:"LockedOn"`
	SourceType          string          `json:"SourceType"`
	Policy              string          `json:"Policy"`
	SubmitterEmail      string          `json:"SubmitterEmail"`
}

var ticketStatusSchema = schema.Entity{
	Name:        "TicketStatus",
	Aliases:     []string{"KTicketStatus"},
	Description: "Service desk ticket status",
	Fields: []schema.Field{
		field("ServiceDeskId", schema.Number, both),
		field("ServiceDeskTicketId", schema.Number, both),
		field("TicketRef", schema.Text, both),
		field("Summary", schema.Text, flt),
		field("TicketStatus", schema.Text, both),
		field("Stage", schema.Text, both),
		field("Priority", schema.Text, both),
		field("Severity", schema.Text, both),
		field("Category", schema.Text, both),
		field("Resolution", schema.Text, both),
		field("Submitter", schema.Text, both),
		field("Assignee", schema.Text, both),
		field("Owner", schema.Text, both),
		field("Organization", schema.Text, flt),
		field("Staff", schema.Text, flt),
		field("Phone", schema.Text, none),
		field("AgentGuid", schema.Number, flt),
		field("InventoryAssetId", schema.Number, both),
		field("CreatedDate", schema.Timestamp, both),
		field("ModifiedDate", schema.Timestamp, both),
		field("LastPublicUpdate", schema.Timestamp, both),
		field("Closed", schema.Timestamp, both),
		field("Due", schema.Timestamp, both),
		field("Promised", schema.Timestamp, both),
		field("Escalation", schema.Timestamp, both),
		field("StageGoal", schema.Text, both),
		field("ResolutionDate", schema.Text, both),
		field("LockedBy", schema.Text, both),
		field("LockedOn", schema.Timestamp, both),
		field("SourceType", schema.Text, both),
		field("Policy", schema.Text, both),
		field("SubmitterEmail", schema.Text, both),
	},
}
