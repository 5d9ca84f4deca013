/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// Agent is a managed machine with an installed VSA agent.
type Agent struct {
	AgentID             float64         `json:"AgentId"`
	Online              int32           `json:"Online"`
	OSType              string          `json:"OSType"`
	OSInfo              string          `json:"OSInfo"`
	AgentName           string          `json:"AgentName"`
	OrgID               float64         `json:"OrgId"`
	MachineGroupID      float64         `json:"MachineGroupId"`
	MachineGroup        string          `json:"MachineGroup"`
	ComputerName        string          `json:"ComputerName"`
	IPv6Address         string          `json:"IPv6Address"`
	IPAddress           string          `json:"IPAddress"`
	OperatingSystem     string          `json:"OperatingSystem"`
	OSVersion           string          `json:"OSVersion"`
	LastLoggedInUser    string          `json:"LastLoggedInUser"`
	LastRebootTime      string          `json:"LastRebootTime"`
	LastCheckInTime     string          `json:"LastCheckInTime"`
	Country             string          `json:"Country"`
	CurrentUser         string          `json:"CurrentUser"`
	Contact             string          `json:"Contact"`
	TimeZone            string          `json:"TimeZone"`
	RamMBytes           int32           `json:"RamMBytes"`
	CPUCount            int32           `json:"CpuCount"`
	CPUSpeed            int32           `json:"CpuSpeed"`
	CPUType             string          `json:"CpuType"`
	DomainWorkgroup     string          `json:"DomainWorkgroup"`
	AgentFlags          int32           `json:"AgentFlags"`
	AgentVersion        int32           `json:"AgentVersion"`
	ToolTipNotes        string          `json:"ToolTipNotes"`
	ShowToolTip         int32           `json:"ShowToolTip"`
	DefaultGateway      string          `json:"DefaultGateway"`
	DNSServer1          string          `json:"DNSServer1"`
	DNSServer2          string          `json:"DNSServer2"`
	DHCPServer          string          `json:"DHCPServer"`
	PrimaryWINS         string          `json:"PrimaryWINS"`
	SecondaryWINS       string          `json:"SecondaryWINS"`
	ConnectionGatewayIP string          `json:"ConnectionGatewayIP"`
	FirstCheckIn        strfmt.DateTime `json:"FirstCheckIn"`
	PrimaryKServer      string          `json:"PrimaryKServer"`
	SecondaryKServer    string          `json:"SecondaryKServer"`
	CreationDate        strfmt.DateTime `json:"CreationDate"`
	OneClickAccess      bool            `json:"OneClickAccess"`
	Attributes          any             `json:"Attributes,omitempty"`
}

var agentSchema = schema.Entity{
	Name:        "Agent",
	Aliases:     []string{"KAgent"},
	Description: "Managed machine",
	Fields: []schema.Field{
		field("AgentId", schema.Number, flt),
		field("Online", schema.Integer, flt),
		field("OSType", schema.Text, flt),
		field("OSInfo", schema.Text, flt),
		field("AgentName", schema.Text, both),
		field("OrgId", schema.Number, flt),
		field("MachineGroupId", schema.Number, flt),
		field("MachineGroup", schema.Text, both),
		field("ComputerName", schema.Text, both),
		field("IPv6Address", schema.Text, flt),
		field("IPAddress", schema.Text, flt),
		field("OperatingSystem", schema.Text, both),
		field("OSVersion", schema.Text, both),
		field("LastLoggedInUser", schema.Text, both),
		field("LastRebootTime", schema.Text, both),
		field("LastCheckInTime", schema.Text, both),
		field("Country", schema.Text, both),
		field("CurrentUser", schema.Text, both),
		field("Contact", schema.Text, both),
		field("TimeZone", schema.Text, both),
		field("RamMBytes", schema.Integer, both),
		field("CpuCount", schema.Integer, both),
		field("CpuSpeed", schema.Integer, both),
		field("CpuType", schema.Text, both),
		field("DomainWorkgroup", schema.Text, both),
		field("AgentFlags", schema.Integer, flt),
		field("AgentVersion", schema.Integer, flt),
		field("ToolTipNotes", schema.Text, none),
		field("ShowToolTip", schema.Integer, none),
		field("DefaultGateway", schema.Text, none),
		field("DNSServer1", schema.Text, none),
		field("DNSServer2", schema.Text, none),
		field("DHCPServer", schema.Text, none),
		field("PrimaryWINS", schema.Text, none),
		field("SecondaryWINS", schema.Text, none),
		field("ConnectionGatewayIP", schema.Text, none),
		field("FirstCheckIn", schema.Timestamp, both),
		field("PrimaryKServer", schema.Text, none),
		field("SecondaryKServer", schema.Text, none),
		field("CreationDate", schema.Timestamp, both),
		field("OneClickAccess", schema.Boolean, none),
		field("Attributes", schema.Opaque, none),
	},
}

// AgentView is a saved agent view definition.
type AgentView struct {
	ViewDefID   float64 `json:"ViewDefId"`
	ViewDefName string  `json:"ViewDefName"`
}

var agentViewSchema = schema.Entity{
	Name:    "AgentView",
	Aliases: []string{"KAgentView"},
	Fields: []schema.Field{
		field("ViewDefId", schema.Number, none),
		field("ViewDefName", schema.Text, both),
	},
}
