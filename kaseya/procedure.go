/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// AgentProcedure is an agent procedure (script) defined on the VSA server.
type AgentProcedure struct {
	AgentProcedureID   int32  `json:"AgentProcedureId"`
	AgentProcedureName string `json:"AgentProcedureName"`
	Path               string `json:"Path"`
	Description        string `json:"Description"`
	Attributes         any    `json:"Attributes,omitempty"`
}

var agentProcedureSchema = schema.Entity{
	Name:        "AgentProcedure",
	Aliases:     []string{"KAgentProcedure"},
	Description: "Agent procedure definition",
	Fields: []schema.Field{
		field("AgentProcedureId", schema.Integer, flt),
		field("AgentProcedureName", schema.Text, both),
		field("Path", schema.Text, flt),
		field("Description", schema.Text, none),
		field("Attributes", schema.Opaque, none),
	},
}

// ScheduledAgentProcedure is an agent procedure scheduled to run on one agent.
type ScheduledAgentProcedure struct {
	AgentProcedureID int32               `json:"AgentProcedureId"`
	AgentID          float64             `json:"AgentId"`
	ServerTimeZone   bool                `json:"ServerTimeZone"`
	SkipIfOffLine    bool                `json:"SkipIfOffLine"`
	PowerUpIfOffLine bool                `json:"PowerUpIfOffLine"`
	ScriptPrompts    *ScriptPrompts      `json:"ScriptPrompts,omitempty"`
	Recurrence       *RecurrenceOptions  `json:"Recurrence,omitempty"`
	Distribution     *DistributionWindow `json:"Distribution,omitempty"`
	Start            *StartOptions       `json:"Start,omitempty"`
	Exclusion        *ExclusionWindow    `json:"Exclusion,omitempty"`
	Attributes       any                 `json:"Attributes,omitempty"`
}

var scheduledAgentProcedureSchema = schema.Entity{
	Name:        "ScheduledAgentProcedure",
	Aliases:     []string{"KScheduledAgentProcedure"},
	Description: "Agent procedure scheduled on an agent",
	Fields: []schema.Field{
		field("AgentProcedureId", schema.Integer, flt),
		field("AgentId", schema.Number, flt),
		field("ServerTimeZone", schema.Boolean, flt),
		field("SkipIfOffLine", schema.Boolean, flt),
		field("PowerUpIfOffLine", schema.Boolean, flt),
		field("ScriptPrompts", schema.EntityOf("ScriptPrompts"), none),
		field("Recurrence", schema.EntityOf("RecurrenceOptions"), none),
		field("Distribution", schema.EntityOf("DistributionWindow"), none),
		field("Start", schema.EntityOf("StartOptions"), none),
		field("Exclusion", schema.EntityOf("ExclusionWindow"), none),
		field("Attributes", schema.Opaque, none),
	},
}

// ScriptPrompts holds the answer to one prompt of a scheduled procedure.
type ScriptPrompts struct {
	Caption string `json:"Caption"`
	Name    string `json:"Name"`
	Value   string `json:"Value"`
}

var scriptPromptsSchema = schema.Entity{
	Name:    "ScriptPrompts",
	Aliases: []string{"KScriptPrompts"},
	Fields: []schema.Field{
		field("Caption", schema.Text, none),
		field("Name", schema.Text, none),
		field("Value", schema.Text, none),
	},
}

// RecurrenceOptions controls how often a scheduled procedure repeats.
type RecurrenceOptions struct {
	Repeat                string `json:"Repeat"`
	Times                 int32  `json:"Times"`
	DaysOfWeek            string `json:"DaysOfWeek"`
	DayOfMonth            string `json:"DayOfMonth"`
	SpecificDayOfMonth    int32  `json:"SpecificDayOfMonth"`
	MonthOfYear           string `json:"MonthOfYear"`
	EndAt                 string `json:"EndAt"`
	EndOn                 string `json:"EndOn"`
	EndAfterIntervalTimes int32  `json:"EndAfterIntervalTimes"`
}

var recurrenceOptionsSchema = schema.Entity{
	Name:    "RecurrenceOptions",
	Aliases: []string{"KRecurrenceOptions"},
	Fields: []schema.Field{
		field("Repeat", schema.Text, none),
		field("Times", schema.Integer, none),
		field("DaysOfWeek", schema.Text, none),
		field("DayOfMonth", schema.Text, none),
		field("SpecificDayOfMonth", schema.Integer, none),
		field("MonthOfYear", schema.Text, none),
		field("EndAt", schema.Text, none),
		field("EndOn", schema.Text, none),
		field("EndAfterIntervalTimes", schema.Integer, none),
	},
}

// DistributionWindow spreads scheduled runs over a random window.
type DistributionWindow struct {
	Interval  string `json:"Interval"`
	Magnitude int32  `json:"Magnitude"`
}

var distributionWindowSchema = schema.Entity{
	Name:    "DistributionWindow",
	Aliases: []string{"KDistributionWindow"},
	Fields: []schema.Field{
		field("Interval", schema.Text, none),
		field("Magnitude", schema.Integer, none),
	},
}

// StartOptions sets when a scheduled procedure first runs.
type StartOptions struct {
	StartOn string `json:"StartOn"`
	StartAt string `json:"StartAt"`
}

var startOptionsSchema = schema.Entity{
	Name:    "StartOptions",
	Aliases: []string{"KStartOptions"},
	Fields: []schema.Field{
		field("StartOn", schema.Text, none),
		field("StartAt", schema.Text, none),
	},
}

// ExclusionWindow blocks a scheduled procedure from running between two times of day.
type ExclusionWindow struct {
	From string `json:"From"`
	To   string `json:"To"`
}

var exclusionWindowSchema = schema.Entity{
	Name:    "ExclusionWindow",
	Aliases: []string{"KExclusionWindow"},
	Fields: []schema.Field{
		field("From", schema.Text, none),
		field("To", schema.Text, none),
	},
}

// AgentProcedureHistory is one past execution of an agent procedure.
type AgentProcedureHistory struct {
	ScriptName        string          `json:"ScriptName"`
	LastExecutionTime strfmt.DateTime `json:"LastExecutionTime"`
	Status            string          `json:"Status"`
	Admin             string          `json:"Admin"`
}

var agentProcedureHistorySchema = schema.Entity{
	Name:        "AgentProcedureHistory",
	Aliases:     []string{"KAgentProcedureHistory"},
	Description: "Agent procedure execution history",
	Fields: []schema.Field{
		field("ScriptName", schema.Text, both),
		field("LastExecutionTime", schema.Timestamp, both),
		field("Status", schema.Text, both),
		field("Admin", schema.Text, both),
	},
}

// AgentProcedurePrompts lists the prompts answered when an agent procedure ran.
type AgentProcedurePrompts struct {
	ScriptName        string          `json:"ScriptName"`
	LastExecutionTime strfmt.DateTime `json:"LastExecutionTime"`
	Status            string          `json:"Status"`
	Admin             string          `json:"Admin"`
}

var agentProcedurePromptsSchema = schema.Entity{
	Name:    "AgentProcedurePrompts",
	Aliases: []string{"KAgentProcedurePrompts"},
	Fields: []schema.Field{
		field("ScriptName", schema.Text, both),
		field("LastExecutionTime", schema.Timestamp, both),
		field("Status", schema.Text, both),
		field("Admin", schema.Text, both),
	},
}
