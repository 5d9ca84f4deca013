/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// AgentLog is an entry of the agent log.
type AgentLog struct {
	Time  strfmt.DateTime `json:"Time"`
	Event string          `json:"Event"`
}

var agentLogSchema = schema.Entity{
	Name:        "AgentLog",
	Aliases:     []string{"KAgentLog"},
	Description: "Agent log entry",
	Fields: []schema.Field{
		field("Time", schema.Timestamp, both),
		field("Event", schema.Text, both),
	},
}

// AgentProcedureLog is an entry of the agent procedure log.
type AgentProcedureLog struct {
	LastExecution    strfmt.DateTime `json:"LastExecution"`
	ProcedureHistory string          `json:"ProcedureHistory"`
	Status           string          `json:"Status"`
	Admin            string          `json:"Admin"`
}

var agentProcedureLogSchema = schema.Entity{
	Name:    "AgentProcedureLog",
	Aliases: []string{"KAgentProcedureLog"},
	Fields: []schema.Field{
		field("LastExecution", schema.Timestamp, both),
		field("ProcedureHistory", schema.Text, both),
		field("Status", schema.Text, both),
		field("Admin", schema.Text, both),
	},
}

// AlarmLog is an entry of the alarm log.
type AlarmLog struct {
	Time  strfmt.DateTime `json:"Time"`
	Event string          `json:"Event"`
}

var alarmLogSchema = schema.Entity{
	Name:    "AlarmLog",
	Aliases: []string{"KAlarmLog"},
	Fields: []schema.Field{
		field("Time", schema.Timestamp, both),
		field("Event", schema.Text, both),
	},
}

// ConfigChangesLog is an entry of the configuration changes log.
type ConfigChangesLog struct {
	Time  strfmt.DateTime `json:"Time"`
	Event string          `json:"Event"`
}

var configChangesLogSchema = schema.Entity{
	Name:    "ConfigChangesLog",
	Aliases: []string{"KConfigChangesLog"},
	Fields: []schema.Field{
		field("Time", schema.Timestamp, both),
		field("Event", schema.Text, both),
	},
}

// LegacyRemoteControlLog is an entry of the legacy remote control log.
type LegacyRemoteControlLog struct {
	Time     strfmt.DateTime `json:"Time"`
	Type     int32           `json:"Type"`
	Duration int32           `json:"Duration"`
	Admin    string          `json:"Admin"`
}

var legacyRemoteControlLogSchema = schema.Entity{
	Name:    "LegacyRemoteControlLog",
	Aliases: []string{"KLegacyRemoteControlLog"},
	Fields: []schema.Field{
		field("Time", schema.Timestamp, both),
		field("Type", schema.Integer, both),
		field("Duration", schema.Integer, both),
		field("Admin", schema.Text, both),
	},
}

// MonitorActionLog is an entry of the monitor action log.
type MonitorActionLog struct {
	Time       strfmt.DateTime `json:"Time"`
	SNMPDevice string          `json:"SNMPDevice"`
	Type       int32           `json:"Type"`
	Message    string          `json:"Message"`
}

var monitorActionLogSchema = schema.Entity{
	Name:    "MonitorActionLog",
	Aliases: []string{"KMonitorActionLog"},
	Fields: []schema.Field{
		field("Time", schema.Timestamp, both),
		field("SNMPDevice", schema.Text, both),
		field("Type", schema.Integer, both),
		field("Message", schema.Text, both),
	},
}

// NetworkStatsLog is an entry of the network statistics log.
type NetworkStatsLog struct {
	NetworkStatID int32           `json:"NetworkStatID"`
	Time          strfmt.DateTime `json:"Time"`
	Application   string          `json:"Application"`
	BytesSent     int32           `json:"BytesSent"`
	BytesRcvd     int32           `json:"BytesRcvd"`
}

var networkStatsLogSchema = schema.Entity{
	Name:    "NetworkStatsLog",
	Aliases: []string{"KNetworkStatsLog"},
	Fields: []schema.Field{
		field("NetworkStatID", schema.Integer, none),
		field("Time", schema.Timestamp, both),
		field("Application", schema.Text, both),
		field("BytesSent", schema.Integer, none),
		field("BytesRcvd", schema.Integer, none),
	},
}

// RemoteControlLog is an entry of the remote control log.
type RemoteControlLog struct {
	StartTime      strfmt.DateTime `json:"StartTime"`
	LastActiveTime strfmt.DateTime `json:"LastActiveTime"`
	SessionType    int32           `json:"SessionType"`
	Admin          string          `json:"Admin"`
}

var remoteControlLogSchema = schema.Entity{
	Name:    "RemoteControlLog",
	Aliases: []string{"KRemoteControlLog"},
	Fields: []schema.Field{
		field("StartTime", schema.Timestamp, both),
		field("LastActiveTime", schema.Timestamp, both),
		field("SessionType", schema.Integer, both),
		field("Admin", schema.Text, both),
	},
}

// ApplicationEventLog is an entry of the Windows application event log.
type ApplicationEventLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var applicationEventLogSchema = schema.Entity{
	Name:    "ApplicationEventLog",
	Aliases: []string{"KApplicationEventLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}

// DirectoryServiceLog is an entry of the directory service event log.
type DirectoryServiceLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var directoryServiceLogSchema = schema.Entity{
	Name:    "DirectoryServiceLog",
	Aliases: []string{"KDirectoryServiceLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}

// DNSServerEventLog is an entry of the DNS server event log.
type DNSServerEventLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var dnsServerEventLogSchema = schema.Entity{
	Name:    "DNSServerEventLog",
	Aliases: []string{"KDNSServerEventLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}

// InternetExplorerLog is an entry of the Internet Explorer event log.
type InternetExplorerLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var internetExplorerLogSchema = schema.Entity{
	Name:    "InternetExplorerLog",
	Aliases: []string{"KInternetExplorerLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}

// SecurityEventLog is an entry of the Windows security event log.
type SecurityEventLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var securityEventLogSchema = schema.Entity{
	Name:    "SecurityEventLog",
	Aliases: []string{"KSecurityEventLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}

// SystemEventLog is an entry of the Windows system event log.
type SystemEventLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var systemEventLogSchema = schema.Entity{
	Name:    "SystemEventLog",
	Aliases: []string{"KSystemEventLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}

// LogMonitoringLog is an entry of the log monitoring log.
type LogMonitoringLog struct {
	EventID  int32           `json:"EventId"`
	User     string          `json:"User"`
	Category string          `json:"Category"`
	Source   string          `json:"Source"`
	Type     string          `json:"Type"`
	Time     strfmt.DateTime `json:"Time"`
}

var logMonitoringLogSchema = schema.Entity{
	Name:    "LogMonitoringLog",
	Aliases: []string{"KLogMonitoringLog"},
	Fields: []schema.Field{
		field("EventId", schema.Integer, both),
		field("User", schema.Text, both),
		field("Category", schema.Text, both),
		field("Source", schema.Text, both),
		field("Type", schema.Text, both),
		field("Time", schema.Timestamp, both),
	},
}
