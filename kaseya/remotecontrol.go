/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/suparena/kaseyaschema/schema"
)

// TwoFactorSettings holds the two-factor authentication settings of an agent.
type TwoFactorSettings struct {
	AgentID        float64 `json:"AgentID"`
	AuthEnabled    bool    `json:"AuthEnabled"`
	UseDefaultUser bool    `json:"UseDefaultUser"`
	UserName       string  `json:"UserName"`
	SASName        string  `json:"SASName"`
	SiteID         int32   `json:"SiteID"`
	Note           string  `json:"Note"`
}

var twoFactorSettingsSchema = schema.Entity{
	Name:    "TwoFactorSettings",
	Aliases: []string{"K2faSettings"},
	Fields: []schema.Field{
		field("AgentID", schema.Number, none),
		field("AuthEnabled", schema.Boolean, none),
		field("UseDefaultUser", schema.Boolean, none),
		field("UserName", schema.Text, none),
		field("SASName", schema.Text, none),
		field("SiteID", schema.Integer, none),
		field("Note", schema.Text, none),
	},
}

// RemoteControlNotifyPolicy is the remote control notification policy of a machine.
type RemoteControlNotifyPolicy struct {
	EmailAddr           string `json:"EmailAddr"`
	AgentGUID           string `json:"AgentGuid"`
	AdminGroupID        int32  `json:"AdminGroupId"`
	RemoteControlNotify int32  `json:"RemoteControlNotify"`
	NotifyText          string `json:"NotifyText"`
	AskText             string `json:"AskText"`
	TerminateNotify     int32  `json:"TerminateNotify"`
	TerminateText       string `json:"TerminateText"`
	RequireRcNote       int32  `json:"RequireRcNote"`
	RequiteFTPNote      int32  `json:"RequiteFTPNote"`
	RecordSession       int32  `json:"RecordSession"`
}

var remoteControlNotifyPolicySchema = schema.Entity{
	Name:        "RemoteControlNotifyPolicy",
	Aliases:     []string{"KRemoteControlNotifyPolicy"},
	Description: "Remote control notification policy",
	Fields: []schema.Field{
		field("EmailAddr", schema.Text, both),
		field("AgentGuid", schema.Text, both),
		field("AdminGroupId", schema.Integer, both),
		field("RemoteControlNotify", schema.Integer, both),
		field("NotifyText", schema.Text, none),
		field("AskText", schema.Text, none),
		field("TerminateNotify", schema.Integer, both),
		field("TerminateText", schema.Text, both),
		field("RequireRcNote", schema.Integer, both),
		field("RequiteFTPNote", schema.Integer, both),
		field("RecordSession", schema.Integer, both),
	},
}
