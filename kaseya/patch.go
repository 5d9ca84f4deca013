/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// PatchStatus is the patch management status of a machine.
type PatchStatus struct {
	AgentType                    int32           `json:"AgentType"`
	LastPatchScan                strfmt.DateTime `json:"LastPatchScan"`
	ExecScriptTime               strfmt.DateTime `json:"ExecScriptTime"`
	RunCount                     int32           `json:"RunCount"`
	MonthPeriod                  int32           `json:"MonthPeriod"`
	ExecPeriod                   int32           `json:"ExecPeriod"`
	RunAtTime                    int32           `json:"RunAtTime"`
	NextPatchScan                int32           `json:"NextPatchScan"`
	NextRunTime                  string          `json:"NextRunTime"`
	ScheduledScanScriptID        int32           `json:"ScheduledScanScriptId"`
	ScheduledScanScriptSchedType int32           `json:"ScheduledScanScriptSchedType"`
	ScanRunAtTime                int32           `json:"ScanRunAtTime"`
	ScanNextRunTime              strfmt.DateTime `json:"ScanNextRunTime"`
	NewPatchAlert                int32           `json:"NewPatchAlert"`
	PatchFailedAlert             int32           `json:"PatchFailedAlert"`
	InvalidCredentialAlert       int32           `json:"InvalidCredentialAlert"`
	WINAUChangedAlert            int32           `json:"WINAUChangedAlert"`
	AlertEmail                   string          `json:"AlertEmail"`
	SourceMachineGUID            string          `json:"SourceMachineGuid"`
	LanCacheName                 string          `json:"LanCacheName"`
	PreRebootScriptName          string          `json:"PreRebootScriptName"`
	PostRebootScriptName         string          `json:"PostRebootScriptName"`
	ScanResultsPending           string          `json:"ScanResultsPending"`
	Reset                        int32           `json:"Reset"`
	RbWarn                       string          `json:"RbWarn"`
	RebootDay                    string          `json:"RebootDay"`
	RebootTime                   string          `json:"RebootTime"`
	NoRebootEmail                string          `json:"NoRebootEmail"`
	SourceType                   int32           `json:"SourceType"`
	SourcePath                   string          `json:"SourcePath"`
	SourceLocal                  string          `json:"SourceLocal"`
	DestUseAgentDrive            int32           `json:"DestUseAgentDrive"`
	UseInternetSrcFallback       int32           `json:"UseInternetSrcFallback"`
}

var patchStatusSchema = schema.Entity{
	Name:        "PatchStatus",
	Aliases:     []string{"KPatchStatus"},
	Description: "Patch scan and reboot status",
	Fields: []schema.Field{
		field("AgentType", schema.Integer, none),
		field("LastPatchScan", schema.Timestamp, none),
		field("ExecScriptTime", schema.Timestamp, none),
		field("RunCount", schema.Integer, none),
		field("MonthPeriod", schema.Integer, none),
		field("ExecPeriod", schema.Integer, none),
		field("RunAtTime", schema.Integer, none),
		field("NextPatchScan", schema.Integer, none),
		field("NextRunTime", schema.Text, none),
		field("ScheduledScanScriptId", schema.Integer, none),
		field("ScheduledScanScriptSchedType", schema.Integer, none),
		field("ScanRunAtTime", schema.Integer, none),
		field("ScanNextRunTime", schema.Timestamp, none),
		field("NewPatchAlert", schema.Integer, none),
		field("PatchFailedAlert", schema.Integer, none),
		field("InvalidCredentialAlert", schema.Integer, none),
		field("WINAUChangedAlert", schema.Integer, none),
		field("AlertEmail", schema.Text, none),
		field("SourceMachineGuid", schema.Text, none),
		field("LanCacheName", schema.Text, none),
		field("PreRebootScriptName", schema.Text, none),
		field("PostRebootScriptName", schema.Text, none),
		field("ScanResultsPending", schema.Text, none),
		field("Reset", schema.Integer, none),
		field("RbWarn", schema.Text, none),
		field("RebootDay", schema.Text, none),
		field("RebootTime", schema.Text, none),
		field("NoRebootEmail", schema.Text, none),
		field("SourceType", schema.Integer, none),
		field("SourcePath", schema.Text, none),
		field("SourceLocal", schema.Text, none),
		field("DestUseAgentDrive", schema.Integer, none),
		field("UseInternetSrcFallback", schema.Integer, none),
	},
}

// Patch is one patch known to a machine.
type Patch struct {
	PatchDataID          int32           `json:"PatchDataId"`
	UpdateClassification int32           `json:"UpdateClassification"`
	UpdateCategory       int32           `json:"UpdateCategory"`
	KBArticleID          string          `json:"KBArticleId"`
	KBArticleLink        string          `json:"KBArticleLink"`
	SecurityBulletinID   string          `json:"SecurityBulletinId"`
	SecurityBulletinLink string          `json:"SecurityBulletinLink"`
	UpdateTitle          string          `json:"UpdateTitle"`
	LastPublishedDate    strfmt.DateTime `json:"LastPublishedDate"`
	LocationPending      int32           `json:"LocationPending"`
	LocationID           int32           `json:"LocationId"`
	BulletinID           string          `json:"BulletinId"`
	PatchState           int32           `json:"PatchState"`
	InstallDate          strfmt.DateTime `json:"InstallDate"`
	Ignore               int32           `json:"Ignore"`
	ProductID            int32           `json:"ProductId"`
	ApprovalStatus       int32           `json:"ApprovalStatus"`
	Location             string          `json:"Location"`
	WuaOverrideFlag      int32           `json:"WuaOverrideFlag"`
	Switches             string          `json:"Switches"`
	ProductName          string          `json:"ProductName"`
	IsSuperseded         bool            `json:"IsSuperseded"`
	WuaProductID         int32           `json:"WuaProductId"`
}

var patchSchema = schema.Entity{
	Name:        "Patch",
	Aliases:     []string{"KPatch"},
	Description: "Patch",
	Fields: []schema.Field{
		field("PatchDataId", schema.Integer, both),
		field("UpdateClassification", schema.Integer, both),
		field("UpdateCategory", schema.Integer, both),
		field("KBArticleId", schema.Text, srt),
		field("KBArticleLink", schema.Text, none),
		field("SecurityBulletinId", schema.Text, srt),
		field("SecurityBulletinLink", schema.Text, none),
		field("UpdateTitle", schema.Text, none),
		field("LastPublishedDate", schema.Timestamp, both),
		field("LocationPending", schema.Integer, both),
		field("LocationId", schema.Integer, none),
		field("BulletinId", schema.Text, srt),
		field("PatchState", schema.Integer, both),
		field("InstallDate", schema.Timestamp, both),
		field("Ignore", schema.Integer, both),
		field("ProductId", schema.Integer, both),
		field("ApprovalStatus", schema.Integer, both),
		field("Location", schema.Text, none),
		field("WuaOverrideFlag", schema.Integer, both),
		field("Switches", schema.Text, none),
		field("ProductName", schema.Text, both),
		field("IsSuperseded", schema.Boolean, both),
		field("WuaProductId", schema.Integer, both),
	},
}
