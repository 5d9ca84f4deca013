/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import "github.com/suparena/kaseyaschema/schema"

// Shorthands for the capability column of the field tables.
const (
	none = schema.Capability(0)
	flt  = schema.Filterable
	srt  = schema.Sortable
	both = schema.Filterable | schema.Sortable
)

func field(name string, t schema.Type, caps schema.Capability) schema.Field {
	return schema.NewField(name, t, caps)
}

// Catalogue holds every entity type exposed by the Kaseya VSA REST API, in the
// order the API documents them. Each entity is also reachable under its
// original K-prefixed class name.
var Catalogue = schema.MustNewRegistry(
	agentProcedureSchema,
	scheduledAgentProcedureSchema,
	scriptPromptsSchema,
	recurrenceOptionsSchema,
	distributionWindowSchema,
	startOptionsSchema,
	exclusionWindowSchema,
	agentProcedureHistorySchema,
	agentProcedurePromptsSchema,
	serviceDeskSchema,
	ticketSchema,
	ticketStatusSchema,
	auditSummarySchema,
	credentialsSchema,
	localUserGroupSchema,
	diskVolumeSchema,
	pciAndDiskSchema,
	printerSchema,
	localGroupMemberSchema,
	addRemoveProgramsSchema,
	applicationSchema,
	licenseSchema,
	securityProductSchema,
	startupAppSchema,
	localUserAccountSchema,
	patchStatusSchema,
	patchSchema,
	agentSchema,
	agentViewSchema,
	assetSchema,
	assetAdvancedSchema,
	deviceFoundSchema,
	probeSchema,
	deviceInfoSchema,
	deviceMotherBoardSchema,
	deviceBiosInfoSchema,
	deviceProcessorSchema,
	deviceMemorySchema,
	deviceDriveSchema,
	deviceIPsSchema,
	deviceHwPCISchema,
	probeTypeSchema,
	assetTypeSchema,
	twoFactorSettingsSchema,
	remoteControlNotifyPolicySchema,
	documentSchema,
	fileSchema,
	agentLogSchema,
	agentProcedureLogSchema,
	alarmLogSchema,
	configChangesLogSchema,
	legacyRemoteControlLogSchema,
	monitorActionLogSchema,
	networkStatsLogSchema,
	remoteControlLogSchema,
	applicationEventLogSchema,
	directoryServiceLogSchema,
	dnsServerEventLogSchema,
	internetExplorerLogSchema,
	securityEventLogSchema,
	systemEventLogSchema,
	logMonitoringLogSchema,
	functionsSchema,
	tenantSchema,
	departmentSchema,
	machineGroupSchema,
	organizationSchema,
	contactInfoSchema,
	customFieldsSchema,
	userRoleSchema,
	userRoleTypeSchema,
	scopeSchema,
	userSchema,
)
