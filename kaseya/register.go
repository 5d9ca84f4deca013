/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import "github.com/suparena/kaseyaschema/registry"

// bind registers T as the instance type of entityType. A non-empty sortKey makes
// the entity storable: snapshots live in the entity type partition under the
// expanded sort key.
func bind[T any](entityType, sortKey string) {
	registry.RegisterType(entityType, func() any { return new(T) })

	var idx map[string]string
	if sortKey != "" {
		idx = map[string]string{"PK": entityType, "SK": sortKey}
	}
	registry.Bind[T](entityType, idx)
}

func init() {
	bind[AgentProcedure]("AgentProcedure", "{AgentProcedureId}")
	bind[ScheduledAgentProcedure]("ScheduledAgentProcedure", "{AgentId}#{AgentProcedureId}")
	bind[ScriptPrompts]("ScriptPrompts", "")
	bind[RecurrenceOptions]("RecurrenceOptions", "")
	bind[DistributionWindow]("DistributionWindow", "")
	bind[StartOptions]("StartOptions", "")
	bind[ExclusionWindow]("ExclusionWindow", "")
	bind[AgentProcedureHistory]("AgentProcedureHistory", "")
	bind[AgentProcedurePrompts]("AgentProcedurePrompts", "")
	bind[ServiceDesk]("ServiceDesk", "{ServiceDeskId}")
	bind[Ticket]("Ticket", "{ServiceDeskId}#{ServiceDeskTicketId}")
	bind[TicketStatus]("TicketStatus", "{ServiceDeskId}#{ServiceDeskTicketId}")
	bind[AuditSummary]("AuditSummary", "")
	bind[Credentials]("Credentials", "{CredentialId}")
	bind[LocalUserGroup]("LocalUserGroup", "")
	bind[DiskVolume]("DiskVolume", "")
	bind[PciAndDisk]("PciAndDisk", "")
	bind[Printer]("Printer", "")
	bind[LocalGroupMember]("LocalGroupMember", "")
	bind[AddRemovePrograms]("AddRemovePrograms", "")
	bind[Application]("Application", "")
	bind[License]("License", "")
	bind[SecurityProduct]("SecurityProduct", "")
	bind[StartupApp]("StartupApp", "")
	bind[LocalUserAccount]("LocalUserAccount", "")
	bind[PatchStatus]("PatchStatus", "")
	bind[Patch]("Patch", "{PatchDataId}")
	bind[Agent]("Agent", "{AgentId}")
	bind[AgentView]("AgentView", "{ViewDefId}")
	bind[Asset]("Asset", "{AssetId}")
	bind[AssetAdvanced]("AssetAdvanced", "{AssetId}")
	bind[DeviceFound]("DeviceFound", "")
	bind[Probe]("Probe", "{ProbeId}")
	bind[DeviceInfo]("DeviceInfo", "")
	bind[DeviceMotherBoard]("DeviceMotherBoard", "")
	bind[DeviceBiosInfo]("DeviceBiosInfo", "")
	bind[DeviceProcessor]("DeviceProcessor", "")
	bind[DeviceMemory]("DeviceMemory", "")
	bind[DeviceDrive]("DeviceDrive", "")
	bind[DeviceIPs]("DeviceIPs", "")
	bind[DeviceHwPCI]("DeviceHwPCI", "")
	bind[ProbeType]("ProbeType", "{ProbeTypeId}")
	bind[AssetType]("AssetType", "{AssetTypeId}")
	bind[TwoFactorSettings]("TwoFactorSettings", "{AgentID}")
	bind[RemoteControlNotifyPolicy]("RemoteControlNotifyPolicy", "")
	bind[Document]("Document", "{ParentPath}/{Name}")
	bind[File]("File", "{ParentPath}/{Name}")
	bind[AgentLog]("AgentLog", "")
	bind[AgentProcedureLog]("AgentProcedureLog", "")
	bind[AlarmLog]("AlarmLog", "")
	bind[ConfigChangesLog]("ConfigChangesLog", "")
	bind[LegacyRemoteControlLog]("LegacyRemoteControlLog", "")
	bind[MonitorActionLog]("MonitorActionLog", "")
	bind[NetworkStatsLog]("NetworkStatsLog", "")
	bind[RemoteControlLog]("RemoteControlLog", "")
	bind[ApplicationEventLog]("ApplicationEventLog", "")
	bind[DirectoryServiceLog]("DirectoryServiceLog", "")
	bind[DNSServerEventLog]("DNSServerEventLog", "")
	bind[InternetExplorerLog]("InternetExplorerLog", "")
	bind[SecurityEventLog]("SecurityEventLog", "")
	bind[SystemEventLog]("SystemEventLog", "")
	bind[LogMonitoringLog]("LogMonitoringLog", "")
	bind[Functions]("Functions", "")
	bind[Tenant]("Tenant", "{Id}")
	bind[Department]("Department", "{DepartmentId}")
	bind[MachineGroup]("MachineGroup", "{MachineGroupId}")
	bind[Organization]("Organization", "{OrgId}")
	bind[ContactInfo]("ContactInfo", "")
	bind[CustomFields]("CustomFields", "")
	bind[UserRole]("UserRole", "{RoleId}")
	bind[UserRoleType]("UserRoleType", "{RoleTypeId}")
	bind[Scope]("Scope", "{ScopeId}")
	bind[User]("User", "{UserId}")
}
