/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/suparena/kaseyaschema/schema"
)

// Asset is an asset tracked by the VSA, with or without an agent.
type Asset struct {
	AssetID            float64 `json:"AssetId"`
	AssetName          string  `json:"AssetName"`
	AssetTypeID        float64 `json:"AssetTypeId"`
	ProbeID            float64 `json:"ProbeId"`
	MachineGroupID     float64 `json:"MachineGroupId"`
	MachineGroup       string  `json:"MachineGroup"`
	OrgID              float64 `json:"OrgId"`
	IsComputerAgent    bool    `json:"IsComputerAgent"`
	IsMobileAgent      bool    `json:"IsMobileAgent"`
	IsMonitoring       bool    `json:"IsMonitoring"`
	IsPatching         bool    `json:"IsPatching"`
	IsAuditing         bool    `json:"IsAuditing"`
	IsBackingUp        bool    `json:"IsBackingUp"`
	IsSecurity         bool    `json:"IsSecurity"`
	TicketCount        float64 `json:"TicketCount"`
	AlarmCount         float64 `json:"AlarmCount"`
	IsSNMPActive       bool    `json:"IsSNMPActive"`
	IsVProActive       bool    `json:"IsVProActive"`
	NetworkInfo        float64 `json:"NetworkInfo"`
	AgentID            float64 `json:"AgentId"`
	DisplayName        string  `json:"DisplayName"`
	LastSeenDate       string  `json:"LastSeenDate"`
	ProbeAgentGUID     float64 `json:"ProbeAgentGuid"`
	PrimaryProbe       string  `json:"PrimaryProbe"`
	PrimaryProbeID     string  `json:"PrimaryProbeId"`
	NMapProbeID        float64 `json:"NMapProbeId"`
	HostName           string  `json:"HostName"`
	OSName             string  `json:"OSName"`
	OSType             string  `json:"OSType"`
	OSFamily           string  `json:"OSFamily"`
	OSGeneration       string  `json:"OSGeneration"`
	DeviceManufacturer string  `json:"DeviceManufacturer"`
	Attributes         any     `json:"Attributes,omitempty"`
}

var assetSchema = schema.Entity{
	Name:        "Asset",
	Aliases:     []string{"KAsset"},
	Description: "Asset",
	Fields: []schema.Field{
		field("AssetId", schema.Number, flt),
		field("AssetName", schema.Text, both),
		field("AssetTypeId", schema.Number, both),
		field("ProbeId", schema.Number, both),
		field("MachineGroupId", schema.Number, flt),
		field("MachineGroup", schema.Text, both),
		field("OrgId", schema.Number, flt),
		field("IsComputerAgent", schema.Boolean, both),
		field("IsMobileAgent", schema.Boolean, both),
		field("IsMonitoring", schema.Boolean, both),
		field("IsPatching", schema.Boolean, both),
		field("IsAuditing", schema.Boolean, both),
		field("IsBackingUp", schema.Boolean, both),
		field("IsSecurity", schema.Boolean, both),
		field("TicketCount", schema.Number, both),
		field("AlarmCount", schema.Number, both),
		field("IsSNMPActive", schema.Boolean, both),
		field("IsVProActive", schema.Boolean, both),
		field("NetworkInfo", schema.Number, both),
		field("AgentId", schema.Number, flt),
		field("DisplayName", schema.Text, both),
		field("LastSeenDate", schema.Text, both),
		field("ProbeAgentGuid", schema.Number, both),
		field("PrimaryProbe", schema.Text, both),
		field("PrimaryProbeId", schema.Text, both),
		field("NMapProbeId", schema.Number, both),
		field("HostName", schema.Text, both),
		field("OSName", schema.Text, both),
		field("OSType", schema.Text, both),
		field("OSFamily", schema.Text, both),
		field("OSGeneration", schema.Text, both),
		field("DeviceManufacturer", schema.Text, both),
		field("Attributes", schema.Opaque, both),
	},
}

// AssetAdvanced is an asset with its full discovery record.
type AssetAdvanced struct {
	AssetID        float64       `json:"AssetId"`
	AssetName      string        `json:"AssetName"`
	AssetTypeID    float64       `json:"AssetTypeId"`
	MachineGroupID float64       `json:"MachineGroupId"`
	MachineGroup   string        `json:"MachineGroup"`
	OrgID          float64       `json:"OrgId"`
	AgentID        float64       `json:"AgentId"`
	DeviceID       float64       `json:"DeviceId"`
	DeviceName     string        `json:"DeviceName"`
	DeviceType     float64       `json:"DeviceType"`
	DeviceTime     string        `json:"DeviceTime"`
	ServerTime     string        `json:"ServerTime"`
	DeviceFound    []DeviceFound `json:"DeviceFound,omitempty"`
	Attributes     any           `json:"Attributes,omitempty"`
}

var assetAdvancedSchema = schema.Entity{
	Name:        "AssetAdvanced",
	Aliases:     []string{"KAssetAdvanced"},
	Description: "Asset with discovery details",
	Fields: []schema.Field{
		field("AssetId", schema.Number, flt),
		field("AssetName", schema.Text, both),
		field("AssetTypeId", schema.Number, none),
		field("MachineGroupId", schema.Number, flt),
		field("MachineGroup", schema.Text, both),
		field("OrgId", schema.Number, flt),
		field("AgentId", schema.Number, flt),
		field("DeviceId", schema.Number, none),
		field("DeviceName", schema.Text, both),
		field("DeviceType", schema.Number, both),
		field("DeviceTime", schema.Text, none),
		field("ServerTime", schema.Text, none),
		field("DeviceFound", schema.ArrayOf(schema.EntityOf("DeviceFound")), none),
		field("Attributes", schema.Opaque, none),
	},
}

// DeviceFound is the discovery record of a device.
type DeviceFound struct {
	DeviceID          float64            `json:"DeviceId"`
	FoundOn           string             `json:"FoundOn"`
	FoundBy           *Probe             `json:"FoundBy,omitempty"`
	DeviceInfo        *DeviceInfo        `json:"DeviceInfo,omitempty"`
	DeviceMotherBoard *DeviceMotherBoard `json:"DeviceMotherBoard,omitempty"`
	DeviceBiosInfo    *DeviceBiosInfo    `json:"DeviceBiosInfo,omitempty"`
	DeviceProcessors  []DeviceProcessor  `json:"DeviceProcessors,omitempty"`
	DeviceMemories    []DeviceMemory     `json:"DeviceMemories,omitempty"`
	DeviceDrives      []DeviceDrive      `json:"DeviceDrives,omitempty"`
	DeviceIPs         []DeviceIPs        `json:"DeviceIPs,omitempty"`
	DeviceHwPCI       []DeviceHwPCI      `json:"DeviceHwPCI,omitempty"`
}

var deviceFoundSchema = schema.Entity{
	Name: "DeviceFound",
	Fields: []schema.Field{
		field("DeviceId", schema.Number, none),
		field("FoundOn", schema.Text, none),
		field("FoundBy", schema.EntityOf("Probe"), none),
		field("DeviceInfo", schema.EntityOf("DeviceInfo"), none),
		field("DeviceMotherBoard", schema.EntityOf("DeviceMotherBoard"), none),
		field("DeviceBiosInfo", schema.EntityOf("DeviceBiosInfo"), none),
		field("DeviceProcessors", schema.ArrayOf(schema.EntityOf("DeviceProcessor")), none),
		field("DeviceMemories", schema.ArrayOf(schema.EntityOf("DeviceMemory")), none),
		field("DeviceDrives", schema.ArrayOf(schema.EntityOf("DeviceDrive")), none),
		field("DeviceIPs", schema.ArrayOf(schema.EntityOf("DeviceIPs")), none),
		field("DeviceHwPCI", schema.ArrayOf(schema.EntityOf("DeviceHwPCI")), none),
	},
}

// Probe is the probe that discovered a device.
type Probe struct {
	ProbeID      float64    `json:"ProbeId"`
	ProbeTypeID  float64    `json:"ProbeTypeId"`
	ProbeName    string     `json:"ProbeName"`
	ProbeAgentID float64    `json:"ProbeAgentId"`
	ProbeType    *ProbeType `json:"ProbeType,omitempty"`
	Attributes   any        `json:"Attributes,omitempty"`
}

var probeSchema = schema.Entity{
	Name: "Probe",
	Fields: []schema.Field{
		field("ProbeId", schema.Number, flt),
		field("ProbeTypeId", schema.Number, flt),
		field("ProbeName", schema.Text, both),
		field("ProbeAgentId", schema.Number, none),
		field("ProbeType", schema.EntityOf("ProbeType"), none),
		field("Attributes", schema.Opaque, none),
	},
}

// DeviceInfo holds identity and operating system details of a discovered device.
type DeviceInfo struct {
	HostName     string  `json:"HostName"`
	Manufacturer string  `json:"Manufacturer"`
	Version      string  `json:"Version"`
	SerialNumber string  `json:"SerialNumber"`
	Port         float64 `json:"Port"`
	OSName       string  `json:"OSName"`
	OSType       string  `json:"OSType"`
	OSFamily     string  `json:"OSFamily"`
	OSVendor     string  `json:"OSVendor"`
	OSAccuracy   float64 `json:"OSAccuracy"`
	OSInfo       string  `json:"OSInfo"`
	OSGeneration string  `json:"OSGeneration"`
}

var deviceInfoSchema = schema.Entity{
	Name: "DeviceInfo",
	Fields: []schema.Field{
		field("HostName", schema.Text, none),
		field("Manufacturer", schema.Text, none),
		field("Version", schema.Text, none),
		field("SerialNumber", schema.Text, none),
		field("Port", schema.Number, none),
		field("OSName", schema.Text, none),
		field("OSType", schema.Text, none),
		field("OSFamily", schema.Text, none),
		field("OSVendor", schema.Text, none),
		field("OSAccuracy", schema.Number, none),
		field("OSInfo", schema.Text, none),
		field("OSGeneration", schema.Text, none),
	},
}

// DeviceMotherBoard describes the motherboard of a discovered device.
type DeviceMotherBoard struct {
	MotherboardManufacturer string `json:"MotherboardManufacturer"`
	MotherboardProductName  string `json:"MotherboardProductName"`
	MotherboardVersion      string `json:"MotherboardVersion"`
	MotherboardSerialNum    string `json:"MotherboardSerialNum"`
	MotherboardAssetTag     string `json:"MotherboardAssetTag"`
	MotherboardReplaceable  string `json:"MotherboardReplaceable"`
}

var deviceMotherBoardSchema = schema.Entity{
	Name: "DeviceMotherBoard",
	Fields: []schema.Field{
		field("MotherboardManufacturer", schema.Text, none),
		field("MotherboardProductName", schema.Text, none),
		field("MotherboardVersion", schema.Text, none),
		field("MotherboardSerialNum", schema.Text, none),
		field("MotherboardAssetTag", schema.Text, none),
		field("MotherboardReplaceable", schema.Text, none),
	},
}

// DeviceBiosInfo describes the BIOS of a discovered device.
type DeviceBiosInfo struct {
	BiosVendor             string `json:"BiosVendor"`
	BiosVersion            string `json:"BiosVersion"`
	BiosReleaseDate        string `json:"BiosReleaseDate"`
	BiosSupportedFunctions string `json:"BiosSupportedFunctions"`
}

var deviceBiosInfoSchema = schema.Entity{
	Name: "DeviceBiosInfo",
	Fields: []schema.Field{
		field("BiosVendor", schema.Text, none),
		field("BiosVersion", schema.Text, none),
		field("BiosReleaseDate", schema.Text, none),
		field("BiosSupportedFunctions", schema.Text, none),
	},
}

// DeviceProcessor is one processor of a discovered device.
type DeviceProcessor struct {
	ProcessorID              float64 `json:"ProcessorId"`
	ProcessorManufacturer    string  `json:"ProcessorManufacturer"`
	ProcessorFamily          string  `json:"ProcessorFamily"`
	ProcessorVersion         string  `json:"ProcessorVersion"`
	ProcessorMaxSpeed        float64 `json:"ProcessorMaxSpeed"`
	ProcessorCurrentSpeed    float64 `json:"ProcessorCurrentSpeed"`
	ProcessorStatus          string  `json:"ProcessorStatus"`
	ProcessorUpgradeInfo     string  `json:"ProcessorUpgradeInfo"`
	ProcessorSocketPopulated string  `json:"ProcessorSocketPopulated"`
	ProcessorType            string  `json:"ProcessorType"`
}

var deviceProcessorSchema = schema.Entity{
	Name: "DeviceProcessor",
	Fields: []schema.Field{
		field("ProcessorId", schema.Number, none),
		field("ProcessorManufacturer", schema.Text, none),
		field("ProcessorFamily", schema.Text, none),
		field("ProcessorVersion", schema.Text, none),
		field("ProcessorMaxSpeed", schema.Number, none),
		field("ProcessorCurrentSpeed", schema.Number, none),
		field("ProcessorStatus", schema.Text, none),
		field("ProcessorUpgradeInfo", schema.Text, none),
		field("ProcessorSocketPopulated", schema.Text, none),
		field("ProcessorType", schema.Text, none),
	},
}

// DeviceMemory is one memory module of a discovered device.
type DeviceMemory struct {
	MemoryManufacturer string  `json:"MemoryManufacturer"`
	MemorySerialNum    string  `json:"MemorySerialNum"`
	MemorySize         float64 `json:"MemorySize"`
	MemorySpeed        float64 `json:"MemorySpeed"`
	MemoryType         string  `json:"MemoryType"`
}

var deviceMemorySchema = schema.Entity{
	Name: "DeviceMemory",
	Fields: []schema.Field{
		field("MemoryManufacturer", schema.Text, none),
		field("MemorySerialNum", schema.Text, none),
		field("MemorySize", schema.Number, none),
		field("MemorySpeed", schema.Number, none),
		field("MemoryType", schema.Text, none),
	},
}

// DeviceDrive is one drive of a discovered device.
type DeviceDrive struct {
	DriveManufacturer      string  `json:"DriveManufacturer"`
	DriveSocketDesignation string  `json:"DriveSocketDesignation"`
	DriveVersion           string  `json:"DriveVersion"`
	DriveMaxSpeed          float64 `json:"DriveMaxSpeed"`
	DriveCurrentSpeed      float64 `json:"DriveCurrentSpeed"`
	DriveStatus            string  `json:"DriveStatus"`
	DriveUpgradeInfo       string  `json:"DriveUpgradeInfo"`
	DriveSocketPopulated   string  `json:"DriveSocketPopulated"`
}

var deviceDriveSchema = schema.Entity{
	Name: "DeviceDrive",
	Fields: []schema.Field{
		field("DriveManufacturer", schema.Text, none),
		field("DriveSocketDesignation", schema.Text, none),
		field("DriveVersion", schema.Text, none),
		field("DriveMaxSpeed", schema.Number, none),
		field("DriveCurrentSpeed", schema.Number, none),
		field("DriveStatus", schema.Text, none),
		field("DriveUpgradeInfo", schema.Text, none),
		field("DriveSocketPopulated", schema.Text, none),
	},
}

// DeviceIPs is one network address of a discovered device.
type DeviceIPs struct {
	IPAddress       string  `json:"IPAddress"`
	IPAddressType   float64 `json:"IPAddressType"`
	SubnetMask      string  `json:"SubnetMask"`
	DHCPEnabled     bool    `json:"DHCPEnabled"`
	IPv6Address     string  `json:"IPv6Address"`
	MACAddress      string  `json:"MACAddress"`
	MACManufacturer string  `json:"MACManufacturer"`
}

var deviceIPsSchema = schema.Entity{
	Name: "DeviceIPs",
	Fields: []schema.Field{
		field("IPAddress", schema.Text, none),
		field("IPAddressType", schema.Number, none),
		field("SubnetMask", schema.Text, none),
		field("DHCPEnabled", schema.Boolean, none),
		field("IPv6Address", schema.Text, none),
		field("MACAddress", schema.Text, none),
		field("MACManufacturer", schema.Text, none),
	},
}

// DeviceHwPCI is one PCI device of a discovered device.
type DeviceHwPCI struct {
	VendorID       float64 `json:"VendorId"`
	ProductID      float64 `json:"ProductId"`
	Revision       float64 `json:"Revision"`
	DeviceLocation string  `json:"DeviceLocation"`
	BaseClass      float64 `json:"BaseClass"`
	SubClass       float64 `json:"SubClass"`
	Bus            float64 `json:"Bus"`
	Slot           float64 `json:"Slot"`
	SubVendorID    string  `json:"SubVendorId"`
	SubSystemID    string  `json:"SubSystemId"`
}

var deviceHwPCISchema = schema.Entity{
	Name: "DeviceHwPCI",
	Fields: []schema.Field{
		field("VendorId", schema.Number, none),
		field("ProductId", schema.Number, none),
		field("Revision", schema.Number, none),
		field("DeviceLocation", schema.Text, none),
		field("BaseClass", schema.Number, none),
		field("SubClass", schema.Number, none),
		field("Bus", schema.Number, none),
		field("Slot", schema.Number, none),
		field("SubVendorId", schema.Text, none),
		field("SubSystemId", schema.Text, none),
	},
}

// ProbeType is a kind of discovery probe.
type ProbeType struct {
	ProbeTypeID   float64 `json:"ProbeTypeId"`
	ProbeTypeName string  `json:"ProbeTypeName"`
	Attributes    any     `json:"Attributes,omitempty"`
}

var probeTypeSchema = schema.Entity{
	Name: "ProbeType",
	Fields: []schema.Field{
		field("ProbeTypeId", schema.Number, flt),
		field("ProbeTypeName", schema.Text, both),
		field("Attributes", schema.Opaque, none),
	},
}

// AssetType is an asset classification.
type AssetType struct {
	AssetTypeID       float64 `json:"AssetTypeId"`
	AssetTypeName     string  `json:"AssetTypeName"`
	ParentAssetTypeID float64 `json:"ParentAssetTypeId"`
	Attributes        any     `json:"Attributes,omitempty"`
}

var assetTypeSchema = schema.Entity{
	Name:        "AssetType",
	Aliases:     []string{"KAssetType"},
	Description: "Asset type",
	Fields: []schema.Field{
		field("AssetTypeId", schema.Number, flt),
		field("AssetTypeName", schema.Text, both),
		field("ParentAssetTypeId", schema.Number, flt),
		field("Attributes", schema.Opaque, none),
	},
}
