/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/kaseyaschema/schema"
)

// AuditSummary is the latest audit summary of a machine.
type AuditSummary struct {
	AgentGUID               float64 `json:"AgentGuid"`
	DisplayName             string  `json:"DisplayName"`
	TimezoneOffset          int32   `json:"TimezoneOffset"`
	CurrentLogin            string  `json:"CurrentLogin"`
	AgentType               int32   `json:"AgentType"`
	RebootTime              string  `json:"RebootTime"`
	LastCheckinTime         string  `json:"LastCheckinTime"`
	GroupName               string  `json:"GroupName"`
	FirstCheckinTime        string  `json:"FirstCheckinTime"`
	TimeZone                string  `json:"TimeZone"`
	WorkgroupDomainType     int32   `json:"WorkgroupDomainType"`
	WorkgroupDomainName     string  `json:"WorkgroupDomainName"`
	ComputerName            string  `json:"ComputerName"`
	DNSComputerName         string  `json:"DnsComputerName"`
	OSType                  string  `json:"OsType"`
	OSInfo                  string  `json:"OsInfo"`
	IPAddress               string  `json:"IpAddress"`
	IPv6Address             string  `json:"Ipv6Address"`
	SubnetMask              string  `json:"SubnetMask"`
	DefaultGateway          string  `json:"DefaultGateway"`
	ConnectionGatewayIP     string  `json:"ConnectionGatewayIp"`
	GatewayCountry          string  `json:"GatewayCountry"`
	MacAddress              string  `json:"MacAddress"`
	DNSServer1              string  `json:"DnsServer1"`
	DNSServer2              string  `json:"DnsServer2"`
	DHCPEnabled             int32   `json:"DhcpEnabled"`
	DHCPServer              string  `json:"DhcpServer"`
	WinsEnabled             int32   `json:"WinsEnabled"`
	PrimaryWinsServer       string  `json:"PrimaryWinsServer"`
	SecondaryWinsServer     string  `json:"SecondaryWinsServer"`
	CPUType                 string  `json:"CpuType"`
	CPUSpeed                int32   `json:"CpuSpeed"`
	CPUCount                int32   `json:"CpuCount"`
	RamMBytes               int32   `json:"RamMBytes"`
	AgentVersion            int32   `json:"AgentVersion"`
	LastLoginName           string  `json:"LastLoginName"`
	LoginName               string  `json:"LoginName"`
	PrimaryKServer          string  `json:"PrimaryKServer"`
	SecondaryKServer        string  `json:"SecondaryKServer"`
	QuickCheckinPeriod      string  `json:"QuickCheckinPeriod"`
	ContactName             string  `json:"ContactName"`
	ContactEmail            string  `json:"ContactEmail"`
	ContactPhone            string  `json:"ContactPhone"`
	ContactNotes            string  `json:"ContactNotes"`
	Manufacturer            string  `json:"Manufacturer"`
	ProductName             string  `json:"ProductName"`
	SystemVersion           string  `json:"SystemVersion"`
	SystemSerialNumber      string  `json:"SystemSerialNumber"`
	ChassisSerialNumber     string  `json:"ChassisSerialNumber"`
	ChassisAssetTag         string  `json:"ChassisAssetTag"`
	ExternalBusSpeed        string  `json:"ExternalBusSpeed"`
	MaxMemorySize           string  `json:"MaxMemorySize"`
	MemorySlots             string  `json:"MemorySlots"`
	ChassisManufacturer     string  `json:"ChassisManufacturer"`
	ChassisType             string  `json:"ChassisType"`
	ChassisVersion          string  `json:"ChassisVersion"`
	MotherboardManufacturer string  `json:"MotherboardManufacturer"`
	MotherboardProduct      string  `json:"MotherboardProduct"`
	MotherboardVersion      string  `json:"MotherboardVersion"`
	MotherboardSerialNumber string  `json:"MotherboardSerialNumber"`
	ProcessorFamily         string  `json:"ProcessorFamily"`
	ProcessorManufacturer   string  `json:"ProcessorManufacturer"`
	ProcessorVersion        string  `json:"ProcessorVersion"`
	ProcessorMaxSpeed       string  `json:"ProcessorMaxSpeed"`
	ProcessorCurrentSpeed   string  `json:"ProcessorCurrentSpeed"`
	FreeSpace               int32   `json:"FreeSpace"`
	UsedSpace               int32   `json:"UsedSpace"`
	TotalSize               int32   `json:"TotalSize"`
	NumberOfDrives          int32   `json:"NumberOfDrives"`
}

var auditSummarySchema = schema.Entity{
	Name:        "AuditSummary",
	Aliases:     []string{"KAuditSummary"},
	Description: "Machine audit summary",
	Fields: []schema.Field{
		field("AgentGuid", schema.Number, flt),
		field("DisplayName", schema.Text, both),
		field("TimezoneOffset", schema.Integer, none),
		field("CurrentLogin", schema.Text, both),
		field("AgentType", schema.Integer, none),
		field("RebootTime", schema.Text, both),
		field("LastCheckinTime", schema.Text, both),
		field("GroupName", schema.Text, both),
		field("FirstCheckinTime", schema.Text, both),
		field("TimeZone", schema.Text, none),
		field("WorkgroupDomainType", schema.Integer, both),
		field("WorkgroupDomainName", schema.Text, both),
		field("ComputerName", schema.Text, both),
		field("DnsComputerName", schema.Text, both),
		field("OsType", schema.Text, none),
		field("OsInfo", schema.Text, both),
		field("IpAddress", schema.Text, both),
		field("Ipv6Address", schema.Text, both),
		field("SubnetMask", schema.Text, both),
		field("DefaultGateway", schema.Text, both),
		field("ConnectionGatewayIp", schema.Text, both),
		field("GatewayCountry", schema.Text, both),
		field("MacAddress", schema.Text, both),
		field("DnsServer1", schema.Text, both),
		field("DnsServer2", schema.Text, both),
		field("DhcpEnabled", schema.Integer, both),
		field("DhcpServer", schema.Text, both),
		field("WinsEnabled", schema.Integer, both),
		field("PrimaryWinsServer", schema.Text, both),
		field("SecondaryWinsServer", schema.Text, both),
		field("CpuType", schema.Text, both),
		field("CpuSpeed", schema.Integer, both),
		field("CpuCount", schema.Integer, both),
		field("RamMBytes", schema.Integer, both),
		field("AgentVersion", schema.Integer, both),
		field("LastLoginName", schema.Text, both),
		field("LoginName", schema.Text, both),
		field("PrimaryKServer", schema.Text, both),
		field("SecondaryKServer", schema.Text, both),
		field("QuickCheckinPeriod", schema.Text, both),
		field("ContactName", schema.Text, both),
		field("ContactEmail", schema.Text, both),
		field("ContactPhone", schema.Text, both),
		field("ContactNotes", schema.Text, both),
		field("Manufacturer", schema.Text, both),
		field("ProductName", schema.Text, both),
		field("SystemVersion", schema.Text, both),
		field("SystemSerialNumber", schema.Text, both),
		field("ChassisSerialNumber", schema.Text, both),
		field("ChassisAssetTag", schema.Text, both),
		field("ExternalBusSpeed", schema.Text, both),
		field("MaxMemorySize", schema.Text, both),
		field("MemorySlots", schema.Text, both),
		field("ChassisManufacturer", schema.Text, both),
		field("ChassisType", schema.Text, both),
		field("ChassisVersion", schema.Text, both),
		field("MotherboardManufacturer", schema.Text, both),
		field("MotherboardProduct", schema.Text, both),
		field("MotherboardVersion", schema.Text, both),
		field("MotherboardSerialNumber", schema.Text, both),
		field("ProcessorFamily", schema.Text, both),
		field("ProcessorManufacturer", schema.Text, both),
		field("ProcessorVersion", schema.Text, both),
		field("ProcessorMaxSpeed", schema.Text, both),
		field("ProcessorCurrentSpeed", schema.Text, both),
		field("FreeSpace", schema.Integer, both),
		field("UsedSpace", schema.Integer, both),
		field("TotalSize", schema.Integer, both),
		field("NumberOfDrives", schema.Integer, both),
	},
}

// Credentials is a credential record stored for an agent.
type Credentials struct {
	CredentialID    float64 `json:"CredentialId"`
	Type            string  `json:"Type"`
	Name            string  `json:"Name"`
	UserName        string  `json:"UserName"`
	Domain          string  `json:"Domain"`
	CreateAccount   bool    `json:"CreateAccount"`
	AsAdministrator bool    `json:"AsAdministrator"`
	InEffect        bool    `json:"InEffect"`
	Attributes      any     `json:"Attributes,omitempty"`
}

var credentialsSchema = schema.Entity{
	Name:        "Credentials",
	Aliases:     []string{"KCredentials"},
	Description: "Agent credential",
	Fields: []schema.Field{
		field("CredentialId", schema.Number, none),
		field("Type", schema.Text, none),
		field("Name", schema.Text, none),
		field("UserName", schema.Text, none),
		field("Domain", schema.Text, none),
		field("CreateAccount", schema.Boolean, none),
		field("AsAdministrator", schema.Boolean, none),
		field("InEffect", schema.Boolean, none),
		field("Attributes", schema.Opaque, none),
	},
}

// LocalUserGroup is a local user group found on a machine.
type LocalUserGroup struct {
	UserGroupName string `json:"UserGroupName"`
	Description   string `json:"Description"`
}

var localUserGroupSchema = schema.Entity{
	Name:    "LocalUserGroup",
	Aliases: []string{"KLocalUserGroup"},
	Fields: []schema.Field{
		field("UserGroupName", schema.Text, none),
		field("Description", schema.Text, none),
	},
}

// DiskVolume is a disk volume reported by the audit.
type DiskVolume struct {
	Drive       string `json:"Drive"`
	Type        string `json:"Type"`
	Format      string `json:"Format"`
	FreeMBytes  int32  `json:"FreeMBytes"`
	UsedMBytes  int32  `json:"UsedMBytes"`
	TotalMBytes int32  `json:"TotalMBytes"`
	Label       string `json:"Label"`
}

var diskVolumeSchema = schema.Entity{
	Name:    "DiskVolume",
	Aliases: []string{"KDiskVolume"},
	Fields: []schema.Field{
		field("Drive", schema.Text, both),
		field("Type", schema.Text, both),
		field("Format", schema.Text, both),
		field("FreeMBytes", schema.Integer, none),
		field("UsedMBytes", schema.Integer, none),
		field("TotalMBytes", schema.Integer, none),
		field("Label", schema.Text, both),
	},
}

// PciAndDisk is a PCI or disk hardware item reported by the audit.
type PciAndDisk struct {
	TypeID   int32  `json:"TypeId"`
	TypeName string `json:"TypeName"`
	Vendor   string `json:"Vendor"`
	Product  string `json:"Product"`
	Note     string `json:"Note"`
}

var pciAndDiskSchema = schema.Entity{
	Name:    "PciAndDisk",
	Aliases: []string{"KPciAndDisk"},
	Fields: []schema.Field{
		field("TypeId", schema.Integer, both),
		field("TypeName", schema.Text, both),
		field("Vendor", schema.Text, both),
		field("Product", schema.Text, both),
		field("Note", schema.Text, both),
	},
}

// Printer is a printer reported by the audit.
type Printer struct {
	PrinterName string `json:"PrinterName"`
	Port        string `json:"Port"`
	Model       string `json:"Model"`
}

var printerSchema = schema.Entity{
	Name:    "Printer",
	Aliases: []string{"KPrinter"},
	Fields: []schema.Field{
		field("PrinterName", schema.Text, both),
		field("Port", schema.Text, both),
		field("Model", schema.Text, both),
	},
}

// LocalGroupMember is a member of a local user group.
type LocalGroupMember struct {
	UserGroupName string `json:"UserGroupName"`
	MemberName    string `json:"MemberName"`
}

var localGroupMemberSchema = schema.Entity{
	Name:    "LocalGroupMember",
	Aliases: []string{"KLocalGroupMember"},
	Fields: []schema.Field{
		field("UserGroupName", schema.Text, both),
		field("MemberName", schema.Text, both),
	},
}

// AddRemovePrograms is an entry of the Windows add/remove programs list.
type AddRemovePrograms struct {
	DisplayName     string `json:"DisplayName"`
	UninstallString string `json:"UninstallString"`
}

var addRemoveProgramsSchema = schema.Entity{
	Name:    "AddRemovePrograms",
	Aliases: []string{"KAddRemovePrograms"},
	Fields: []schema.Field{
		field("DisplayName", schema.Text, both),
		field("UninstallString", schema.Text, none),
	},
}

// Application is an installed application found by the audit.
type Application struct {
	ApplicationName  string `json:"ApplicationName"`
	Description      string `json:"Description"`
	Version          string `json:"Version"`
	Manufacturer     string `json:"Manufacturer"`
	ProductName      string `json:"ProductName"`
	DirectoryPath    string `json:"DirectoryPath"`
	Size             int32  `json:"Size"`
	LastModifiedDate string `json:"LastModifiedDate"`
}

var applicationSchema = schema.Entity{
	Name:        "Application",
	Aliases:     []string{"KApplication"},
	Description: "Installed application",
	Fields: []schema.Field{
		field("ApplicationName", schema.Text, both),
		field("Description", schema.Text, none),
		field("Version", schema.Text, none),
		field("Manufacturer", schema.Text, both),
		field("ProductName", schema.Text, both),
		field("DirectoryPath", schema.Text, none),
		field("Size", schema.Integer, none),
		field("LastModifiedDate", schema.Text, srt),
	},
}

// License is a software license found by the audit.
type License struct {
	Publisher        string          `json:"Publisher"`
	ProductName      string          `json:"ProductName"`
	ProductKey       string          `json:"ProductKey"`
	LicenseCode      string          `json:"LicenseCode"`
	Version          string          `json:"Version"`
	InstallationDate strfmt.DateTime `json:"InstallationDate"`
}

var licenseSchema = schema.Entity{
	Name:        "License",
	Aliases:     []string{"KLicense"},
	Description: "Software license",
	Fields: []schema.Field{
		field("Publisher", schema.Text, both),
		field("ProductName", schema.Text, both),
		field("ProductKey", schema.Text, both),
		field("LicenseCode", schema.Text, both),
		field("Version", schema.Text, both),
		field("InstallationDate", schema.Timestamp, both),
	},
}

// SecurityProduct is an anti-virus or similar security product found by the audit.
type SecurityProduct struct {
	ProductType  string `json:"ProductType"`
	ProductName  string `json:"ProductName"`
	Manufacturer string `json:"Manufacturer"`
	Version      string `json:"Version"`
	IsActive     bool   `json:"IsActive"`
	IsUpToDate   bool   `json:"IsUpToDate"`
}

var securityProductSchema = schema.Entity{
	Name:    "SecurityProduct",
	Aliases: []string{"KSecurityProduct"},
	Fields: []schema.Field{
		field("ProductType", schema.Text, both),
		field("ProductName", schema.Text, both),
		field("Manufacturer", schema.Text, both),
		field("Version", schema.Text, none),
		field("IsActive", schema.Boolean, both),
		field("IsUpToDate", schema.Boolean, both),
	},
}

// StartupApp is an application launched at startup.
type StartupApp struct {
	AppName    string `json:"AppName"`
	AppCommand string `json:"AppCommand"`
	UserName   string `json:"UserName"`
}

var startupAppSchema = schema.Entity{
	Name:    "StartupApp",
	Aliases: []string{"KStartupApp"},
	Fields: []schema.Field{
		field("AppName", schema.Text, both),
		field("AppCommand", schema.Text, both),
		field("UserName", schema.Text, both),
	},
}

// LocalUserAccount is a local user account found on a machine.
type LocalUserAccount struct {
	LogonName            string `json:"LogonName"`
	FullName             string `json:"FullName"`
	Description          string `json:"Description"`
	IsDisabled           bool   `json:"IsDisabled"`
	IsLockedOut          bool   `json:"IsLockedOut"`
	IsPasswordRequired   bool   `json:"IsPasswordRequired"`
	IsPasswordExpired    bool   `json:"IsPasswordExpired"`
	IsPasswordChangeable bool   `json:"IsPasswordChangeable"`
}

var localUserAccountSchema = schema.Entity{
	Name:    "LocalUserAccount",
	Aliases: []string{"KLocalUserAccount"},
	Fields: []schema.Field{
		field("LogonName", schema.Text, both),
		field("FullName", schema.Text, both),
		field("Description", schema.Text, none),
		field("IsDisabled", schema.Boolean, none),
		field("IsLockedOut", schema.Boolean, none),
		field("IsPasswordRequired", schema.Boolean, none),
		field("IsPasswordExpired", schema.Boolean, none),
		field("IsPasswordChangeable", schema.Boolean, none),
	},
}
