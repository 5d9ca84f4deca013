/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kaseya

import (
	"github.com/suparena/kaseyaschema/schema"
)

// Functions is the result envelope returned by VSA function calls.
type Functions struct {
	TotalRecords int32  `json:"TotalRecords"`
	Result       int32  `json:"Result"`
	ResponseCode int32  `json:"ResponseCode"`
	Status       string `json:"Status"`
	Error        string `json:"Error"`
}

var functionsSchema = schema.Entity{
	Name:        "Functions",
	Aliases:     []string{"KFunctions"},
	Description: "Function call result",
	Fields: []schema.Field{
		field("TotalRecords", schema.Integer, none),
		field("Result", schema.Integer, none),
		field("ResponseCode", schema.Integer, none),
		field("Status", schema.Text, none),
		field("Error", schema.Text, none),
	},
}

// Tenant is a VSA tenant partition.
type Tenant struct {
	ID             float64 `json:"Id"`
	Ref            string  `json:"Ref"`
	Type           string  `json:"Type"`
	TimeZoneOffset int32   `json:"TimeZoneOffset"`
	Attributes     any     `json:"Attributes,omitempty"`
}

var tenantSchema = schema.Entity{
	Name:        "Tenant",
	Aliases:     []string{"KTenant"},
	Description: "Tenant",
	Fields: []schema.Field{
		field("Id", schema.Number, none),
		field("Ref", schema.Text, none),
		field("Type", schema.Text, none),
		field("TimeZoneOffset", schema.Integer, none),
		field("Attributes", schema.Opaque, none),
	},
}

// Department is a department of an organization.
type Department struct {
	DepartmentID       float64 `json:"DepartmentId"`
	DepartmentName     string  `json:"DepartmentName"`
	ParentDepartmentID float64 `json:"ParentDepartmentId"`
	ManagerID          float64 `json:"ManagerId"`
	OrgID              float64 `json:"OrgId"`
	DepartmentRef      string  `json:"DepartmentRef"`
	Attributes         any     `json:"Attributes,omitempty"`
}

var departmentSchema = schema.Entity{
	Name:        "Department",
	Aliases:     []string{"KDepartment"},
	Description: "Department",
	Fields: []schema.Field{
		field("DepartmentId", schema.Number, flt),
		field("DepartmentName", schema.Text, both),
		field("ParentDepartmentId", schema.Number, flt),
		field("ManagerId", schema.Number, flt),
		field("OrgId", schema.Number, flt),
		field("DepartmentRef", schema.Text, flt),
		field("Attributes", schema.Opaque, none),
	},
}

// MachineGroup is a group of machines within an organization.
type MachineGroup struct {
	MachineGroupID       float64 `json:"MachineGroupId"`
	MachineGroupName     string  `json:"MachineGroupName"`
	ParentMachineGroupID float64 `json:"ParentMachineGroupId"`
	OrgID                float64 `json:"OrgId"`
	Attributes           any     `json:"Attributes,omitempty"`
}

var machineGroupSchema = schema.Entity{
	Name:        "MachineGroup",
	Aliases:     []string{"KMachineGroup"},
	Description: "Machine group",
	Fields: []schema.Field{
		field("MachineGroupId", schema.Number, flt),
		field("MachineGroupName", schema.Text, both),
		field("ParentMachineGroupId", schema.Number, flt),
		field("OrgId", schema.Number, both),
		field("Attributes", schema.Opaque, none),
	},
}

// Organization is a customer or internal organization.
type Organization struct {
	OrgID                   float64       `json:"OrgId"`
	OrgName                 string        `json:"OrgName"`
	OrgRef                  string        `json:"OrgRef"`
	OrgType                 string        `json:"OrgType"`
	DefaultDepartmentName   string        `json:"DefaultDepartmentName"`
	DefaultMachineGroupName string        `json:"DefaultMachineGroupName"`
	ParentOrgID             float64       `json:"ParentOrgId"`
	Website                 string        `json:"Website"`
	NoOfEmployees           int32         `json:"NoOfEmployees"`
	AnnualRevenue           float64       `json:"AnnualRevenue"`
	ContactInfo             *ContactInfo  `json:"ContactInfo,omitempty"`
	CustomFields            *CustomFields `json:"CustomFields,omitempty"`
	Attributes              any           `json:"Attributes,omitempty"`
}

var organizationSchema = schema.Entity{
	Name:        "Organization",
	Aliases:     []string{"KOrganization"},
	Description: "Organization",
	Fields: []schema.Field{
		field("OrgId", schema.Number, flt),
		field("OrgName", schema.Text, both),
		field("OrgRef", schema.Text, both),
		field("OrgType", schema.Text, none),
		field("DefaultDepartmentName", schema.Text, none),
		field("DefaultMachineGroupName", schema.Text, none),
		field("ParentOrgId", schema.Number, flt),
		field("Website", schema.Text, none),
		field("NoOfEmployees", schema.Integer, both),
		field("AnnualRevenue", schema.Number, both),
		field("ContactInfo", schema.EntityOf("ContactInfo"), none),
		field("CustomFields", schema.EntityOf("CustomFields"), none),
		field("Attributes", schema.Opaque, none),
	},
}

// ContactInfo holds the contact details of an organization.
type ContactInfo struct {
	PreferredContactMethod  string `json:"PreferredContactMethod"`
	PrimaryPhone            string `json:"PrimaryPhone"`
	PrimaryFax              string `json:"PrimaryFax"`
	PrimaryEmail            string `json:"PrimaryEmail"`
	Country                 string `json:"Country"`
	Street                  string `json:"Street"`
	City                    string `json:"City"`
	State                   string `json:"State"`
	ZipCode                 string `json:"ZipCode"`
	PrimaryTextMessagePhone string `json:"PrimaryTextMessagePhone"`
}

var contactInfoSchema = schema.Entity{
	Name: "ContactInfo",
	Fields: []schema.Field{
		field("PreferredContactMethod", schema.Text, none),
		field("PrimaryPhone", schema.Text, none),
		field("PrimaryFax", schema.Text, none),
		field("PrimaryEmail", schema.Text, none),
		field("Country", schema.Text, none),
		field("Street", schema.Text, none),
		field("City", schema.Text, none),
		field("State", schema.Text, none),
		field("ZipCode", schema.Text, none),
		field("PrimaryTextMessagePhone", schema.Text, none),
	},
}

// CustomFields is a custom field value attached to an organization.
type CustomFields struct {
	FieldName  string `json:"FieldName"`
	FieldValue string `json:"FieldValue"`
}

var customFieldsSchema = schema.Entity{
	Name: "CustomFields",
	Fields: []schema.Field{
		field("FieldName", schema.Text, none),
		field("FieldValue", schema.Text, none),
	},
}

// UserRole is a VSA user role.
type UserRole struct {
	RoleID      int32     `json:"RoleId"`
	RoleName    string    `json:"RoleName"`
	RoleTypeIDs []float64 `json:"RoleTypeIds,omitempty"`
	Attributes  any       `json:"Attributes,omitempty"`
}

var userRoleSchema = schema.Entity{
	Name:        "UserRole",
	Aliases:     []string{"KUserRole"},
	Description: "User role",
	Fields: []schema.Field{
		field("RoleId", schema.Integer, flt),
		field("RoleName", schema.Text, both),
		field("RoleTypeIds", schema.ArrayOf(schema.Number), none),
		field("Attributes", schema.Opaque, none),
	},
}

// UserRoleType is a role type bundling licensed features.
type UserRoleType struct {
	RoleTypeID          float64 `json:"RoleTypeId"`
	RoleTypeName        string  `json:"RoleTypeName"`
	RoleTypeDescription string  `json:"RoleTypeDescription"`
	Attributes          any     `json:"Attributes,omitempty"`
}

var userRoleTypeSchema = schema.Entity{
	Name:    "UserRoleType",
	Aliases: []string{"KUserRoleType"},
	Fields: []schema.Field{
		field("RoleTypeId", schema.Number, flt),
		field("RoleTypeName", schema.Text, both),
		field("RoleTypeDescription", schema.Text, none),
		field("Attributes", schema.Opaque, none),
	},
}

// Scope is a VSA user scope.
type Scope struct {
	ScopeID    float64 `json:"ScopeId"`
	ScopeName  string  `json:"ScopeName"`
	Attributes any     `json:"Attributes,omitempty"`
}

var scopeSchema = schema.Entity{
	Name:        "Scope",
	Aliases:     []string{"KScope"},
	Description: "Scope",
	Fields: []schema.Field{
		field("ScopeId", schema.Number, flt),
		field("ScopeName", schema.Text, both),
		field("Attributes", schema.Opaque, none),
	},
}

// User is a VSA user account.
type User struct {
	UserID                   int32     `json:"UserId"`
	AdminName                string    `json:"AdminName"`
	AdminPassword            string    `json:"AdminPassword"`
	Admintype                int32     `json:"Admintype"`
	DisableUntil             string    `json:"DisableUntil"`
	CreationDate             string    `json:"CreationDate"`
	AdminScopeIDs            []float64 `json:"AdminScopeIds,omitempty"`
	AdminRoleIDs             []int32   `json:"AdminRoleIds,omitempty"`
	FirstName                string    `json:"FirstName"`
	LastName                 string    `json:"LastName"`
	DefaultStaffOrgID        float64   `json:"DefaultStaffOrgId"`
	DefaultStaffDepartmentID float64   `json:"DefaultStaffDepartmentId"`
	Email                    string    `json:"Email"`
	Attributes               any       `json:"Attributes,omitempty"`
}

var userSchema = schema.Entity{
	Name:        "User",
	Aliases:     []string{"KUser"},
	Description: "VSA user",
	Fields: []schema.Field{
		field("UserId", schema.Integer, flt),
		field("AdminName", schema.Text, both),
		field("AdminPassword", schema.Text, both),
		field("Admintype", schema.Integer, none),
		field("DisableUntil", schema.Text, none),
		field("CreationDate", schema.Text, none),
		field("AdminScopeIds", schema.ArrayOf(schema.Number), none),
		field("AdminRoleIds", schema.ArrayOf(schema.Integer), none),
		field("FirstName", schema.Text, both),
		field("LastName", schema.Text, both),
		field("DefaultStaffOrgId", schema.Number, none),
		field("DefaultStaffDepartmentId", schema.Number, none),
		field("Email", schema.Text, both),
		field("Attributes", schema.Opaque, none),
	},
}
