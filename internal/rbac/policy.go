package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles are stored verbatim on the employee record and inside JWT claims.
const (
	RoleAdmin    = "ADMIN"
	RoleLead     = "LEAD"
	RoleEmployee = "EMPLOYEE"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// rule is one row of the authorization-policy table: (role, resource,
// action) -> allow, optionally constrained to records the caller owns.
type rule struct {
	role     string
	resource string
	action   string
	ownOnly  bool
}

// policyTable is the single source of truth for authorization. Role
// inheritance: ADMIN > LEAD > EMPLOYEE, so EMPLOYEE rows apply to everyone
// and LEAD rows also apply to ADMIN. Ownership constraints are lifted for
// ADMIN and LEAD (they carry their own unconstrained grants where needed).
var policyTable = []rule{
	{RoleEmployee, "attendance", "check_in", true},
	{RoleEmployee, "attendance", "check_out", true},
	{RoleEmployee, "attendance", "read", true},
	{RoleEmployee, "leave", "create", true},
	{RoleEmployee, "leave", "read", true},
	{RoleEmployee, "leave", "cancel", true},
	{RoleEmployee, "leave", "delete", true},
	{RoleEmployee, "fine", "read", true},
	{RoleEmployee, "appeal", "create", true},
	{RoleEmployee, "appeal", "read", true},
	{RoleEmployee, "payroll", "read", true},
	{RoleEmployee, "employee", "read", true},
	{RoleEmployee, "employee", "update", true},
	{RoleEmployee, "settings", "read", false},
	{RoleEmployee, "dashboard", "read", false},
	{RoleEmployee, "lead_permission", "read", false},

	{RoleLead, "leave", "decide", false},
	{RoleLead, "appeal", "decide", false},

	{RoleAdmin, "employee", "create", false},
	{RoleAdmin, "employee", "delete", false},
	{RoleAdmin, "attendance", "create", false},
	{RoleAdmin, "attendance", "update", false},
	{RoleAdmin, "attendance", "delete", false},
	{RoleAdmin, "leave", "update", false},
	{RoleAdmin, "leave", "delete", false},
	{RoleAdmin, "fine", "create", false},
	{RoleAdmin, "fine", "update", false},
	{RoleAdmin, "fine", "delete", false},
	{RoleAdmin, "payroll", "process", false},
	{RoleAdmin, "settings", "update", false},
	{RoleAdmin, "lead_permission", "update", false},
}

// NewEnforcer builds a casbin enforcer preloaded with the static policy
// table and the role hierarchy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleLead); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(RoleLead, RoleEmployee); err != nil {
		return nil, err
	}

	for _, r := range policyTable {
		if _, err := e.AddPolicy(r.role, r.resource, r.action); err != nil {
			return nil, err
		}
	}

	return e, nil
}
