package rbac

import "go-fichaje/internal/domain"

// Repository supplies the policy loaded into the enforcer.
//
//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRoleInheritance() ([]RoleInheritanceRow, error)
	GetRolePermissions() ([]RolePermissionRow, error)
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

const (
	ResourceAttendance = "attendance"
	ResourceClockCode  = "clock_code"
	ResourceAudit      = "audit"
	ResourceRBAC       = "rbac"

	ActionRead    = "read"
	ActionReadAny = "read_any"
	ActionAct     = "act"
	ActionManage  = "manage"
)

// DefaultPermissions: employees and kiosk sessions act on their own
// attendance, admins additionally run the code directory.
var DefaultPermissions = []RolePermissionRow{
	{Role: domain.RoleEmployee, Resource: ResourceAttendance, Action: ActionRead},
	{Role: domain.RoleEmployee, Resource: ResourceAttendance, Action: ActionAct},
	{Role: domain.RoleKiosk, Resource: ResourceAttendance, Action: ActionRead},
	{Role: domain.RoleKiosk, Resource: ResourceAttendance, Action: ActionAct},
	{Role: domain.RoleAdmin, Resource: ResourceAttendance, Action: ActionReadAny},
	{Role: domain.RoleAdmin, Resource: ResourceClockCode, Action: ActionRead},
	{Role: domain.RoleAdmin, Resource: ResourceClockCode, Action: ActionManage},
	{Role: domain.RoleAdmin, Resource: ResourceAudit, Action: ActionRead},
	{Role: domain.RoleAdmin, Resource: ResourceRBAC, Action: ActionRead},
}

var DefaultInheritance = []RoleInheritanceRow{
	{Role: domain.RoleAdmin, Parent: domain.RoleEmployee},
}

type staticRepository struct {
	inheritance []RoleInheritanceRow
	permissions []RolePermissionRow
}

func NewStaticRepository() Repository {
	return &staticRepository{
		inheritance: DefaultInheritance,
		permissions: DefaultPermissions,
	}
}

func (r *staticRepository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return r.inheritance, nil
}

func (r *staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	return r.permissions, nil
}
