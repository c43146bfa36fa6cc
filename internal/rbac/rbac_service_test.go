package rbac

import (
	"errors"
	"testing"

	"go-fichaje/internal/domain"
	"go-fichaje/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type failingRepo struct{}

func (failingRepo) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return nil, errors.New("policy store down")
}

func (failingRepo) GetRolePermissions() ([]RolePermissionRow, error) {
	return nil, nil
}

func newLoadedService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(NewStaticRepository(), enforcer)
	assert.NoError(t, svc.LoadPolicy())
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newLoadedService(t)

	cases := []struct {
		name    string
		req     EnforceRequest
		allowed bool
	}{
		{"kiosk acts on attendance", EnforceRequest{Role: domain.RoleKiosk, Resource: ResourceAttendance, Action: ActionAct}, true},
		{"kiosk cannot manage codes", EnforceRequest{Role: domain.RoleKiosk, Resource: ResourceClockCode, Action: ActionManage}, false},
		{"employee reads own attendance", EnforceRequest{Role: domain.RoleEmployee, Resource: ResourceAttendance, Action: ActionRead}, true},
		{"employee cannot read others", EnforceRequest{Role: domain.RoleEmployee, Resource: ResourceAttendance, Action: ActionReadAny}, false},
		{"admin manages codes", EnforceRequest{Role: domain.RoleAdmin, Resource: ResourceClockCode, Action: ActionManage}, true},
		{"admin inherits employee actions", EnforceRequest{Role: domain.RoleAdmin, Resource: ResourceAttendance, Action: ActionAct}, true},
		{"unknown role", EnforceRequest{Role: "visitor", Resource: ResourceAttendance, Action: ActionRead}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestRBACService_ListPermissions(t *testing.T) {
	svc := newLoadedService(t)

	perms, err := svc.ListPermissions()
	assert.NoError(t, err)
	assert.Len(t, perms, len(DefaultPermissions))
	assert.Contains(t, perms, PermissionResponse{Role: domain.RoleAdmin, Resource: ResourceAudit, Action: ActionRead})
}

func TestRBACService_LoadPolicyError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(failingRepo{}, enforcer)
	assert.Error(t, svc.LoadPolicy())
}
