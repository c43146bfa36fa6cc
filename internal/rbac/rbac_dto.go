package rbac

import "go-fichaje/internal/domain"

type (
	EnforceRequest     = domain.EnforceRequest
	EnforceResponse    = domain.EnforceResponse
	PermissionResponse = domain.PermissionResponse
)
