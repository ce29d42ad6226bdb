package middlewares

import (
	"fmt"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"net/http"
)

// Permission names the guarded operations. Routes declare a permission and
// the table below decides which roles hold it; the role vocabulary is
// closed, so an unknown role can never slip through.
type Permission string

const (
	PermissionRegisterPatient   Permission = "patient:register"
	PermissionViewPatients      Permission = "patient:view"
	PermissionRecordPayment     Permission = "payment:record"
	PermissionViewPayments      Permission = "payment:view"
	PermissionRecordDiagnosis   Permission = "diagnosis:record"
	PermissionViewDiagnoses     Permission = "diagnosis:view"
	PermissionCompleteService   Permission = "service:complete"
	PermissionDispenseService   Permission = "service:dispense"
	PermissionViewLabQueue      Permission = "service:queue:lab"
	PermissionViewPharmacyQueue Permission = "service:queue:pharmacy"
	PermissionViewRevenue       Permission = "report:revenue"
	PermissionViewHODReports    Permission = "report:hod"
	PermissionViewCatalog       Permission = "catalog:view"
	PermissionUpdateCatalog     Permission = "catalog:update"
	PermissionManageUsers       Permission = "user:manage"
)

var allStaff = []models.StaffRole{
	models.RoleCashier, models.RoleDoctor, models.RoleLab, models.RolePharmacy,
	models.RoleAdmin, models.RoleHodLab, models.RoleHodPharmacy,
}

var permissionTable = map[Permission][]models.StaffRole{
	PermissionRegisterPatient:   {models.RoleCashier},
	PermissionViewPatients:      allStaff,
	PermissionRecordPayment:     {models.RoleCashier},
	PermissionViewPayments:      {models.RoleCashier, models.RoleAdmin},
	PermissionRecordDiagnosis:   {models.RoleDoctor},
	PermissionViewDiagnoses:     {models.RoleDoctor, models.RoleLab, models.RolePharmacy},
	PermissionCompleteService:   {models.RoleLab},
	PermissionDispenseService:   {models.RolePharmacy},
	PermissionViewLabQueue:      {models.RoleLab, models.RoleHodLab},
	PermissionViewPharmacyQueue: {models.RolePharmacy, models.RoleHodPharmacy},
	PermissionViewRevenue:       {models.RoleAdmin, models.RoleHodLab, models.RoleHodPharmacy},
	PermissionViewHODReports:    {models.RoleHodLab, models.RoleHodPharmacy},
	PermissionViewCatalog:       allStaff,
	PermissionUpdateCatalog:     {models.RoleAdmin},
	PermissionManageUsers:       {models.RoleAdmin},
}

// RoleHasPermission is the single lookup point for the permission table.
func RoleHasPermission(role models.StaffRole, permission Permission) bool {
	for _, allowed := range permissionTable[permission] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RequirePermission assumes Authenticate already ran and put the role in
// the request context.
func (m *Middlewares) RequirePermission(permission Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(models.StaffRole)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(fmt.Errorf("no role in context")))
				return
			}
			if !RoleHasPermission(role, permission) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(fmt.Errorf("role %s lacks %s", role, permission)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
