package models

// StaffRole is the closed role vocabulary shared with the external
// provisioning function.
type StaffRole string

const (
	RoleCashier     StaffRole = "cashier"
	RoleDoctor      StaffRole = "doctor"
	RoleLab         StaffRole = "lab"
	RolePharmacy    StaffRole = "pharmacy"
	RoleAdmin       StaffRole = "admin"
	RoleHodLab      StaffRole = "hod_lab"
	RoleHodPharmacy StaffRole = "hod_pharmacy"
)

var StaffRoles = map[StaffRole]bool{
	RoleCashier:     true,
	RoleDoctor:      true,
	RoleLab:         true,
	RolePharmacy:    true,
	RoleAdmin:       true,
	RoleHodLab:      true,
	RoleHodPharmacy: true,
}
