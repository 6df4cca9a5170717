package constants

import "fmt"

// Role pengguna di sistem pesantren
const (
	RoleAdmin    = "admin"
	RoleUstad    = "ustad"
	RoleOrangtua = "orangtua"
	RoleSantri   = "santri"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUstadCanAccess  = "❌ Hanya ustad atau admin yang boleh mengakses fitur %s."
	ErrOnlyParentCanAccess = "❌ Hanya orangtua atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUstad(feature string) string {
	return fmt.Sprintf(ErrOnlyUstadCanAccess, feature)
}

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleUstad,
		RoleOrangtua,
		RoleSantri,
	}

	UstadAndAbove = []string{
		RoleUstad,
		RoleAdmin,
	}

	ParentAndAbove = []string{
		RoleOrangtua,
		RoleUstad,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
