package model

// Role is an integer-identified privilege tier. The id is the authority;
// the name is display-only.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"role"`
}

// Known role ids on the shop API.
const (
	RoleCustomer int64 = 1
	RoleMerchant int64 = 2
	RoleAdmin    int64 = 3
)

// RoleName maps a role id to its display name.
func RoleName(id int64) string {
	switch id {
	case RoleCustomer:
		return "Customer"
	case RoleMerchant:
		return "Merchant"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// User is an account as the API returns it. The API is inconsistent about
// role shape: some responses carry a Roles slice, others a legacy scalar
// RoleID. Never assume one of them is populated.
type User struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Roles  []Role `json:"roles,omitempty"`
	RoleID int64  `json:"roleId,omitempty"`
}

// HasAnyRole reports whether the user holds any of the given role ids,
// checking both role representations. Absence of both means no privilege.
func (u *User) HasAnyRole(ids ...int64) bool {
	if u == nil {
		return false
	}
	for _, id := range ids {
		if u.RoleID != 0 && u.RoleID == id {
			return true
		}
		for _, r := range u.Roles {
			if r.ID == id {
				return true
			}
		}
	}
	return false
}

// IsAdmin reports whether the user holds a privileged role (Merchant or
// Admin), matching the storefront's admin-panel check.
func (u *User) IsAdmin() bool {
	return u.HasAnyRole(RoleMerchant, RoleAdmin)
}

// VariationType enumerates how a product varies.
type VariationType string

const (
	VariationNone         VariationType = "NONE"
	VariationOnlySize     VariationType = "OnlySize"
	VariationOnlyColor    VariationType = "OnlyColor"
	VariationSizeAndColor VariationType = "SizeAndColor"
)

// Product is a catalog entry. A shell product has only an id and category;
// the remaining fields arrive with the detail attachment.
type Product struct {
	ID            FlexID        `json:"id"`
	CategoryID    FlexID        `json:"categoryId,omitempty"`
	OwnerID       int64         `json:"ownerId,omitempty"`
	Title         string        `json:"title,omitempty"`
	Code          string        `json:"code,omitempty"`
	VariationType VariationType `json:"variationType,omitempty"`
	Description   string        `json:"description,omitempty"`
	About         []string      `json:"about,omitempty"`
	IsActive      bool          `json:"isActive,omitempty"`
}

// ProductDetailsPayload is the body of the detail-attachment call.
type ProductDetailsPayload struct {
	Title         string         `json:"title"`
	Code          string         `json:"code"`
	VariationType VariationType  `json:"variationType"`
	Description   string         `json:"description"`
	About         []string       `json:"about"`
	Details       map[string]any `json:"details,omitempty"`
}

// LoginPayload is the body of the login call.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload is the body of the registration call.
type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AssignRolePayload is the body of the role-assignment call.
type AssignRolePayload struct {
	Email  string `json:"email"`
	RoleID int64  `json:"roleId"`
}
