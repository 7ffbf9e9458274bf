package guard

import "github.com/example/shop-console/internal/model"

// Route is a navigation target and its access requirements. Protected=false
// means public; Protected with no AllowedRoles means any authenticated user.
type Route struct {
	Name         string
	Path         string
	Protected    bool
	AllowedRoles []int64
}

// Route names used by the console commands.
const (
	RouteLogin         = "login"
	RouteRegister      = "register"
	RouteDashboard     = "dashboard"
	RouteProfile       = "profile"
	RouteProductDetail = "product-detail"
	RouteProducts      = "products"
	RouteCreateProduct = "create-product"
	RouteDeleteProduct = "delete-product"
	RouteAssignRole    = "assign-role"
)

// Routes mirrors the storefront's navigation table: dashboard and profile
// for any authenticated user, product management for merchants and admins,
// role assignment for admins only, product detail public.
var Routes = []Route{
	{Name: RouteLogin, Path: "/login"},
	{Name: RouteRegister, Path: "/register"},
	{Name: RouteProductDetail, Path: "/products/{id}"},
	{Name: RouteDashboard, Path: "/dashboard", Protected: true},
	{Name: RouteProfile, Path: "/profile", Protected: true},
	{Name: RouteProducts, Path: "/products", Protected: true, AllowedRoles: []int64{model.RoleMerchant, model.RoleAdmin}},
	{Name: RouteCreateProduct, Path: "/products/create", Protected: true, AllowedRoles: []int64{model.RoleMerchant, model.RoleAdmin}},
	{Name: RouteDeleteProduct, Path: "/products/{id}/delete", Protected: true, AllowedRoles: []int64{model.RoleAdmin}},
	{Name: RouteAssignRole, Path: "/roles/assign", Protected: true, AllowedRoles: []int64{model.RoleAdmin}},
}

// Find looks a route up by name.
func Find(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
