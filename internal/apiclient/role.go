package apiclient

import (
	"context"
	"net/http"

	"github.com/example/shop-console/internal/model"
)

// AssignRole grants a role to the user identified by email. Admin only;
// the response body is opaque.
func (c *Client) AssignRole(ctx context.Context, email string, roleID int64) error {
	_, err := c.do(ctx, http.MethodPost, "/role/assign", model.AssignRolePayload{
		Email:  email,
		RoleID: roleID,
	})
	return err
}
