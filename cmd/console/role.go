package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/shop-console/internal/apiclient"
	"github.com/example/shop-console/internal/guard"
	"github.com/example/shop-console/internal/model"
	"github.com/spf13/cobra"
)

var (
	assignEmail string
	assignRole  string
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage user roles",
}

var roleAssignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Grant a role to a user (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteAssignRole); err != nil {
			return err
		}
		if assignEmail == "" || assignRole == "" {
			return errors.New("--email and --role are required")
		}

		roleID, err := parseRole(assignRole)
		if err != nil {
			return err
		}
		if err := console.api.AssignRole(cmd.Context(), assignEmail, roleID); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Failed to assign role"))
		}
		fmt.Printf("Assigned %s to %s.\n", model.RoleName(roleID), assignEmail)
		return nil
	},
}

// parseRole accepts a role name or its numeric id.
func parseRole(arg string) (int64, error) {
	switch strings.ToLower(arg) {
	case "customer":
		return model.RoleCustomer, nil
	case "merchant":
		return model.RoleMerchant, nil
	case "admin":
		return model.RoleAdmin, nil
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || model.RoleName(id) == "Unknown" {
		return 0, fmt.Errorf("unknown role %q", arg)
	}
	return id, nil
}

func init() {
	roleAssignCmd.Flags().StringVar(&assignEmail, "email", "", "user email")
	roleAssignCmd.Flags().StringVar(&assignRole, "role", "", "role name or id: customer, merchant, admin")
	roleCmd.AddCommand(roleAssignCmd)
	rootCmd.AddCommand(roleCmd)
}
