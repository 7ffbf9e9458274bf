package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/example/shop-console/internal/apiclient"
	"github.com/example/shop-console/internal/guard"
	"github.com/example/shop-console/internal/model"
	"github.com/example/shop-console/internal/session"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if console.sessions.Current().Authenticated() {
			fmt.Println("Already logged in. Run 'shop-console logout' to switch accounts.")
			return nil
		}

		email, password, err := credentials(loginEmail, loginPassword)
		if err != nil {
			return err
		}

		if err := console.sessions.LogIn(cmd.Context(), console.api, email, password); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Login failed. Provide valid credentials."))
		}

		sess := console.sessions.Current()
		fmt.Printf("Logged in as %s (%s)\n", sess.User.Email, guard.Classify(sess))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := credentials(loginEmail, loginPassword)
		if err != nil {
			return err
		}

		if err := console.api.Register(cmd.Context(), email, password); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Registration failed."))
		}
		fmt.Println("Account created. Run 'shop-console login' to sign in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session and the persisted token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := console.sessions.LogOut(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteProfile); err != nil {
			return err
		}
		ensureProfile(cmd)

		sess := console.sessions.Current()
		if sess.User == nil {
			// Profile is unavailable; fall back to what the token says.
			fmt.Println("Profile not loaded; showing token claims.")
			claims, err := session.TokenClaims(sess.Token)
			if err != nil {
				return err
			}
			fmt.Printf("Subject: %s\n", claims.Subject)
			if claims.Email != "" {
				fmt.Printf("Email:   %s\n", claims.Email)
			}
			if !claims.ExpiresAt.IsZero() {
				fmt.Printf("Expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
			}
			return nil
		}

		fmt.Printf("ID:    %d\n", sess.User.ID)
		fmt.Printf("Email: %s\n", sess.User.Email)
		fmt.Printf("Roles: %s\n", describeRoles(sess.User))
		fmt.Printf("Level: %s\n", guard.Classify(sess))
		return nil
	},
}

func describeRoles(user *model.User) string {
	if len(user.Roles) == 0 && user.RoleID == 0 {
		return "none"
	}
	names := make([]string, 0, len(user.Roles)+1)
	for _, r := range user.Roles {
		names = append(names, model.RoleName(r.ID))
	}
	if user.RoleID != 0 {
		names = append(names, model.RoleName(user.RoleID))
	}
	return strings.Join(names, ", ")
}

// credentials fills in whichever of email and password were not passed as
// flags by prompting on stdin.
func credentials(email, password string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		password = strings.TrimSpace(line)
	}
	if email == "" || password == "" {
		return "", "", errors.New("email and password are required")
	}
	return email, password, nil
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&loginEmail, "email", "", "account email")
		cmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	}
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, profileCmd)
}
