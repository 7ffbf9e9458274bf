package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/example/shop-console/internal/apiclient"
	"github.com/example/shop-console/internal/config"
	"github.com/example/shop-console/internal/guard"
	"github.com/example/shop-console/internal/logger"
	"github.com/example/shop-console/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the process-wide collaborators every command shares.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	sessions *session.Store
	api      *apiclient.Client
}

var console app

var rootCmd = &cobra.Command{
	Use:           "shop-console",
	Short:         "Storefront and admin console for the shop API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		console.cfg = config.Load()
		console.log = logger.NewWithDefaults(console.cfg.Env)

		slot, err := session.NewFileTokenStore(console.cfg.Token.Path)
		if err != nil {
			return fmt.Errorf("token store: %w", err)
		}
		console.sessions = session.NewStore(slot)
		if err := console.sessions.Rehydrate(); err != nil {
			console.log.Warn("could not restore session", zap.Error(err))
		}

		console.api = apiclient.New(console.cfg.API.BaseURL, console.sessions, console.log)
		return nil
	}
}

// ensureProfile fetches the user profile when the session holds a token but
// no user yet. A missing profile is not logged-out; role-gated decisions
// simply fail closed until it loads.
func ensureProfile(cmd *cobra.Command) {
	sess := console.sessions.Current()
	if !sess.Authenticated() || sess.User != nil {
		return
	}
	user, err := console.api.Profile(cmd.Context())
	if err != nil {
		console.log.Warn("could not load profile", zap.Error(err))
		return
	}
	console.sessions.SetCredentials(sess.Token, user)
}

// requireRoute runs the access guard for the named route and converts the
// decision into a user-facing error.
func requireRoute(cmd *cobra.Command, name string) error {
	route, ok := guard.Find(name)
	if !ok {
		return fmt.Errorf("unknown route %q", name)
	}
	if len(route.AllowedRoles) > 0 {
		ensureProfile(cmd)
	}

	switch guard.Evaluate(console.sessions.Current(), route) {
	case guard.RedirectToLogin:
		return errors.New("not logged in; run 'shop-console login' first")
	case guard.RedirectToDefault:
		return errors.New("your role does not allow this; try 'shop-console dashboard'")
	}
	return nil
}
