package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/example/shop-console/internal/apiclient"
	"github.com/example/shop-console/internal/catalog"
	"github.com/example/shop-console/internal/guard"
	"github.com/example/shop-console/internal/live"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consoleNotifier prints one-shot notifications to the terminal.
type consoleNotifier struct{}

func (consoleNotifier) Notify(message string) {
	fmt.Printf("\n*** %s\n", message)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live storefront: follow product activations as they happen",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteDashboard); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		view := catalog.NewView(catalog.Storefront, console.api, console.log)
		defer view.Close()

		// Baseline fetch. A failure here is shown but not fatal: the
		// subscription may still bring the view up to date.
		if err := view.Refresh(ctx); err != nil {
			fmt.Println(apiclient.ErrorMessage(err, "Failed to load products"))
		} else {
			printStorefront(view.Products())
		}

		source, err := newEventSource()
		if err != nil {
			return err
		}
		defer source.Close()

		reconciler := live.NewReconciler(view, console.api, consoleNotifier{}, console.log)
		defer reconciler.Close()

		fmt.Println("\nWatching for product activations. Ctrl-C to stop.")
		if err := source.Subscribe(ctx, reconciler.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// newEventSource builds the configured activation-event source.
func newEventSource() (live.EventSource, error) {
	cfg := console.cfg.Live
	switch cfg.Source {
	case "websocket":
		return live.NewWebSocketSource(cfg.SocketURL, console.log), nil
	case "kafka":
		console.log.Info("consuming activation events from kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic))
		return live.NewKafkaSource(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroup, console.log), nil
	default:
		return nil, fmt.Errorf("unknown live source %q", cfg.Source)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
