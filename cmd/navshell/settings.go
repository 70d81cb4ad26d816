package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/navshell/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/navshell/internal/observable"
	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

func newSettingsCmd(appCtx *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or change persisted preferences",
	}

	cmd.AddCommand(newSettingsShowCmd(appCtx))
	cmd.AddCommand(newSettingsSetCmd(appCtx))
	cmd.AddCommand(newSettingsResetCmd(appCtx))

	return cmd
}

func newSettingsShowCmd(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd, appCtx, "command.settings.show", func(ctx context.Context, ctrl *settings.Controller) error {
				return printSettings(cmd, ctrl)
			})
		},
	}
}

type settingsSetOptions struct {
	theme         string
	notifications string
}

func newSettingsSetCmd(appCtx *AppContext) *cobra.Command {
	opts := &settingsSetOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change and save preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.theme == "" && opts.notifications == "" {
				return errors.New("nothing to set: pass --theme and/or --notifications")
			}

			var theme settings.Theme
			if opts.theme != "" {
				parsed, err := settings.ParseTheme(opts.theme)
				if err != nil {
					return err
				}
				theme = parsed
			}

			var notifications *bool
			if opts.notifications != "" {
				v, err := strconv.ParseBool(opts.notifications)
				if err != nil {
					return fmt.Errorf("invalid --notifications value %q: %w", opts.notifications, err)
				}
				notifications = &v
			}

			return withSettings(cmd, appCtx, "command.settings.set", func(ctx context.Context, ctrl *settings.Controller) error {
				if theme != "" {
					if err := ctrl.SetTheme(theme); err != nil {
						return err
					}
				}
				if notifications != nil {
					ctrl.SetNotifications(*notifications)
				}
				if !ctrl.Save(ctx) {
					return newCommandError("save settings", "the store rejected the update", errors.New("save failed"),
						"Run with --verbose to see the store error.")
				}
				return printSettings(cmd, ctrl)
			})
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to store (light or dark)")
	cmd.Flags().StringVar(&opts.notifications, "notifications", "", "Email notifications (true or false)")

	return cmd
}

func newSettingsResetCmd(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove stored preferences and restore defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd, appCtx, "command.settings.reset", func(ctx context.Context, ctrl *settings.Controller) error {
				ctrl.Reset(ctx)
				return printSettings(cmd, ctrl)
			})
		},
	}
}

// withSettings opens the store, initialises a controller over it and hands
// it to fn.
func withSettings(cmd *cobra.Command, appCtx *AppContext, component string, fn func(context.Context, *settings.Controller) error) error {
	ctx, logger, err := commandLogger(cmd, appCtx, component)
	if err != nil {
		return err
	}

	store, err := appCtx.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn(ctx, "closing settings store failed", "error", cerr)
		}
	}()

	ctrl := settings.NewController(store, observable.NewValue(settings.DefaultTheme),
		settings.WithLogger(logger),
		settings.WithPublisher(events.NewLoggingPublisher(logger)),
	)
	ctrl.Initialize(ctx)

	return fn(ctx, ctrl)
}

func printSettings(cmd *cobra.Command, ctrl *settings.Controller) error {
	prefs := ctrl.Preferences()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "theme: %s\n", prefs.Theme)
	fmt.Fprintf(out, "notifications: %t\n", prefs.NotificationsEnabled)
	fmt.Fprintf(out, "status: %s\n", ctrl.StatusLine())
	return nil
}
