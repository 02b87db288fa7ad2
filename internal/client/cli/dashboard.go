package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/client/auth"
	"github.com/iudanet/khutwa/internal/client/sensor"
	"github.com/iudanet/khutwa/internal/models"
)

// DefaultPressureThreshold давление в кПа, выше которого зона подсвечивается
const DefaultPressureThreshold = 200.0

func (c *Cli) dashboardCommand() *cobra.Command {
	var (
		threshold float64
		count     int
	)

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Watch live insole sensor data",
		Long: `Show the latest insole reading and refresh it every poll interval
until interrupted (Ctrl+C) or the session ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}

			poller, err := sensor.NewPoller(c.sensor, c.cfg.PollInterval)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// Выход из сессии останавливает опрос
			unsubscribe := c.session.Subscribe(func(state auth.State, _ *models.User) {
				if state != auth.StateAuthenticated {
					cancel()
				}
			})
			defer unsubscribe()

			if !c.flags.json {
				if u := c.session.Current(); u != nil {
					c.io.Printf("Hello, %s. Refreshing every %s, press Ctrl+C to stop.\n", u.Name, c.cfg.PollInterval)
				}
			}

			seen := 0
			err = poller.Run(ctx, func(upd sensor.Update) {
				c.showUpdate(ctx, upd, threshold)
				seen++
				if count > 0 && seen >= count {
					cancel()
				}
			})
			if !errors.Is(err, context.Canceled) {
				return err
			}

			if !c.session.IsAuthenticated() {
				c.io.Println("Session ended. Sign in again to continue.")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&threshold, "threshold", DefaultPressureThreshold, "Highlight zones above this pressure (kPa)")
	f.IntVar(&count, "count", 0, "Stop after this many updates (0 runs until interrupted)")

	return cmd
}

func (c *Cli) showUpdate(ctx context.Context, upd sensor.Update, threshold float64) {
	if upd.Err != nil {
		if clientapi.IsKind(upd.Err, clientapi.KindAuth) {
			// Токен истек: RefreshProfile завершит сессию, подписка остановит опрос
			if _, err := c.auth.RefreshProfile(ctx); err == nil {
				return
			}
		}
		c.io.Printf("[%s] %s\n", upd.At.Format("15:04:05"), clientapi.UserMessage(upd.Err))
		return
	}

	if c.flags.json {
		_ = c.printJSON(map[string]any{
			"at":                upd.At,
			"reading":           upd.Reading,
			"highPressureZones": upd.Reading.HighPressureZones(threshold),
		})
		return
	}
	c.printReading(upd.Reading, threshold, upd.At)
}
