// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"code.hybscloud.com/pipe/internal/demo"
)

const (
	strategyExplicit = "explicit"
	strategyMonitor  = "monitor"
)

// NewPipeCmd returns the command running producers and a consumer over a pipe.
func NewPipeCmd() *cobra.Command {
	def := demo.DefaultPipeConfig()

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Run producers and a consumer over a pipe",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := pipeConfig(cc)
			if err != nil {
				return err
			}
			n, err := demo.RunPipe(cc.Context(), cfg)
			if err != nil {
				return fmt.Errorf("pipe run failed: %w", err)
			}
			fmt.Fprintf(cc.OutOrStdout(), "received: %d\n", n)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("producers", def.Producers, "Number of producing goroutines")
	flags.Int("messages", def.Messages, "Messages sent by each producer")
	flags.Int("capacity", def.Capacity, "Pipe capacity, 0 for unbounded")
	flags.String("strategy", strategyExplicit, "Synchronization strategy (explicit, monitor)")
	flags.Bool("fair", def.Fair, "Hand the lock off in FIFO order (explicit strategy)")
	flags.Duration("max_sleep", def.MaxSleep, "Upper bound of the random pause before each send")

	return cmd
}

func pipeConfig(cc *cobra.Command) (demo.PipeConfig, error) {
	flags := cc.Flags()

	var (
		cfg  demo.PipeConfig
		merr error
		err  error
	)

	if cfg.Producers, err = flags.GetInt("producers"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.Messages, err = flags.GetInt("messages"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.Capacity, err = flags.GetInt("capacity"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.Fair, err = flags.GetBool("fair"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.MaxSleep, err = flags.GetDuration("max_sleep"); err != nil {
		merr = multierror.Append(merr, err)
	}

	strategy, err := flags.GetString("strategy")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	switch strategy {
	case strategyExplicit:
	case strategyMonitor:
		cfg.Monitor = true
	default:
		merr = multierror.Append(merr, fmt.Errorf("unknown strategy %q", strategy))
	}

	if merr != nil {
		return cfg, fmt.Errorf("invalid argument: %w", merr)
	}
	return cfg, nil
}
