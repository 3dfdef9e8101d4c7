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

// NewSpinLockCmd returns the command running the shared-counter workload.
func NewSpinLockCmd() *cobra.Command {
	def := demo.DefaultSpinLockConfig()

	cmd := &cobra.Command{
		Use:   "spinlock",
		Short: "Increment a shared counter under a spin lock",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			flags := cc.Flags()

			var (
				cfg  demo.SpinLockConfig
				merr error
				err  error
			)
			if cfg.Goroutines, err = flags.GetInt("goroutines"); err != nil {
				merr = multierror.Append(merr, err)
			}
			if cfg.Target, err = flags.GetInt("target"); err != nil {
				merr = multierror.Append(merr, err)
			}
			if cfg.Reentrant, err = flags.GetBool("reentrant"); err != nil {
				merr = multierror.Append(merr, err)
			}
			if merr != nil {
				return fmt.Errorf("invalid argument: %w", merr)
			}

			n, err := demo.RunSpinLock(cc.Context(), cfg)
			if err != nil {
				return fmt.Errorf("spinlock run failed: %w", err)
			}
			fmt.Fprintf(cc.OutOrStdout(), "result: %d\n", n)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("goroutines", def.Goroutines, "Number of incrementing goroutines")
	flags.Int("target", def.Target, "Counter value at which the first goroutine stops")
	flags.Bool("reentrant", def.Reentrant, "Use the reentrant spin lock, nesting each acquisition")

	return cmd
}
