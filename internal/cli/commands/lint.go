package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/registry"
)

// NewLintCommand creates the lint command
func NewLintCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report every unresolved reference",
		Long: `Build the registry and run the link pass without stopping at the first
failure. Every reference that resolves neither to a registered view nor
to a declared external is reported. link.strict does not apply here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.build()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
				return reported(err)
			}

			missing := registry.Unresolved(reg, s.linkOptions()...)
			if len(missing) == 0 {
				ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d nodes, every reference resolves", reg.Len()), s.noColor)
				return nil
			}

			details := make([]string, len(missing))
			for i, m := range missing {
				details[i] = m.Error()
			}
			fmt.Fprint(cmd.ErrOrStderr(), ui.UnresolvedError(details, s.noColor))
			return reported(fmt.Errorf("lint failed: %d unresolved reference(s)", len(missing)))
		},
	}
}
