package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/export"
)

// NewBuildCommand creates the build command
func NewBuildCommand(s *session) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and link the schema registry",
		Long: `Build the registry from the catalog modules and resolve every reference.

The build process:
  1. Flatten - expand module providers depth first
  2. Index - validate nodes and reject duplicate names
  3. Link - resolve view lineage, reference targets and operation tokens
  4. Fingerprint - hash the exported document`,
		Example: `  # Build the whole catalog
  unispec build

  # Build only two modules, tolerating references to the others
  UNISPEC_LINK_STRICT=false unispec build -m calendario -m horarios

  # Show every resolved external
  unispec build --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			out := cmd.OutOrStdout()

			reg, err := s.build()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
				return reported(err)
			}

			linked, err := s.link(reg)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
				return reported(err)
			}

			fingerprint, err := export.Fingerprint(reg)
			if err != nil {
				return err
			}

			operations := 0
			for _, d := range reg.Declarators() {
				operations += len(d.OperationNames())
			}

			ui.Header(out, "Registry "+s.cfg.Catalog, s.noColor)
			kv := ui.NewKeyValueTable(out, s.noColor)
			kv.AddRow("Nodes", strconv.Itoa(reg.Len()))
			kv.AddRow("Entities", strconv.Itoa(len(reg.Entities())))
			kv.AddRow("Views", strconv.Itoa(len(reg.Views())))
			kv.AddRow("Declarators", strconv.Itoa(len(reg.Declarators())))
			kv.AddRow("Operations", strconv.Itoa(operations))
			kv.AddRow("References", strconv.Itoa(len(linked.Edges())))
			kv.AddRow("Externals", strconv.Itoa(len(linked.Externals())))
			kv.AddRow("Fingerprint", fingerprint)
			kv.Render()

			if verbose {
				fmt.Fprintln(out)
				ext := make([]string, 0, len(linked.Externals()))
				for _, t := range linked.Externals() {
					ext = append(ext, string(t))
				}
				fmt.Fprintf(out, "Externals: %s\n", strings.Join(ext, ", "))
			}

			elapsed := time.Since(start)
			s.logger.Info("build finished",
				zap.Int("nodes", reg.Len()),
				zap.String("fingerprint", fingerprint),
				zap.Duration("elapsed", elapsed),
			)

			fmt.Fprintln(out)
			ui.WriteSuccess(out, fmt.Sprintf("Registry built in %s", elapsed.Round(time.Millisecond)), s.noColor)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show resolved externals")

	return cmd
}
