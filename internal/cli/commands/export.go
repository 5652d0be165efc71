package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/export"
)

// NewExportCommand creates the export command
func NewExportCommand(s *session) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the registry document",
		Long: `Build and link the registry, then write it as an ordered JSON or YAML
document. Without --output the document goes to stdout.`,
		Example: `  unispec export
  unispec export --format yaml -o build/sisgea.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = s.cfg.Output.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			linked, err := s.linked()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
				return reported(err)
			}

			data, err := export.Encode(linked.Registry(), f)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			s.logger.Info("registry exported",
				zap.String("path", output),
				zap.String("format", string(f)),
				zap.Int("bytes", len(data)),
			)
			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", output), s.noColor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (default: output.format)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
