package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/schema"
)

// NewListCommand creates the list command
func NewListCommand(s *session) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every registered node",
		Example: `  # Every node in registration order
  unispec list

  # Only views
  unispec list --kind view`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch kind {
			case "", "entity", "view", "declarator":
			default:
				return fmt.Errorf("unknown kind %q (expected entity, view or declarator)", kind)
			}

			reg, err := s.build()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
				return reported(err)
			}

			table := ui.NewTable(cmd.OutOrStdout(), []string{"#", "KIND", "TYPE", "TOKEN", "DETAIL"}, &ui.TableOptions{NoColor: s.noColor})
			for i, n := range reg.Nodes() {
				row := describe(i, n)
				if kind != "" && row[1] != kind {
					continue
				}
				table.AddRow(row...)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only list nodes of this kind (entity, view, declarator)")

	return cmd
}

// describe returns the list row of node i
func describe(i int, n schema.Node) []string {
	idx := strconv.Itoa(i)
	switch v := n.(type) {
	case *schema.View:
		detail := fmt.Sprintf("%d properties", v.Properties.Len())
		if v.PartialOf != "" {
			detail += ", partial of " + string(v.PartialOf)
		}
		return []string{idx, "view", v.TypeKind().String(), string(v.Name), detail}
	case *schema.Object:
		return []string{idx, "entity", v.TypeKind().String(), "", fmt.Sprintf("%d properties", v.Properties.Len())}
	case *declarator.Declarator:
		return []string{idx, "declarator", "", string(v.Entity), fmt.Sprintf("%d operations", len(v.OperationNames()))}
	default:
		return []string{idx, n.NodeKind().String(), "", "", ""}
	}
}
