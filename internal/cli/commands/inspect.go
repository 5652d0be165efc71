package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/export"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand(s *session) *cobra.Command {
	var deps bool

	cmd := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Print one view or operation as YAML",
		Long: `Print the node addressed by a token. View names print the view; operation
names print the declarator that owns them; externals print a stub.`,
		Example: `  unispec inspect DiaCalendarioFindOneResult
  unispec inspect BlocoList --deps`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: s.completeTokens,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := schema.Token(args[0])

			linked, err := s.linked()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
				return reported(err)
			}

			node, err := linked.Resolve(tok)
			var unresolved *registry.UnresolvedReferenceError
			if errors.As(err, &unresolved) {
				fmt.Fprint(cmd.ErrOrStderr(), ui.TokenNotFoundError(args[0], suggestions(linked, args[0]), s.noColor))
				return reported(err)
			}
			if err != nil {
				return err
			}

			out, err := export.EncodeDoc(export.Node(node), export.FormatYAML)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(out)

			if deps {
				edges := linked.Dependents(tok)
				fmt.Fprintln(cmd.OutOrStdout())
				ui.Header(cmd.OutOrStdout(), fmt.Sprintf("Referenced by (%d)", len(edges)), s.noColor)
				table := ui.NewTable(cmd.OutOrStdout(), []string{"FROM", "PATH"}, &ui.TableOptions{NoColor: s.noColor})
				for _, e := range edges {
					table.AddRow(e.From, e.Path)
				}
				table.Render()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&deps, "deps", false, "Also list the references pointing at the token")

	return cmd
}

func suggestions(linked *registry.Linked, target string) []string {
	var candidates []string
	for _, t := range linked.Registry().Tokens() {
		candidates = append(candidates, string(t))
	}
	for _, t := range linked.Externals() {
		candidates = append(candidates, string(t))
	}
	return ui.SuggestTokens(target, candidates, nil)
}
