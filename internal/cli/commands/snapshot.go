package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/export"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/snapshot"
)

// NewSnapshotCommand creates the snapshot command group
func NewSnapshotCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and verify registry fingerprints",
		Long: `Snapshots record the fingerprint of a registry build in the configured
store (sqlite, postgres or redis) so later builds can be checked for drift.`,
	}

	cmd.AddCommand(newSnapshotSaveCommand(s))
	cmd.AddCommand(newSnapshotVerifyCommand(s))
	cmd.AddCommand(newSnapshotHistoryCommand(s))

	return cmd
}

func newSnapshotSaveCommand(s *session) *cobra.Command {
	var withDocument bool

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record the fingerprint of the current build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			linked, fingerprint, err := s.fingerprint(cmd)
			if err != nil {
				return err
			}

			var document []byte
			if withDocument {
				document, err = export.Encode(linked.Registry(), export.FormatJSON)
				if err != nil {
					return err
				}
			}

			store, err := snapshot.Open(cmd.Context(), s.cfg.Snapshot)
			if err != nil {
				return err
			}
			defer store.Close()

			snap := snapshot.New(s.cfg.Catalog, fingerprint, linked.Registry().Len(), document)
			if err := store.Save(cmd.Context(), snap); err != nil {
				return err
			}

			s.logger.Info("snapshot saved",
				zap.String("id", snap.ID.String()),
				zap.String("fingerprint", fingerprint),
				zap.String("driver", s.cfg.Snapshot.Driver),
			)
			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Saved snapshot %s (%s)", snap.ID, fingerprint), s.noColor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDocument, "document", false, "Store the exported JSON document with the fingerprint")

	return cmd
}

func newSnapshotVerifyCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare the current build with the latest snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fingerprint, err := s.fingerprint(cmd)
			if err != nil {
				return err
			}

			store, err := snapshot.Open(cmd.Context(), s.cfg.Snapshot)
			if err != nil {
				return err
			}
			defer store.Close()

			latest, err := store.Latest(cmd.Context(), s.cfg.Catalog)
			if errors.Is(err, snapshot.ErrNotFound) {
				return fmt.Errorf("no snapshot recorded for catalog %s, run unispec snapshot save first", s.cfg.Catalog)
			}
			if err != nil {
				return err
			}

			if !latest.Matches(fingerprint) {
				fmt.Fprint(cmd.ErrOrStderr(), ui.SnapshotMismatchError(latest.Fingerprint, fingerprint, s.noColor))
				return reported(fmt.Errorf("fingerprint %s does not match snapshot %s", fingerprint, latest.ID))
			}

			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Registry matches snapshot %s", latest.ID), s.noColor)
			return nil
		},
	}
}

func newSnapshotHistoryCommand(s *session) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := snapshot.Open(cmd.Context(), s.cfg.Snapshot)
			if err != nil {
				return err
			}
			defer store.Close()

			history, err := store.History(cmd.Context(), s.cfg.Catalog, limit)
			if err != nil {
				return err
			}

			if len(history) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warning("no snapshots recorded for catalog "+s.cfg.Catalog, nil, s.noColor))
				return nil
			}

			table := ui.NewTable(cmd.OutOrStdout(), []string{"ID", "CREATED", "NODES", "FINGERPRINT"}, &ui.TableOptions{NoColor: s.noColor})
			for _, snap := range history {
				table.AddRow(
					snap.ID.String(),
					snap.CreatedAt.UTC().Format(time.RFC3339),
					strconv.Itoa(snap.Nodes),
					short(snap.Fingerprint),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of snapshots (0 for all)")

	return cmd
}

// fingerprint builds, links and fingerprints the registry
func (s *session) fingerprint(cmd *cobra.Command) (*registry.Linked, string, error) {
	linked, err := s.linked()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.BuildError(err, s.noColor))
		return nil, "", reported(err)
	}
	fp, err := export.Fingerprint(linked.Registry())
	if err != nil {
		return nil, "", err
	}
	return linked, fp, nil
}

func short(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}
	return fingerprint
}
