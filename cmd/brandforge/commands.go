// Package brandforge wires the CLI surface: the root command, the apply
// and list subcommands, and version output.
package brandforge

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brandforge/brandforge/internal/version"
	"github.com/brandforge/brandforge/pkg/commands/apply"
	"github.com/brandforge/brandforge/pkg/commands/list"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/paths"
	"github.com/brandforge/brandforge/pkg/types"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "brandforge",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&root, "root", "", MsgFlagRoot)

	rootCmd.AddCommand(newApplyCmd(&root))
	rootCmd.AddCommand(newListCmd(&root))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newApplyCmd(root *string) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "apply <brand>...",
		Short: MsgApplyShort,
		Long:  MsgApplyLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New(*root)
			if err != nil {
				return err
			}
			for _, brandID := range args {
				err := apply.Apply(cmd.Context(), apply.Options{
					Paths:    p,
					BrandID:  brandID,
					Platform: types.Platform(platform),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgBrandApplied, brandID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", MsgFlagPlatform)
	return cmd
}

func newListCmd(root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New(*root)
			if err != nil {
				return err
			}
			brands, err := list.Brands(list.Options{Paths: p})
			if err != nil {
				return err
			}
			if len(brands) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoBrandsFound)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgAvailableLabel)
			for _, b := range brands {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", b)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "brandforge version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
