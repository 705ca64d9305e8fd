package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/san-kum/hydroprops/internal/hydro"
	"github.com/san-kum/hydroprops/internal/params"
	"github.com/san-kum/hydroprops/internal/snapshot"
	"github.com/san-kum/hydroprops/internal/units"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	overrides []string
	snapIndex int
	snapBase  string
	usedFile  string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hydroprops",
	})
)

// main registers the commands and runs the root command. Invalid hydro
// parameters are fatal: the process exits with status 1.
func main() {
	rootCmd := &cobra.Command{
		Use:           "hydroprops",
		Short:         "SPH sub-model parameters: check, report and snapshot metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hydroprops", "snapshot directory")

	checkCmd := &cobra.Command{
		Use:   "check [params.yml]",
		Short: "read and validate a parameter file, then report it",
		Args:  cobra.ExactArgs(1),
		RunE:  checkParams,
	}
	checkCmd.Flags().StringArrayVarP(&overrides, "param", "P", nil, "override a parameter (Section:name:value)")
	checkCmd.Flags().IntVar(&snapIndex, "snapshot", 0, "write snapshot metadata with this index")
	checkCmd.Flags().StringVar(&snapBase, "basename", "snapshot", "snapshot base name")
	checkCmd.Flags().StringVar(&usedFile, "used", "", "write the parameters that were read to this file")

	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "report the parameters used when no parameter file is given",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			hydro.NewPropertiesForTesting().Report(logger)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	showCmd := &cobra.Command{
		Use:   "show [snapshot_id]",
		Short: "show snapshot metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}

	rootCmd.AddCommand(checkCmd, defaultsCmd, listCmd, showCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func checkParams(cmd *cobra.Command, args []string) error {
	src, err := params.Load(args[0])
	if err != nil {
		return err
	}
	for _, o := range overrides {
		if err := src.Override(o); err != nil {
			return err
		}
	}

	us, err := units.FromSource(src)
	if err != nil {
		return err
	}

	props, err := hydro.NewProperties(src, us, units.NewConstants(us))
	if err != nil {
		return fmt.Errorf("invalid hydro parameters: %w", err)
	}

	logger.Info("MHD support", "compiled", hydro.MHDEnabled)
	props.Report(logger)

	for _, key := range src.Unused() {
		logger.Warn("parameter not used", "key", key)
	}

	if cmd.Flags().Changed("snapshot") {
		id, err := writeSnapshot(props, us)
		if err != nil {
			return err
		}
		logger.Info("snapshot metadata written", "id", id)
	}

	if usedFile != "" {
		if err := writeUsed(src, usedFile); err != nil {
			return err
		}
		logger.Info("used parameters written", "path", usedFile)
	}

	return nil
}

func writeUsed(src *params.File, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := src.WriteUsed(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := snapshot.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINDEX\tTIME\tGROUPS")

	for _, snap := range snaps {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n",
			snap.ID,
			snap.Index,
			snap.Timestamp.Format("2006-01-02 15:04:05"),
			len(snap.Groups),
		)
	}

	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	st := snapshot.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(renderMetadata(meta))
	return nil
}
