package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"qltview/internal/logging"
	"qltview/internal/qlt"
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Decode a program and print its resolved coordinates",
	Long: `decode runs the full pipeline without the interactive viewer: the file
is decoded, every coordinate expression is evaluated against the board
geometry, and the resulting triples are printed per record. Skipped rows
and failed expressions go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	g, err := boardGeometry()
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{Level: logLevel(), Format: "console"})
	if err != nil {
		return err
	}
	defer log.Sync()

	dec := qlt.NewDecoder(qlt.DefaultSchema(), log)
	recs, err := dec.DecodeFile(args[0])
	if err != nil {
		return err
	}

	ev := qlt.NewEvaluator(log)
	out := cmd.OutOrStdout()
	holes, failed, orphans := 0, 0, 0
	for i, rec := range recs {
		ts, st := ev.TriplesStats(rec, g)
		fmt.Fprintf(out, "record %d  use=%s layer=%s diam=%s depth=%s  holes=%d\n",
			i+1, rec.Use, rec.Layer, rec.Diam, rec.Depth, len(ts))
		for _, t := range ts {
			fmt.Fprintf(out, "  (%.3f, %.3f, %.3f)\n", t.X, t.Y, t.Z)
		}
		holes += len(ts)
		failed += st.Failed
		orphans += st.Discarded
	}
	fmt.Fprintf(out, "board %gx%gx%g  records=%d holes=%d failed=%d orphans=%d\n",
		g.Width, g.Height, g.Thickness, len(recs), holes, failed, orphans)
	return nil
}
