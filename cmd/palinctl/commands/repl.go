package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"palinview/internal/report"
)

const prompt = "palin> "

func replCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Check lines interactively",
		Long: `Each line replaces the session input, as if typed into the widget.
:example loads an example phrase and :quit exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := st.newSession()
			picker, err := st.cfg.NewPicker()
			if err != nil {
				return err
			}

			scanner := newLineScanner(cmd.InOrStdin())
			fmt.Fprint(out, prompt)
			for scanner.Scan() {
				line := scanner.Text()
				switch strings.TrimSpace(line) {
				case ":quit", ":q":
					return nil
				case ":example":
					snap := s.LoadExample(picker)
					st.metrics.RecordExample()
					fmt.Fprintf(out, "%s\n", snap.Raw)
					printSnapshot(out, report.FromSnapshot(snap))
				default:
					printSnapshot(out, report.FromSnapshot(s.SetInput(line)))
				}
				fmt.Fprint(out, prompt)
			}
			fmt.Fprintln(out)
			return scanner.Err()
		},
	}
}

func printSnapshot(w io.Writer, r report.Report) {
	fmt.Fprintf(w, "epoch=%d active=%t\n%s", r.Epoch, r.Active, report.Text(r))
}
