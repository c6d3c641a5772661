package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"palinview/internal/report"
	"palinview/internal/session"
)

func checkCmd(st *state) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Classify text as palindrome, not palindrome or indeterminate",
		Long: `Classify the arguments, joined by spaces. With no arguments each line
of stdin is classified in turn. Indeterminate input is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := st.newSession()

			if len(args) > 0 {
				return emit(out, s.SetInput(strings.Join(args, " ")), asJSON)
			}

			scanner := newLineScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := emit(out, s.SetInput(scanner.Text()), asJSON); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report instead of text")
	return cmd
}

// maxLineSize bounds one line read from stdin.
const maxLineSize = 4 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

func emit(w io.Writer, snap session.Snapshot, asJSON bool) error {
	r := report.FromSnapshot(snap)
	if asJSON {
		return report.Write(w, r)
	}
	_, err := io.WriteString(w, report.Text(r))
	return err
}
