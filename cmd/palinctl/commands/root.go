package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"palinview/internal/config"
	"palinview/internal/logging"
	"palinview/internal/metrics"
	"palinview/internal/session"
)

// state is shared by the subcommands of one invocation.
type state struct {
	configPath    string
	showMetrics   bool
	metricsFormat string
	verbose       bool

	cfg     *config.Config
	log     *logging.Logger
	metrics *metrics.PalinviewMetrics
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with fresh state.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:          "palinctl",
		Short:        "Palindrome checker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return st.finish(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&st.configPath, "config", "", "config file (default: platform config dir)")
	root.PersistentFlags().BoolVar(&st.showMetrics, "metrics", false, "print counters on exit")
	root.PersistentFlags().StringVar(&st.metricsFormat, "metrics-format", "prometheus", "counter output format: prometheus or json")
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "log session events to stderr")

	root.AddCommand(checkCmd(st), exampleCmd(st), replCmd(st), configCmd(st))
	return root
}

func (st *state) setup(stderr io.Writer) error {
	switch st.metricsFormat {
	case "prometheus", "json":
	default:
		return fmt.Errorf("unknown metrics format %q (want prometheus or json)", st.metricsFormat)
	}

	cfg, err := config.NewLoader(st.configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return st.init(cfg, stderr)
}

func (st *state) init(cfg *config.Config, stderr io.Writer) error {
	st.cfg = cfg

	lc, err := cfg.LoggerConfig("cli")
	if err != nil {
		return err
	}
	// The CLI logs to stderr only, and stays quiet unless asked.
	lc.Writer = stderr
	lc.Level = logging.LevelWarn
	if st.verbose {
		lc.Level = logging.LevelDebug
	}
	log, err := logging.New(lc)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	st.log = log
	st.metrics = metrics.NewPalinviewMetrics(nil)
	return nil
}

func (st *state) finish(stdout io.Writer) error {
	if st.log != nil {
		defer st.log.Close()
	}
	if !st.showMetrics || st.metrics == nil {
		return nil
	}
	if st.metricsFormat == "json" {
		return st.metrics.Registry().WriteJSON(stdout)
	}
	return st.metrics.Registry().WritePrometheus(stdout)
}

// newSession returns a session whose changes feed the counters.
func (st *state) newSession() *session.Session {
	s := session.New(st.log)
	s.OnChange(func(_, next session.Snapshot) {
		st.metrics.RecordCheck(next.Verdict, next.Epoch)
	})
	return s
}
