package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vhscom/calc/internal/api"
	"github.com/vhscom/calc/internal/calc"
	"github.com/vhscom/calc/internal/config"
	"github.com/vhscom/calc/internal/logger"
	"github.com/vhscom/calc/internal/server"
	"github.com/vhscom/calc/internal/session"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Interactive calculator",
		Long: `calc evaluates arithmetic expressions with + - * / and parentheses.

Without a subcommand it launches an interactive keypad in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Configuration file (YAML, default "+config.DefaultPath()+")")

	cmd.AddCommand(newEvalCmd(opts), newServeCmd(opts))
	return cmd
}

func newEvalCmd(root *rootOptions) *cobra.Command {
	var (
		strict    bool
		serverURL string
	)

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one expression and print the result",
		Example: `  calc eval "2+3*4"
  calc eval -- -5+3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root.configFile)
			if err != nil {
				return err
			}
			defer log.Close()

			expr := strings.Join(args, " ")
			if !cmd.Flags().Changed("strict") {
				strict = cfg.StrictParens
			}
			if serverURL == "" {
				serverURL = cfg.ServerURL
			}

			var result string
			if serverURL != "" {
				resp, err := api.NewClient(serverURL, cfg.APIKey).Evaluate(cmd.Context(), expr)
				if err != nil {
					return err
				}
				result = resp.Result
			} else {
				v, err := calc.Evaluator{StrictParens: strict}.Evaluate(expr)
				if err != nil {
					log.Slog().Debug("evaluation failed", "expression", expr, "error", err)
					return err
				}
				result = calc.Format(v)
			}

			log.Slog().Debug("evaluated", "expression", expr, "result", result)
			color.New(color.Bold).Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject a missing closing parenthesis")
	cmd.Flags().StringVar(&serverURL, "server", "", "Evaluate on a calc server at this URL")
	return cmd
}

func newServeCmd(root *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calculator sessions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root.configFile)
			if err != nil {
				return err
			}
			defer log.Close()

			if listen == "" {
				listen = cfg.Listen
			}
			srv := server.New(server.Options{
				Evaluator: calc.Evaluator{StrictParens: cfg.StrictParens},
				APIKey:    cfg.APIKey,
				Logger:    log.Slog(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if path := configPath(root.configFile); path != "" {
				go watchConfig(ctx, path, srv, log.Slog())
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe(listen) }()
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", listen)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config, :8787)")
	return cmd
}

// configPath returns the config file to watch, or "" when there is none.
func configPath(flagValue string) string {
	path := flagValue
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// watchConfig applies strict_parens changes to a running server.
func watchConfig(ctx context.Context, path string, srv *server.Server, log *slog.Logger) {
	err := config.Watch(ctx, path, func(cfg *config.Config) {
		srv.SetEvaluator(calc.Evaluator{StrictParens: cfg.StrictParens})
		log.Info("config reloaded", "path", path, "strict_parens", cfg.StrictParens)
	}, func(err error) {
		log.Warn("config reload failed", "path", path, "error", err)
	})
	if err != nil {
		log.Warn("config watch stopped", "path", path, "error", err)
	}
}

func runTUI(opts *rootOptions) error {
	cfg, log, err := setup(opts.configFile)
	if err != nil {
		return err
	}
	defer log.Close()

	ctrl := session.Controller{
		Evaluator: calc.Evaluator{StrictParens: cfg.StrictParens},
		Logger:    log.Slog(),
	}

	p := tea.NewProgram(initialModel(ctrl))
	_, err = p.Run()
	return err
}

func setup(configFile string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(level, cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
