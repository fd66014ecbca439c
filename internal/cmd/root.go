// Package cmd implements vendorctl, the terminal front end of the vendor
// dashboard.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/client"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/config"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/workspace"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	baseURL    string
	assumeYes  bool

	client *client.Client
	ws     *workspace.Workspace
}

// NewRootCommand builds vendorctl.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "vendorctl",
		Short: "Vendor Dashboard from the terminal",
		Long: `vendorctl lists, filters and inspects vendors and runs bulk status
changes and deletions against the vendor API.

Row numbers printed by "list" identify rows of the filtered view; pass the
same --search/--status flags with --rows to act on them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./config.yaml if present)")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "vendor API base URL, overrides config")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newDashboardCmd(a),
		newSetStatusCmd(a),
		newBulkStatusCmd(a),
		newBulkDeleteCmd(a),
	)
	return root
}

// Execute runs vendorctl with os.Args.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.baseURL != "" {
		cfg.Client.BaseURL = a.baseURL
	}

	// Logs go to stderr so list output stays pipeable.
	log := logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())

	a.client = client.New(cfg.Client.BaseURL, &http.Client{Timeout: cfg.Client.Timeout})
	a.ws = workspace.New(a.client, workspace.Options{
		Notifier:  &printNotifier{out: cmd.ErrOrStderr()},
		Confirmer: &promptConfirmer{in: cmd.InOrStdin(), out: cmd.ErrOrStderr(), yes: &a.assumeYes},
		Logger:    log,
	})
	return nil
}

type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) Success(msg string) { fmt.Fprintf(n.out, "✓ %s\n", msg) }
func (n *printNotifier) Error(msg string)   { fmt.Fprintf(n.out, "✗ %s\n", msg) }

// promptConfirmer asks on the terminal. yes is bound to --yes.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
	yes *bool
}

func (c *promptConfirmer) Confirm(msg string) bool {
	if c.yes != nil && *c.yes {
		return true
	}
	fmt.Fprintf(c.out, "%s [y/N] ", msg)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
