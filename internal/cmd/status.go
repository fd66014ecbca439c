package cmd

import (
	"errors"
	"fmt"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/bulk"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/spf13/cobra"
)

func parseStatus(s string) (vendor.Status, error) {
	status := vendor.Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q (want one of %v)", s, vendor.Statuses)
	}
	return status, nil
}

func newSetStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change one vendor's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			v, err := a.ws.SetStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", v.BusinessName, v.Status)
			return nil
		},
	}
}

func newBulkStatusCmd(a *app) *cobra.Command {
	var (
		view viewFlags
		rows string
		page bool
	)
	cmd := &cobra.Command{
		Use:   "bulk-status <status>",
		Short: "Change the status of selected rows",
		Example: `  vendorctl bulk-status suspended --status pending --rows 1,4
  vendorctl bulk-status active --page-all --sort -rating`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(args[0])
			if err != nil {
				return err
			}
			if err := view.apply(cmd.Context(), a); err != nil {
				return err
			}
			if err := selectRows(a, rows, page); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSelection(out, a.ws.Selection())

			updated, err := a.ws.BulkSetStatus(cmd.Context(), status)
			if err != nil {
				if errors.Is(err, bulk.ErrEmptySelection) {
					return errors.New("select rows with --rows or --page-all")
				}
				return err
			}
			fmt.Fprintf(out, "%d vendor(s) set to %s\n", len(updated), status)
			printSelection(out, a.ws.Selection())
			return nil
		},
	}
	view.register(cmd)
	cmd.Flags().StringVar(&rows, "rows", "", "comma separated row numbers from list")
	cmd.Flags().BoolVar(&page, "page-all", false, "select every row on the page")
	return cmd
}

func newBulkDeleteCmd(a *app) *cobra.Command {
	var (
		view viewFlags
		rows string
		page bool
	)
	cmd := &cobra.Command{
		Use:   "bulk-delete",
		Short: "Delete selected rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := view.apply(cmd.Context(), a); err != nil {
				return err
			}
			if err := selectRows(a, rows, page); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSelection(out, a.ws.Selection())

			deleted, err := a.ws.BulkDelete(cmd.Context())
			switch {
			case errors.Is(err, bulk.ErrEmptySelection):
				return errors.New("select rows with --rows or --page-all")
			case errors.Is(err, bulk.ErrCancelled):
				fmt.Fprintln(out, "cancelled")
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintf(out, "%d vendor(s) deleted\n", len(deleted))
			return nil
		},
	}
	view.register(cmd)
	cmd.Flags().StringVar(&rows, "rows", "", "comma separated row numbers from list")
	cmd.Flags().BoolVar(&page, "page-all", false, "select every row on the page")
	cmd.Flags().BoolVarP(&a.assumeYes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
