package cmd

import (
	"fmt"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var view viewFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := view.apply(cmd.Context(), a); err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), a.ws.Page())
			return nil
		},
	}
	view.register(cmd)
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var orders int
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one vendor and its recent orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printVendor(cmd, v)
			if orders <= 0 {
				return nil
			}
			recent, err := a.client.Orders(cmd.Context(), v.ID, orders)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nRecent orders:")
			for _, o := range recent {
				fmt.Fprintf(out, "  %s  %s  %-9s  %.0f\n", o.Date, o.ID, o.Status, o.Amount)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&orders, "orders", 5, "number of recent orders to show (0 to skip)")
	return cmd
}

func printVendor(cmd *cobra.Command, v *vendor.Vendor) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", v.BusinessName, v.ID)
	fmt.Fprintf(out, "  Email:          %s\n", v.Email)
	fmt.Fprintf(out, "  Status:         %s\n", v.Status)
	fmt.Fprintf(out, "  Rating:         %.1f\n", v.Rating)
	fmt.Fprintf(out, "  Total orders:   %d\n", v.TotalOrders)
	fmt.Fprintf(out, "  Total revenue:  %.2f\n", v.TotalRevenue)
	fmt.Fprintf(out, "  Avg delivery:   %.1f days\n", v.AvgDeliveryTime)
	fmt.Fprintf(out, "  Joined:         %s\n", v.CreatedAt.Format("2006-01-02"))
}
