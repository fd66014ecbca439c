package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show vendor totals and trends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ws.Load(cmd.Context()); err != nil {
				return err
			}
			s := dashboard.Summarize(a.ws.Vendors())
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Total vendors\t%d\n", s.TotalVendors)
			fmt.Fprintf(tw, "Active\t%d\n", s.Active)
			fmt.Fprintf(tw, "Pending\t%d\n", s.Pending)
			fmt.Fprintf(tw, "Suspended\t%d\n", s.Suspended)
			fmt.Fprintf(tw, "Total revenue\t%.1fK\n", s.TotalRevenue/1000)
			fmt.Fprintf(tw, "Total orders\t%d\n", s.TotalOrders)
			fmt.Fprintf(tw, "Avg rating\t%.2f\n", s.AvgRating)
			fmt.Fprintf(tw, "Avg delivery time\t%.1f days\n", s.AvgDeliveryTime)
			tw.Flush()

			fmt.Fprintln(out, "\nVendors joined / revenue by month:")
			for i, p := range s.Growth {
				fmt.Fprintf(out, "  %-9s %3d  %12.2f\n", p.Label, p.Count, s.Revenue[i].Value)
			}
			fmt.Fprintln(out, "\nOrders distribution:")
			for _, b := range s.OrderBuckets {
				fmt.Fprintf(out, "  %-8s %d\n", b.Range, b.Count)
			}
			fmt.Fprintln(out, "\nTop vendors by orders:")
			for _, t := range s.TopVendors {
				fmt.Fprintf(out, "  %-15s %d\n", t.Name, t.Orders)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
