package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/table"
	"github.com/spf13/cobra"
)

// viewFlags rebuild the filtered, sorted and paged view of a "list" run.
type viewFlags struct {
	search   string
	status   string
	sort     string
	page     int
	pageSize int
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "match business name or email")
	cmd.Flags().StringVar(&f.status, "status", table.StatusAll, "all, active, pending or suspended")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort column, prefix with - for descending (e.g. -totalRevenue)")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", table.DefaultPageSize, "rows per page (5, 10, 20, 30, 40, 50)")
}

// apply loads the vendor list and sets the view up.
func (f *viewFlags) apply(ctx context.Context, a *app) error {
	if err := a.ws.Load(ctx); err != nil {
		return err
	}
	a.ws.SetSearch(f.search)
	if err := a.ws.SetStatusFilter(f.status); err != nil {
		return err
	}
	s, err := table.ParseSort(f.sort)
	if err != nil {
		return err
	}
	a.ws.SetSort(s)
	if err := a.ws.SetPageSize(f.pageSize); err != nil {
		return err
	}
	return a.ws.SetPageIndex(f.page - 1)
}

// selectRows marks rows by the numbers "list" prints, or the whole page.
func selectRows(a *app, rows string, page bool) error {
	if page {
		a.ws.ToggleAll()
		return nil
	}
	for _, field := range strings.Split(rows, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("invalid row %q", field)
		}
		if containsRow(a.ws.Selection().Rows, n-1) {
			continue
		}
		if err := a.ws.Toggle(n - 1); err != nil {
			return err
		}
	}
	return nil
}

func containsRow(rows []table.Row, index int) bool {
	for _, r := range rows {
		if r.Index == index {
			return true
		}
	}
	return false
}

func printPage(w io.Writer, page table.Page) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tBUSINESS\tEMAIL\tSTATUS\tRATING\tORDERS\tREVENUE\tDELIVERY\tJOINED")
	for _, r := range page.Rows {
		v := r.Vendor
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.1f\t%d\t%.2f\t%.1fd\t%s\n",
			r.Index+1, v.ID, v.BusinessName, v.Email, v.Status, v.Rating,
			v.TotalOrders, v.TotalRevenue, v.AvgDeliveryTime, v.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush()
	if page.PageCount > 0 {
		fmt.Fprintf(w, "page %d of %d, %d vendors\n", page.PageIndex+1, page.PageCount, page.Total)
	} else {
		fmt.Fprintln(w, "no vendors")
	}
}

func printSelection(w io.Writer, snap table.Snapshot) {
	c := snap.StatusCounts()
	fmt.Fprintf(w, "%d selected (active %d, pending %d, suspended %d)\n", snap.Count, c.Active, c.Pending, c.Suspended)
}
