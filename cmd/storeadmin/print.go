package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/alimikegami/point-of-sales/store-admin/internal/catalog"
	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/utils"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printCorrectionReport(w io.Writer, title string, report dto.CorrectionReport) {
	mode := "applied"
	if report.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(w, "%s (%s): %d scanned, %d corrected\n", title, mode, report.Scanned, len(report.Corrected))
	if len(report.Undecodable) > 0 {
		fmt.Fprintf(w, "Skipped %d unreadable product(s): %s\n", len(report.Undecodable), strings.Join(report.Undecodable, ", "))
	}
	if len(report.Corrected) == 0 {
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\nPRODUCT\tNAME\tFIELDS\tDETAIL")
	for _, c := range report.Corrected {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ProductID, c.Name, strings.Join(c.Fields, ","), c.Detail)
	}
	tw.Flush()
}

func printCategoryMap(w io.Writer, entries map[string]catalog.Placement) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := newTable(w)
	fmt.Fprintln(tw, "STORED AS\tCATEGORY\tSUB-CATEGORY")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, entries[k].Category, entries[k].SubCategory)
	}
	tw.Flush()
}

func printInspection(w io.Writer, in dto.ProductInspection) {
	p := in.Product
	fmt.Fprintf(w, "Product %s\n", p.ID)
	fmt.Fprintf(w, "  name:     %s\n", p.Name)
	fmt.Fprintf(w, "  category: %s / %s\n", p.Category, p.SubCategory)
	fmt.Fprintf(w, "  price:    %.2f\n", p.Price)

	if in.Suggested != nil {
		fmt.Fprintf(w, "  move to:  %s / %s\n", in.Suggested.Category, in.Suggested.SubCategory)
	}
	if len(in.MissingSpecKeys) > 0 {
		fmt.Fprintf(w, "  missing specifications: %s\n", strings.Join(in.MissingSpecKeys, ", "))
	}
	if in.NeedsSpecFill {
		fmt.Fprintln(w, "  specifications would be filled from the category template")
	}
	for _, c := range in.NormalizedColors {
		fmt.Fprintf(w, "  color:    %s %s\n", c.Name, c.Code)
	}
}

func printOrder(w io.Writer, order domain.Order) {
	fmt.Fprintf(w, "Order %s\n", order.ID)
	fmt.Fprintf(w, "  user:    %s\n", order.UserID)
	fmt.Fprintf(w, "  status:  %s\n", order.Status)
	fmt.Fprintf(w, "  placed:  %s\n", order.CreatedAt.Format(timeLayout))
	if !order.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "  updated: %s\n", order.UpdatedAt.Format(timeLayout))
	}
	fmt.Fprintf(w, "  total:   %.2f\n", order.TotalAmount)

	tw := newTable(w)
	fmt.Fprintln(tw, "\nPRODUCT\tNAME\tQTY\tPRICE")
	for _, item := range order.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", item.ProductID, item.Name, item.Quantity, item.Price)
	}
	tw.Flush()
}

func printOrders(w io.Writer, orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ORDER\tSTATUS\tITEMS\tTOTAL\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%s\n", o.ID, o.Status, len(o.Items), o.TotalAmount, o.CreatedAt.Format(timeLayout))
	}
	tw.Flush()
}

func printReviews(w io.Writer, reviews []domain.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(w, "No reviews.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "REVIEW\tPRODUCT\tRATING\tSTATUS\tVERIFIED\tCOMMENT")
	for _, r := range reviews {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%t\t%s\n", r.ID, r.ProductID, r.Rating, r.Status, r.IsVerified, r.Comment)
	}
	tw.Flush()
}

func printReviewable(w io.Writer, items []dto.ReviewableItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Nothing left to review.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "PRODUCT\tNAME")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\n", item.ProductID, item.ProductName)
	}
	tw.Flush()
}

func printProfile(w io.Writer, profile dto.UserProfile) {
	u := profile.User
	fmt.Fprintf(w, "User %s\n", u.ID)
	fmt.Fprintf(w, "  name:   %s\n", u.Name)
	fmt.Fprintf(w, "  role:   %s\n", u.Role)
	if u.Email != "" {
		fmt.Fprintf(w, "  email:  %s\n", u.Email)
	}
	if u.Phone != "" {
		fmt.Fprintf(w, "  phone:  %s\n", u.Phone)
	}
	fmt.Fprintf(w, "  orders: %d\n", profile.OrderCount)
	fmt.Fprintf(w, "  wishlist: %d item(s)\n", len(profile.Wishlist))
	for _, item := range profile.Wishlist {
		fmt.Fprintf(w, "    - %s (added %s)\n", item.ProductID, item.AddedAt.Format(timeLayout))
	}
}

func printSeedReport(w io.Writer, report dto.SeedReport) {
	fmt.Fprintln(w, "Seeded:")
	fmt.Fprintf(w, "  sellers:  %d\n", report.Sellers)
	fmt.Fprintf(w, "  users:    %d\n", report.Users)
	fmt.Fprintf(w, "  products: %d\n", report.Products)
	fmt.Fprintf(w, "  orders:   %d\n", report.Orders)
	fmt.Fprintf(w, "  reviews:  %d\n", report.Reviews)
	fmt.Fprintf(w, "  wishlist: %d\n", report.Wishlist)
}

func printShippingOrders(w io.Writer, list dto.ShippingOrderList) {
	p := list.Meta.Pagination
	fmt.Fprintf(w, "Page %d of %d (%d orders total)\n", p.CurrentPage, p.TotalPages, p.Total)
	if len(list.Data) == 0 {
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\nID\tCHANNEL ORDER\tCUSTOMER\tSTATUS\tAWB\tCREATED")
	for _, o := range list.Data {
		awb := "-"
		if o.HasAWB() {
			awb = "yes"
		}
		created := o.CreatedAt
		if t, err := utils.ParseProviderDate(o.CreatedAt); err == nil {
			created = t.Format(timeLayout)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.ChannelOrderID, o.CustomerName, o.Status, awb, created)
	}
	tw.Flush()
}

func printSmokeResults(w io.Writer, results []dto.SmokeResult) {
	tw := newTable(w)
	fmt.Fprintln(tw, "CHECK\tREQUEST\tSTATUS\tRESULT")
	for _, r := range results {
		status := "-"
		if r.StatusCode != 0 {
			status = fmt.Sprint(r.StatusCode)
		}
		result := "ok"
		if !r.Passed {
			result = "FAIL"
			if r.Error != "" {
				result += ": " + r.Error
			}
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", r.Name, r.Method, r.Path, status, result)
	}
	tw.Flush()
}
