package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/iudanet/khutwa/internal/models"
)

// printJSON печатает v как JSON с отступами
func (c *Cli) printJSON(v any) error {
	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *Cli) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
}

func (c *Cli) printUser(u *models.User) {
	w := c.newTable()
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	if u.Phone != "" {
		fmt.Fprintf(w, "Phone:\t%s\n", u.Phone)
	}
	fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	if u.Profile.DateOfBirth != "" {
		fmt.Fprintf(w, "Date of birth:\t%s\n", u.Profile.DateOfBirth)
	}
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Member since:\t%s\n", u.CreatedAt.Format("2006-01-02"))
	}
	_ = w.Flush()
}

func (c *Cli) printSharedUsers(title string, users []models.SharedUser, empty string) {
	c.io.Println(title)
	if len(users) == 0 {
		c.io.Println("  " + empty)
		return
	}
	w := c.newTable()
	fmt.Fprintln(w, "  ID\tNAME\tEMAIL\tPHONE\tSINCE")
	for _, u := range users {
		since := "-"
		if u.SharedAt != nil {
			since = u.SharedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, dash(u.Phone), since)
	}
	_ = w.Flush()
}

func (c *Cli) printCandidates(candidates []models.ShareCandidate) {
	if len(candidates) == 0 {
		c.io.Println("No users found.")
		return
	}
	w := c.newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSHARED")
	for _, u := range candidates {
		shared := "no"
		if u.AlreadyShared {
			shared = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, shared)
	}
	_ = w.Flush()
}

func (c *Cli) printContentTable(items []models.Content) {
	if len(items) == 0 {
		c.io.Println("No content found.")
		return
	}
	w := c.newTable()
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tTYPE\tVIEWS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", item.ID, truncate(item.Title, 48), item.Category, item.ContentType, item.Views)
	}
	_ = w.Flush()
}

func (c *Cli) printContent(item *models.Content) {
	c.io.Println(item.Title)
	c.io.Println(strings.Repeat("=", len([]rune(item.Title))))
	w := c.newTable()
	fmt.Fprintf(w, "Category:\t%s\n", item.Category)
	fmt.Fprintf(w, "Type:\t%s\n", item.ContentType)
	fmt.Fprintf(w, "Views:\t%d\n", item.Views)
	if item.CreatedBy != nil {
		fmt.Fprintf(w, "Author:\t%s\n", item.CreatedBy.Name)
	}
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Published:\t%s\n", item.CreatedAt.Format("2006-01-02"))
	}
	_ = w.Flush()
	if item.Description != "" {
		c.io.Println()
		c.io.Println(item.Description)
	}
	c.io.Println()
	c.io.Println(item.Body)
}

func (c *Cli) printStats(stats *models.ContentStats) {
	w := c.newTable()
	fmt.Fprintf(w, "Total items:\t%d\n", stats.Total)
	fmt.Fprintf(w, "Total views:\t%d\n", stats.TotalViews)
	for _, cat := range models.Categories() {
		fmt.Fprintf(w, "  %s:\t%d\n", cat, stats.ByCategory[cat])
	}
	for _, ct := range models.ContentTypes() {
		fmt.Fprintf(w, "  %s:\t%d\n", ct, stats.ByType[ct])
	}
	_ = w.Flush()
}

func (c *Cli) printReading(r *models.SensorReading, threshold float64, at time.Time) {
	c.io.Printf("[%s] ", at.Format("15:04:05"))
	if r == nil {
		c.io.Println("No sensor data yet. Make sure your insoles are connected.")
		return
	}

	c.io.Printf("temp %.1f°C  humidity %.0f%%  recorded %s\n",
		r.Temperature, r.Humidity, r.RecordedAt.Local().Format("15:04:05"))

	w := c.newTable()
	fmt.Fprintln(w, "  FOOT\tHEEL\tMIDFOOT\tFOREFOOT\tTOE")
	fmt.Fprintf(w, "  left\t%.1f\t%.1f\t%.1f\t%.1f\n", r.Left.Heel, r.Left.Midfoot, r.Left.Forefoot, r.Left.Toe)
	fmt.Fprintf(w, "  right\t%.1f\t%.1f\t%.1f\t%.1f\n", r.Right.Heel, r.Right.Midfoot, r.Right.Forefoot, r.Right.Toe)
	_ = w.Flush()

	if zones := r.HighPressureZones(threshold); len(zones) > 0 {
		c.io.Printf("  ! high pressure (> %.0f kPa): %s\n", threshold, strings.Join(zones, ", "))
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
