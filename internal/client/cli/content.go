package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/khutwa/internal/client/content"
	"github.com/iudanet/khutwa/internal/models"
)

func (c *Cli) contentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "content",
		Aliases: []string{"learn"},
		Short:   "Browse the foot care library",
		Long: `Browse educational content about diabetic foot care.

Categories: prevention, foot_care, nutrition, exercise, monitoring, emergency
Types:      article, video, infographic, tip

  khutwa content list --category nutrition
  khutwa content list --search "blister" --sort views --order desc
  khutwa content show <id>`,
	}

	cmd.AddCommand(
		c.contentListCommand(),
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				item, err := c.content.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if c.flags.json {
					return c.printJSON(item)
				}
				c.printContent(item)
				return nil
			},
		},
		&cobra.Command{
			Use:   "category <category>",
			Short: "List every item of a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				items, err := c.content.ByCategory(cmd.Context(), models.Category(args[0]))
				if err != nil {
					return err
				}
				if c.flags.json {
					return c.printJSON(items)
				}
				c.printContentTable(items)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Library statistics (administrators)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				stats, err := c.content.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if c.flags.json {
					return c.printJSON(stats)
				}
				c.printStats(stats)
				return nil
			},
		},
		c.contentEditCommand("create", "Publish a new item (administrators)"),
		c.contentEditCommand("update", "Edit an item (administrators)"),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an item (administrators)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				if err := c.content.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				c.io.Println("✓ Deleted.")
				return nil
			},
		},
	)

	return cmd
}

func (c *Cli) contentListCommand() *cobra.Command {
	var (
		q           content.Query
		category    string
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			q.Category = models.Category(category)
			q.ContentType = models.ContentType(contentType)

			page, err := c.content.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if c.flags.json {
				return c.printJSON(map[string]any{
					"content":    page.Items,
					"pagination": page.Pagination,
				})
			}

			c.printContentTable(page.Items)
			c.io.Printf("Page %d of %d (%d items)\n", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
			if page.HasMore() {
				c.io.Printf("Next page: --page %d\n", page.Pagination.Page+1)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&category, "category", "", "Filter by category")
	f.StringVar(&contentType, "type", "", "Filter by content type")
	f.StringVar(&q.Search, "search", "", "Search in title and text")
	f.StringVar(&q.Sort, "sort", "", "Sort by: createdAt, views, title")
	f.StringVar(&q.Order, "order", "", "Sort order: asc, desc")
	f.IntVar(&q.Page, "page", 1, "Page number")
	f.IntVar(&q.Limit, "limit", content.DefaultPageSize, "Items per page")

	return cmd
}

// contentEditCommand строит create/update: у них общий набор флагов
func (c *Cli) contentEditCommand(use, short string) *cobra.Command {
	var (
		d           content.Draft
		category    string
		contentType string
		photo       string
	)

	args := cobra.NoArgs
	if use == "update" {
		args = cobra.ExactArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			d.Category = models.Category(category)
			d.ContentType = models.ContentType(contentType)

			if photo != "" {
				part, closeFn, err := openPhoto(photo)
				if err != nil {
					return err
				}
				defer closeFn()
				d.Photo = part
			}

			var (
				item *models.Content
				err  error
			)
			if use == "update" {
				item, err = c.content.Update(cmd.Context(), args[0], d)
			} else {
				item, err = c.content.Create(cmd.Context(), d)
			}
			if err != nil {
				return err
			}

			if c.flags.json {
				return c.printJSON(item)
			}
			c.io.Printf("✓ Saved %q (%s).\n", item.Title, item.ID)
			return nil
		},
	}
	if use == "update" {
		cmd.Use = "update <id>"
	}

	f := cmd.Flags()
	f.StringVar(&d.Title, "title", "", "Title")
	f.StringVar(&d.Description, "description", "", "Short description")
	f.StringVar(&d.Body, "body", "", "Full text")
	f.StringVar(&category, "category", "", "Category")
	f.StringVar(&contentType, "type", "", "Content type (default article)")
	f.StringVar(&photo, "photo", "", "Path to a cover image")

	return cmd
}
