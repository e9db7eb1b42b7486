package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/config"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the external book catalog",
	}
	cmd.AddCommand(newCatalogSearchCmd())
	return cmd
}

func newCatalogSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search Open Library without saving anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := catalog.NewClient(config.NewConfig().Catalog)

			drafts, err := client.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(drafts) == 0 {
				infof(out, "no results")
				return nil
			}
			for _, d := range drafts {
				infof(out, "%s by %s", d.Title, d.Author)
				if d.ISBN != nil {
					detailf(out, "isbn %s", *d.ISBN)
				}
				if d.PublicationYear != nil {
					detailf(out, "published %d", *d.PublicationYear)
				}
			}
			return nil
		},
	}
}
