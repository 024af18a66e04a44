package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"locallibrary/pkg/container"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List all genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *container.Container) error {
			genres, err := c.GenreService.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list genres: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(genres) == 0 {
				fmt.Fprintln(out, "No genres found.")
				return nil
			}

			fmt.Fprintf(out, "Genres (%d total):\n\n", len(genres))
			for _, g := range genres {
				fmt.Fprintf(out, "%s  %s\n", g.ID, g.Name)
			}
			return nil
		})
	},
}
