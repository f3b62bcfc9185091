package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"memegrip/internal/domain"
	"memegrip/internal/search"
	"memegrip/internal/suggest"
	"memegrip/internal/ui"
)

// resultJSON is one template in --json output
type resultJSON struct {
	domain.Template
	Favorite bool `json:"favorite"`
}

// reportJSON is the --json output of search
type reportJSON struct {
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Elapsed float64      `json:"elapsed_seconds"`
	Results []resultJSON `json:"results"`
}

func newSearchCommand(opts *options) *cobra.Command {
	var (
		onlyFavorites bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Print the templates whose name contains the query",
		Long: `Search runs one query without the interactive view. The words are joined
with spaces; an empty query lists every template.`,
		Example: `  memegrip search drake
  memegrip search --favorites --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			vm := search.NewViewModel()
			out := vm.Search(cmd.Context(), app.Store, strings.Join(args, " "))
			if out.Err != nil {
				return fmt.Errorf("search failed: %w", out.Err)
			}

			snap := vm.Snapshot()
			if onlyFavorites {
				snap.Results = app.Favorites.Select(snap.Results)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, snap, app.Favorites.IsFavorite)
			}
			return writeTable(w, snap, app.Favorites.IsFavorite)
		},
	}

	cmd.Flags().BoolVarP(&onlyFavorites, "favorites", "f", false, "only list favorites")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeTable(w io.Writer, snap search.Snapshot, isFavorite func(string) bool) error {
	if len(snap.Results) == 0 {
		status := snap.StatusLine()
		if status == "" || status == "Start typing to search." {
			status = "No results found."
		}
		_, err := fmt.Fprintln(w, status)
		return err
	}

	title := "All templates"
	if q := search.Normalize(snap.Query); q != "" {
		title = fmt.Sprintf("Results for %q", q)
	}
	if _, err := io.WriteString(w, ui.RenderPagerContent(title, snap.Results, isFavorite)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", snap.Summary())
	return err
}

func writeJSON(w io.Writer, snap search.Snapshot, isFavorite func(string) bool) error {
	report := reportJSON{
		Query:   snap.Query,
		Count:   len(snap.Results),
		Elapsed: snap.Elapsed,
		Results: make([]resultJSON, 0, len(snap.Results)),
	}
	for _, t := range snap.Results {
		report.Results = append(report.Results, resultJSON{Template: t, Favorite: isFavorite(t.ID)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func newSuggestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Print the most common words in popular template names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			templates, err := app.Store.EnsurePopulated(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch templates: %w", err)
			}

			cfg := app.Config.Suggestions
			for _, word := range suggest.Derive(templates, cfg.Pool, cfg.Limit) {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	}
}

func newFavCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fav [id]",
		Short: "Toggle a favorite template, or list favorite IDs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, id := range app.Favorites.IDs() {
					fmt.Fprintln(w, id)
				}
				return nil
			}

			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("template id must not be empty")
			}
			added, err := app.Favorites.Toggle(id)
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintf(w, "added %s to favorites\n", id)
			} else {
				fmt.Fprintf(w, "removed %s from favorites\n", id)
			}
			return nil
		},
	}
}
