package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/errors"
)

type listOptions struct {
	jsonOutput bool
	category   string
	search     string
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog components",
		Long: `List the components in the catalog with their category and demos.

Examples:
  daisy list
  daisy list --category feedback
  daisy list --search button --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only list components in this category")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Only list components matching this text")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	entries, err := filterEntries(cat, opts)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}

	p := newPrinter(cmd.OutOrStdout())
	if len(entries) == 0 {
		p.Info("No components match.")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Category, strconv.Itoa(len(e.Demos)), e.Description}
	}
	p.Table([]string{"NAME", "CATEGORY", "DEMOS", "DESCRIPTION"}, rows)
	return nil
}

func filterEntries(cat *catalog.Catalog, opts *listOptions) ([]*catalog.Entry, error) {
	entries := cat.List()
	if opts.search != "" {
		entries = cat.Search(opts.search)
	}
	if opts.category == "" {
		return entries, nil
	}

	known := cat.Categories()
	found := false
	for _, c := range known {
		if c == opts.category {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Newf(errors.CategoryCLI, "unknown category %q", opts.category).
			WithSuggestion("Use one of: " + strings.Join(known, ", "))
	}

	filtered := entries[:0:0]
	for _, e := range entries {
		if e.Category == opts.category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

type listJSONComponent struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Parts       []string `json:"parts"`
	Demos       []string `json:"demos"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, entries []*catalog.Entry) error {
	payload := listJSONPayload{
		Version:    version,
		Count:      len(entries),
		Components: make([]listJSONComponent, len(entries)),
	}

	for i, e := range entries {
		demos := make([]string, len(e.Demos))
		for j, d := range e.Demos {
			demos[j] = d.Name
		}
		payload.Components[i] = listJSONComponent{
			Name:        e.Name,
			Title:       e.Title,
			Category:    e.Category,
			Description: e.Description,
			Parts:       e.Parts,
			Demos:       demos,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
