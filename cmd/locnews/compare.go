package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/crawl"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: fetch %s: %v\n", c.URL, err)
		return err
	}

	results := crawl.Compare(c.URL, html, deps.Engines)
	if len(results) == 0 {
		return locnews.Errorf(locnews.EINVALID, "no extraction engines configured")
	}

	if c.Browser && deps.Browser != nil {
		rendered, err := deps.Browser.Fetch(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: render %s: %v\n", c.URL, err)
			return err
		}
		first := deps.Engines[0]
		results = append(results, crawl.Compare(c.URL, rendered, []crawl.Engine{
			{Name: first.Name + " (rendered)", Extractor: first.Extractor},
		})...)
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENGINE\tSIZE\tFRAGMENTS\tTITLE")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\terror: %s\n", r.Engine, locnews.ErrorMessage(r.Err))
			continue
		}
		fragments := "-"
		if r.Fragments > 0 {
			fragments = fmt.Sprint(r.Fragments)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Engine, crawl.FormatBytes(r.Bytes), fragments, r.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	base := results[0]
	for _, r := range results[1:] {
		if crawl.ContentDiffers(base, r) {
			fmt.Fprintf(deps.Stdout, "\n%s recovered noticeably more content than %s\n", r.Engine, base.Engine)
		}
	}
	return nil
}
