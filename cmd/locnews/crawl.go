package main

import (
	"fmt"

	"github.com/fwojciec/locnews"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	result := deps.Crawler.Crawl(deps.Ctx, c.URL)
	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: could not extract an article from %s\n", c.URL)
		return locnews.Errorf(locnews.ENOTFOUND, "no article extracted from %s", c.URL)
	}

	return printContent(deps, result.Content, c.Markdown)
}

// printContent writes serialized article content to stdout, converting it
// to Markdown when asked.
func printContent(deps *Dependencies, content string, markdown bool) error {
	if !markdown {
		fmt.Fprintln(deps.Stdout, content)
		return nil
	}

	md, err := deps.Converter.Convert(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
