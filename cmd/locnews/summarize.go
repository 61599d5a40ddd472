package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/locnews"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	text := article.Summary
	if article.Content != "" {
		md, err := deps.Converter.Convert(article.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
			return err
		}
		text = md
	}
	text = strings.TrimSpace(text)

	if deps.Tokens != nil {
		if n, err := deps.Tokens.CountTokens(deps.Ctx, text); err == nil {
			fmt.Fprintf(deps.Stderr, "prompt: %d tokens\n", n)
		}
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
