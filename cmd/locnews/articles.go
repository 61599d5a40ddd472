package main

import (
	"fmt"

	"github.com/fwojciec/locnews"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	filter := locnews.ArticleFilter{Limit: c.Limit}
	if c.Source != "" {
		source, err := findSource(deps, c.Source)
		if err != nil {
			return err
		}
		filter.SourceID = &source.ID
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'locnews fetch' to ingest some.")
		return nil
	}

	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = a.Link
		}
		marker := " "
		if !a.Crawled {
			marker = "~"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n     %s\n", marker, a.ID, title, a.Link)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	body := article.Content
	if c.Markdown && body != "" {
		body, err = deps.Converter.Convert(body)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, locnews.FormatArticle(article, body))
	return nil
}
