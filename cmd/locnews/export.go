package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/fs"
)

// exportPageSize is the number of articles read per query.
const exportPageSize = 500

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := locnews.ArticleFilter{Limit: exportPageSize}
	if c.Source != "" {
		source, err := findSource(deps, c.Source)
		if err != nil {
			return err
		}
		filter.SourceID = &source.ID
	}

	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return err
	}
	exporter := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))

	var written int
	for {
		articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
		if err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
			return err
		}

		for _, a := range articles {
			if err := exporter.CreateArticle(deps.Ctx, a); err != nil {
				if locnews.ErrorCode(err) == locnews.EINVALID {
					fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", a.Link, locnews.ErrorMessage(err))
					continue
				}
				_ = exporter.Abort()
				fmt.Fprintf(deps.Stderr, "error: %v\n", err)
				return err
			}
			written++
		}

		if len(articles) < filter.Limit {
			break
		}
		filter.Offset += len(articles)
	}

	if written == 0 {
		_ = exporter.Abort()
		fmt.Fprintln(deps.Stdout, "No articles to export.")
		return nil
	}

	if err := exporter.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s\n", written, dir)
	return nil
}
