package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/crawl"
	locredis "github.com/fwojciec/locnews/redis"
)

// TaskQueue enqueues and consumes crawl tasks.
type TaskQueue interface {
	Enqueue(ctx context.Context, task locredis.Task) error
	Consume(ctx context.Context, handle locredis.TaskHandler) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sources  locnews.SourceService
	Articles locnews.ArticleService

	Fetcher    locnews.Fetcher
	Browser    locnews.Fetcher
	Crawler    locnews.ArticleCrawler
	Ingester   *crawl.Ingester
	Engines    []crawl.Engine
	Converter  locnews.Converter
	Summarizer locnews.Summarizer
	Tokens     locnews.TokenCounter
	Tasks      TaskQueue
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	Timeout     time.Duration `default:"15s" env:"LOCNEWS_TIMEOUT" help:"Per-article crawl timeout"`
	Concurrency int           `short:"c" default:"4" env:"LOCNEWS_CONCURRENCY" help:"Concurrent article crawls"`
	MaxItems    int           `default:"50" env:"LOCNEWS_MAX_ITEMS" help:"Feed entries read per source"`
	RedisURL    string        `name:"redis-url" env:"LOCNEWS_REDIS_URL" help:"Redis URL for publishing and crawl tasks"`

	Crawl     CrawlCmd     `cmd:"" help:"Extract the article body of a single page"`
	Source    SourceCmd    `cmd:"" help:"Manage feed sources"`
	Fetch     FetchCmd     `cmd:"" help:"Ingest articles from feed sources"`
	Articles  ArticlesCmd  `cmd:"" help:"List stored articles"`
	Show      ShowCmd      `cmd:"" help:"Show a stored article"`
	Compare   CompareCmd   `cmd:"" help:"Compare extraction engines on a page"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a stored article"`
	Export    ExportCmd    `cmd:"" help:"Export articles as HTML files"`
	Worker    WorkerCmd    `cmd:"" help:"Consume crawl tasks from Redis until interrupted"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string `arg:"" help:"Article URL"`
	Markdown bool   `short:"m" help:"Print Markdown instead of HTML"`
}

// SourceCmd groups the "source" subcommands.
type SourceCmd struct {
	Add     SourceAddCmd     `cmd:"" help:"Add a feed source"`
	List    SourceListCmd    `cmd:"" help:"List feed sources"`
	Update  SourceUpdateCmd  `cmd:"" help:"Rename a source or change its feed URL"`
	Delete  SourceDeleteCmd  `cmd:"" help:"Delete a source and its articles"`
	Import  SourceImportCmd  `cmd:"" help:"Import sources from a YAML file"`
	Trigger SourceTriggerCmd `cmd:"" help:"Queue crawl tasks for sources"`
}

// SourceAddCmd is the "source add" subcommand.
type SourceAddCmd struct {
	Name    string `arg:"" help:"Source name"`
	FeedURL string `arg:"" name:"feed-url" help:"RSS or Atom feed URL"`
}

// SourceListCmd is the "source list" subcommand.
type SourceListCmd struct{}

// SourceUpdateCmd is the "source update" subcommand.
type SourceUpdateCmd struct {
	Name    string `arg:"" help:"Source name"`
	NewName string `name:"new-name" help:"New source name"`
	FeedURL string `name:"feed-url" help:"New feed URL"`
}

// SourceDeleteCmd is the "source delete" subcommand.
type SourceDeleteCmd struct {
	Name  string `arg:"" help:"Source name"`
	Force bool   `help:"Confirm deletion"`
}

// SourceImportCmd is the "source import" subcommand.
type SourceImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file with a sources list"`
}

// SourceTriggerCmd is the "source trigger" subcommand.
type SourceTriggerCmd struct {
	Name string `arg:"" optional:"" help:"Source name (default: all sources)"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Name    string `arg:"" optional:"" help:"Source name (default: all sources)"`
	Publish bool   `help:"Publish new articles to Redis"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	Source string `short:"s" help:"Only articles of this source"`
	Limit  int    `short:"n" default:"20" help:"Maximum articles to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Article ID"`
	Markdown bool   `short:"m" help:"Print Markdown instead of HTML"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	URL     string `arg:"" help:"Article URL"`
	Browser bool   `help:"Also extract from the page as rendered by headless Chrome"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" help:"Output directory (replaced atomically)"`
	Source string `short:"s" help:"Only articles of this source"`
}

// WorkerCmd is the "worker" subcommand.
type WorkerCmd struct{}
