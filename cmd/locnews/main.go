package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/ahocorasick"
	"github.com/fwojciec/locnews/crawl"
	"github.com/fwojciec/locnews/gemini"
	"github.com/fwojciec/locnews/gofeed"
	"github.com/fwojciec/locnews/goquery"
	"github.com/fwojciec/locnews/htmltomarkdown"
	lochttp "github.com/fwojciec/locnews/http"
	"github.com/fwojciec/locnews/readability"
	locredis "github.com/fwojciec/locnews/redis"
	"github.com/fwojciec/locnews/rod"
	locslog "github.com/fwojciec/locnews/slog"
	"github.com/fwojciec/locnews/sqlite"
	"github.com/fwojciec/locnews/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SourceService  locnews.SourceService
	ArticleService locnews.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locnews"),
		kong.Description("Collect news articles from RSS feeds and extract their full bodies"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locnews --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LOCNEWS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SourceService = sqlite.NewSourceService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.Sources = m.SourceService
	deps.Articles = m.ArticleService
	deps.Converter = htmltomarkdown.NewConverter()

	// Wire command-specific dependencies based on command
	switch cmd {
	case "crawl", "fetch", "compare", "worker":
		httpFetcher := lochttp.NewFetcher(lochttp.WithTimeout(cli.Timeout))
		defer httpFetcher.Close()
		fetcher := locslog.NewLoggingFetcher(httpFetcher, logger)
		deps.Fetcher = fetcher

		extractor := goquery.NewExtractor(ahocorasick.NewDetector())
		crawler := &crawl.Crawler{
			Fetcher:   fetcher,
			Extractor: extractor,
			Logger:    logger,
			Timeout:   cli.Timeout,
		}
		deps.Crawler = crawler

		deps.Engines = []crawl.Engine{
			{Name: "locnews", Extractor: extractor},
			{Name: "trafilatura", Extractor: trafilatura.NewExtractor()},
			{Name: "readability", Extractor: readability.NewExtractor()},
		}

		deps.Ingester = &crawl.Ingester{
			Feeds:       locslog.NewLoggingFeedService(gofeed.NewFeedService(fetcher), logger),
			Crawler:     locslog.NewLoggingCrawler(crawler, logger),
			Articles:    m.ArticleService,
			RateLimiter: crawl.NewDomainLimiter(crawl.DefaultDomainRPS),
			Concurrency: cli.Concurrency,
			MaxItems:    cli.MaxItems,
			Logger: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}
	}

	if cmd == "compare" && cli.Compare.Browser {
		browser, err := rod.NewFetcher(rod.WithFetchTimeout(2 * cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: --browser needs Chrome or Chromium installed")
			return err
		}
		defer browser.Close()
		deps.Browser = locslog.NewLoggingFetcher(browser, logger)
	}

	needsQueue := cmd == "worker" || (cmd == "fetch" && cli.Fetch.Publish) ||
		(cmd == "source" && strings.HasPrefix(kongCtx.Command(), "source trigger"))
	if needsQueue {
		if cli.RedisURL == "" {
			fmt.Fprintln(stderr, "Hint: Set LOCNEWS_REDIS_URL, e.g. redis://localhost:6379/0")
			return locnews.Errorf(locnews.EINVALID, "redis URL required for %s", cmd)
		}
		client, err := locredis.NewClient(cli.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()

		if deps.Ingester != nil {
			deps.Ingester.Publisher = locslog.NewLoggingPublisher(locredis.NewPublisher(client), logger)
		}
		deps.Tasks = locredis.NewTaskQueue(client, locredis.TaskQueueConfig{
			Consumer: consumerName(),
			Logger:   logger,
		})
	}

	if cmd == "summarize" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Summarizer = gemini.NewSummarizer(client)

		tokens, err := gemini.NewTokenCounter(gemini.TokenizerModel)
		if err != nil {
			logger.Warn("token counting disabled", "err", err)
		} else {
			deps.Tokens = tokens
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LOCNEWS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "locnews.db"
	}
	dir := filepath.Join(home, ".locnews")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "locnews.db")
}

// consumerName identifies this worker within the consumer group.
func consumerName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "locnews"
	}
	return fmt.Sprintf("%s-%d", host, os.Getpid())
}
