// Package fs exports articles to a directory tree of HTML files.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/locnews"
	"gopkg.in/yaml.v3"
)

// URLToPath converts an article URL to a relative file path under its host.
// Example: https://vnexpress.net/thoi-su/bao-1.html → vnexpress.net/thoi-su/bao-1.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", locnews.Errorf(locnews.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", locnews.Errorf(locnews.EINVALID, "URL must be absolute: %q", rawURL)
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		p = "index.html"
	case strings.HasSuffix(p, "/"):
		p += "index.html"
	default:
		p = strings.TrimSuffix(strings.TrimSuffix(p, ".html"), ".htm") + ".html"
	}

	rel := path.Join(host, p)
	if !filepath.IsLocal(rel) || !strings.HasPrefix(rel, host+"/") {
		return "", locnews.Errorf(locnews.EINVALID, "path traversal in URL %q", rawURL)
	}
	return filepath.FromSlash(rel), nil
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Link      string `yaml:"link"`
	Published string `yaml:"published,omitempty"`
	Image     string `yaml:"image,omitempty"`
	Crawled   bool   `yaml:"crawled"`
}

// FormatArticle formats an article body with YAML front matter.
func FormatArticle(article *locnews.Article) (string, error) {
	var meta bytes.Buffer
	enc := yaml.NewEncoder(&meta)
	enc.SetIndent(2)
	if err := enc.Encode(frontMatter{
		Title:     article.Title,
		Link:      article.Link,
		Published: article.Published,
		Image:     article.ImageURL,
		Crawled:   article.Crawled,
	}); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta.Bytes())
	b.WriteString("---\n\n")
	b.WriteString(article.Content)
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Exporter implements locnews.ArticleWriter at compile time.
var _ locnews.ArticleWriter = (*Exporter)(nil)

// Exporter writes articles to a directory with atomic update semantics.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// baseDir is the parent directory, name is the output directory name.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// CreateArticle writes one article into the temporary directory.
func (e *Exporter) CreateArticle(ctx context.Context, article *locnews.Article) error {
	if article.Link == "" {
		return locnews.Errorf(locnews.EINVALID, "article link required")
	}

	relPath, err := URLToPath(article.Link)
	if err != nil {
		return err
	}

	content, err := FormatArticle(article)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the output directory with the exported articles.
func (e *Exporter) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the exported articles.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
