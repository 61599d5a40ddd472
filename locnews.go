// Package locnews provides a local news aggregator. It reads RSS feeds,
// crawls each linked article, extracts the ordered content blocks of the
// article body with a structural, domain-agnostic extractor, and stores
// the merged records for reading and export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gofeed/).
package locnews
