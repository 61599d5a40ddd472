package mock

import "github.com/fwojciec/locnews"

var (
	_ locnews.Extractor     = (*Extractor)(nil)
	_ locnews.NoiseDetector = (*NoiseDetector)(nil)
)

// Extractor is a mock implementation of locnews.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*locnews.ExtractResult, error)
}

func (e *Extractor) Extract(pageURL, html string) (*locnews.ExtractResult, error) {
	return e.ExtractFn(pageURL, html)
}

// NoiseDetector is a mock implementation of locnews.NoiseDetector.
type NoiseDetector struct {
	IsNoiseFn func(text string) bool
}

func (d *NoiseDetector) IsNoise(text string) bool {
	return d.IsNoiseFn(text)
}
