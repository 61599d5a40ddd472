package mock

import "github.com/fwojciec/locnews"

var _ locnews.Converter = (*Converter)(nil)

// Converter is a mock implementation of locnews.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
