package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/locnews"
	locredis "github.com/fwojciec/locnews/redis"
	"gopkg.in/yaml.v3"
)

// findSource returns the source called name.
func findSource(deps *Dependencies, name string) (*locnews.Source, error) {
	sources, err := deps.Sources.FindSources(deps.Ctx, locnews.SourceFilter{Name: &name, Limit: 1})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return nil, err
	}
	if len(sources) == 0 {
		fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'locnews source list' to see available sources.\n", name)
		return nil, locnews.Errorf(locnews.ENOTFOUND, "source %q not found", name)
	}
	return sources[0], nil
}

// selectSources returns the named source, or every source when name is empty.
func selectSources(deps *Dependencies, name string) ([]*locnews.Source, error) {
	if name != "" {
		source, err := findSource(deps, name)
		if err != nil {
			return nil, err
		}
		return []*locnews.Source{source}, nil
	}

	sources, err := deps.Sources.FindSources(deps.Ctx, locnews.SourceFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return nil, err
	}
	if len(sources) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no sources configured. Use 'locnews source add' to create one.")
		return nil, locnews.Errorf(locnews.ENOTFOUND, "no sources configured")
	}
	return sources, nil
}

// Run executes the source add command.
func (c *SourceAddCmd) Run(deps *Dependencies) error {
	source := &locnews.Source{Name: c.Name, FeedURL: c.FeedURL}
	if err := deps.Sources.CreateSource(deps.Ctx, source); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added source %q (%s)\n", source.Name, source.ID)
	return nil
}

// Run executes the source list command.
func (c *SourceListCmd) Run(deps *Dependencies) error {
	sources, err := deps.Sources.FindSources(deps.Ctx, locnews.SourceFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'locnews source add' to create one.")
		return nil
	}

	for _, s := range sources {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.Name, s.FeedURL)
	}
	return nil
}

// Run executes the source update command.
func (c *SourceUpdateCmd) Run(deps *Dependencies) error {
	var upd locnews.SourceUpdate
	if c.NewName != "" {
		upd.Name = &c.NewName
	}
	if c.FeedURL != "" {
		upd.FeedURL = &c.FeedURL
	}
	if upd.Name == nil && upd.FeedURL == nil {
		fmt.Fprintln(deps.Stderr, "error: nothing to update. Use --new-name or --feed-url.")
		return locnews.Errorf(locnews.EINVALID, "nothing to update")
	}

	source, err := findSource(deps, c.Name)
	if err != nil {
		return err
	}

	source, err = deps.Sources.UpdateSource(deps.Ctx, source.ID, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated source %q (%s)\n", source.Name, source.FeedURL)
	return nil
}

// Run executes the source delete command.
func (c *SourceDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return locnews.Errorf(locnews.EINVALID, "use --force to confirm deletion")
	}

	source, err := findSource(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Sources.DeleteSource(deps.Ctx, source.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locnews.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted source %q\n", source.Name)
	return nil
}

// sourceFile is the YAML layout read by source import.
type sourceFile struct {
	Sources []struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	} `yaml:"sources"`
}

// Run executes the source import command.
func (c *SourceImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var file sourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid YAML in %s: %v\n", c.File, err)
		return locnews.Errorf(locnews.EINVALID, "invalid YAML in %s: %v", c.File, err)
	}

	var added, skipped int
	for _, entry := range file.Sources {
		source := &locnews.Source{Name: entry.Name, FeedURL: entry.URL}
		err := deps.Sources.CreateSource(deps.Ctx, source)
		switch locnews.ErrorCode(err) {
		case "":
			added++
		case locnews.ECONFLICT:
			skipped++
		default:
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", entry.Name, locnews.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d sources (%d already present)\n", added, skipped)
	return nil
}

// Run executes the source trigger command.
func (c *SourceTriggerCmd) Run(deps *Dependencies) error {
	sources, err := selectSources(deps, c.Name)
	if err != nil {
		return err
	}

	for _, s := range sources {
		task := locredis.Task{URL: s.FeedURL, SourceID: s.ID, Name: s.Name}
		if err := deps.Tasks.Enqueue(deps.Ctx, task); err != nil {
			fmt.Fprintf(deps.Stderr, "error: queue %s: %v\n", s.Name, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Queued %s\n", s.Name)
	}
	return nil
}
