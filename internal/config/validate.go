package config

import (
	"fmt"
	"strings"

	"github.com/dshills/goodhex/internal/annotation"
	"github.com/dshills/goodhex/internal/renderer"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidationErrors
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.View.Width < 1 {
		fail("view.width", "must be at least 1", c.View.Width)
	}
	if c.View.Start < 0 {
		fail("view.start", "must not be negative", c.View.Start)
	}

	if len(c.Annotations.Sets) == 0 {
		fail("annotations.sets", "at least one set is required", c.Annotations.Sets)
	}
	seen := make(map[string]bool, len(c.Annotations.Sets))
	for i, name := range c.Annotations.Sets {
		path := fmt.Sprintf("annotations.sets[%d]", i)
		switch {
		case strings.TrimSpace(name) == "":
			fail(path, "set name is empty", name)
		case seen[name]:
			fail(path, "duplicate set name", name)
		}
		seen[name] = true
	}
	if t := c.Annotations.NonPrintableTag; t < annotation.MinColor || t > annotation.MaxColor {
		fail("annotations.nonPrintableTag", fmt.Sprintf("must be in %d..%d", annotation.MinColor, annotation.MaxColor), t)
	}

	if c.Data.MaxMemory < 1 {
		fail("data.maxMemory", "must be at least 1", c.Data.MaxMemory)
	}

	if !logLevels[strings.ToLower(c.Logging.Level)] {
		fail("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	p := c.Palette
	for _, e := range []struct{ path, spec string }{
		{"palette.text", p.Text},
		{"palette.header", p.Header},
		{"palette.marker", p.Marker},
		{"palette.cursor", p.Cursor},
	} {
		if e.spec == "" {
			continue
		}
		if _, err := ParseStyle(e.spec); err != nil {
			fail(e.path, err.Error(), e.spec)
		}
	}
	if len(p.Tags) > renderer.TagCount {
		fail("palette.tags", fmt.Sprintf("at most %d tags", renderer.TagCount), len(p.Tags))
	}
	for i, spec := range p.Tags {
		if spec == "" {
			continue
		}
		if _, err := ParseStyle(spec); err != nil {
			fail(fmt.Sprintf("palette.tags[%d]", i), err.Error(), spec)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
