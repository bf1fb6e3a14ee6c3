// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package guide

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed topics/*.md
var topicFiles embed.FS

// topicOrder fixes the presentation order of the embedded guides,
// foundational material first. Topics returns an error if a listed
// file is missing, which indicates a build bug, not a runtime
// condition.
var topicOrder = []string{
	"focus-traps",
	"keyboard-patterns",
	"announcements",
	"themes",
	"configuration",
}

// Topic is one embedded guide: its lookup slug (the filename without
// extension), the display title from the document's first heading, and
// the raw Markdown.
type Topic struct {
	Slug   string
	Title  string
	Source []byte
}

// Topics returns all embedded guides in presentation order.
func Topics() ([]Topic, error) {
	topics := make([]Topic, 0, len(topicOrder))
	for _, slug := range topicOrder {
		topic, err := Load(slug)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// Load reads one embedded guide by slug.
func Load(slug string) (Topic, error) {
	data, err := topicFiles.ReadFile("topics/" + slug + ".md")
	if err != nil {
		return Topic{}, fmt.Errorf("unknown guide topic %q: %w", slug, err)
	}
	return Topic{Slug: slug, Title: titleOf(data, slug), Source: data}, nil
}

// Slugs returns the known topic slugs in presentation order, for
// command help and unknown-topic suggestions.
func Slugs() []string {
	slugs := make([]string, len(topicOrder))
	copy(slugs, topicOrder)
	return slugs
}

// titleOf extracts the first level-one heading, falling back to the
// slug for documents without one.
func titleOf(source []byte, fallback string) string {
	for _, line := range strings.Split(string(source), "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return fallback
}
