// Package catalog holds the in-memory content shown in the main pane and the
// chat sidebar: page bodies per route, the assistant list and chat history.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Page is the content rendered for a route.
type Page struct {
	Route string
	Title string
	Body  string // markdown
}

// Assistant is an entry in the chat pane's Assistants section.
type Assistant struct {
	ID          string
	Name        string
	Description string
	Route       string
}

// Conversation is an entry in the chat pane's History section.
type Conversation struct {
	ID        string
	Title     string
	Route     string
	UpdatedAt time.Time
}

// Age returns a relative time like "3 hours ago" measured from now.
func (c Conversation) Age(now time.Time) string {
	return humanize.RelTime(c.UpdatedAt, now, "ago", "from now")
}

// Catalog is the content source for one shell instance.
type Catalog struct {
	pages      map[string]Page
	assistants []Assistant
	history    []Conversation
}

// New returns the built-in catalog with history timestamps relative to now.
func New(now time.Time) *Catalog {
	c := &Catalog{pages: make(map[string]Page)}
	for _, p := range builtinPages() {
		c.pages[p.Route] = p
	}
	c.assistants = builtinAssistants()
	c.history = builtinHistory(now)
	return c
}

// Page returns the page for route. Unknown routes fall back to the longest
// registered prefix, then to a generic not-found page.
func (c *Catalog) Page(route string) Page {
	if p, ok := c.pages[route]; ok {
		return p
	}
	best := ""
	for r := range c.pages {
		if r != "/" && strings.HasPrefix(route, r+"/") && len(r) > len(best) {
			best = r
		}
	}
	if best != "" {
		return c.pages[best]
	}
	return Page{
		Route: route,
		Title: "Not found",
		Body:  "# Not found\n\nNothing lives at `" + route + "` yet. Press `g` to pick another route.",
	}
}

// Routes returns every route with a page, sorted.
func (c *Catalog) Routes() []string {
	out := make([]string, 0, len(c.pages))
	for r := range c.pages {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Assistants returns the assistant list.
func (c *Catalog) Assistants() []Assistant {
	return append([]Assistant(nil), c.assistants...)
}

// History returns conversations, most recent first.
func (c *Catalog) History() []Conversation {
	out := append([]Conversation(nil), c.history...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// AddConversation records a new conversation and returns it.
func (c *Catalog) AddConversation(title string, at time.Time) Conversation {
	conv := Conversation{ID: uuid.New().String(), Title: title, UpdatedAt: at}
	conv.Route = "/chat/" + conv.ID[:8]
	c.history = append(c.history, conv)
	return conv
}

// HistoryTitles returns conversation titles in History() order. Used as the
// haystack for fuzzy filtering.
func (c *Catalog) HistoryTitles() []string {
	h := c.History()
	out := make([]string, len(h))
	for i, conv := range h {
		out[i] = conv.Title
	}
	return out
}
