/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/innovexadevelopment/admin-panel-sub000/site"
)

// Entity is a logical content type managed by the dashboard.
type Entity string

const (
	Project     Entity = "project"
	Service     Entity = "service"
	Program     Entity = "program"
	Event       Entity = "event"
	Story       Entity = "story"
	News        Entity = "news"
	Blog        Entity = "blog"
	Gallery     Entity = "gallery"
	Team        Entity = "team"
	Testimonial Entity = "testimonial"
	Partner     Entity = "partner"
	Hero        Entity = "hero"
	About       Entity = "about"
	Settings    Entity = "settings"
	Category    Entity = "category"
	Contact     Entity = "contact"
)

func (e Entity) String() string {
	return string(e)
}

// irregular holds table stems that are not the entity name plus "s".
var irregular = map[Entity]string{
	Story:    "stories",
	Category: "categories",
	News:     "news",
	Gallery:  "gallery",
	Team:     "team_members",
	Blog:     "blog_posts",
	Hero:     "hero_sections",
	About:    "about_sections",
	Settings: "site_settings",
	Contact:  "contact_submissions",
}

// shared lists entities stored in one table for both sites, partitioned by the site column.
var shared = map[Entity]bool{
	Category: true,
	Contact:  true,
}

// catalog lists the entities each site manages.
var catalog = map[site.Site][]Entity{
	site.Company: {
		Project, Service, News, Blog, Gallery, Team, Testimonial, Partner,
		Hero, About, Settings, Category, Contact,
	},
	site.NGO: {
		Program, Event, Story, News, Blog, Gallery, Team, Testimonial, Partner,
		Hero, About, Settings, Category, Contact,
	},
}

// Plural returns the table stem for e.
func Plural(e Entity) string {
	if stem, ok := irregular[e]; ok {
		return stem
	}
	return string(e) + "s"
}

// Prefix returns the table prefix for s.
func Prefix(s site.Site) string {
	return string(s) + "_"
}

// TableName derives the conventional table name for an entity on a site.
// Shared entities have no site prefix.
func TableName(s site.Site, e Entity) string {
	if shared[e] {
		return Plural(e)
	}
	return Prefix(s) + Plural(e)
}

// Catalog returns the entities managed on s.
func Catalog(s site.Site) []Entity {
	out := make([]Entity, len(catalog[s]))
	copy(out, catalog[s])
	return out
}
