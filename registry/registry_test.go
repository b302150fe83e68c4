/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/site"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		site   site.Site
		entity Entity
		want   string
	}{
		{site.Company, Project, "company_projects"},
		{site.Company, Service, "company_services"},
		{site.NGO, Program, "ngo_programs"},
		{site.NGO, Story, "ngo_stories"},
		{site.NGO, News, "ngo_news"},
		{site.Company, Gallery, "company_gallery"},
		{site.Company, Team, "company_team_members"},
		{site.NGO, Blog, "ngo_blog_posts"},
		{site.NGO, Hero, "ngo_hero_sections"},
		{site.Company, About, "company_about_sections"},
		{site.Company, Settings, "company_site_settings"},
		{site.Company, Category, "categories"},
		{site.NGO, Contact, "contact_submissions"},
	}

	for _, tt := range tests {
		t.Run(string(tt.site)+"/"+string(tt.entity), func(t *testing.T) {
			assert.Equal(t, tt.want, TableName(tt.site, tt.entity))
		})
	}
}

func TestDefaultResolve(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())

	table, err := r.Resolve(site.NGO, Event)
	require.NoError(t, err)
	assert.Equal(t, "ngo_events", table)

	entry, err := r.Lookup(site.Company, Category)
	require.NoError(t, err)
	assert.True(t, entry.Shared)
	assert.Equal(t, "categories", entry.Table)
}

func TestResolveUnmapped(t *testing.T) {
	r := Default()

	// programs are an ngo-only entity
	_, err := r.Resolve(site.Company, Program)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownTable(err))

	_, err = r.Resolve(site.NGO, Entity("widget"))
	assert.True(t, errors.IsUnknownTable(err))
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Entry{Site: site.NGO, Entity: Event, Table: "ngo_events"}))

	err := r.Register(Entry{Site: site.NGO, Entity: Event, Table: "ngo_events_v2"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	table, err := r.Resolve(site.NGO, Event)
	require.NoError(t, err)
	assert.Equal(t, "ngo_events", table)
}

func TestValidate(t *testing.T) {
	t.Run("missing catalog entity", func(t *testing.T) {
		r := New(Entry{Site: site.NGO, Entity: Event, Table: "ngo_events"})
		err := r.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsUnknownTable(err))
	})

	t.Run("malformed table name", func(t *testing.T) {
		r := Default()
		r.Set(Entry{Site: site.NGO, Entity: Event, Table: "NGO Events"})
		err := r.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("table reused without sharing", func(t *testing.T) {
		r := Default()
		r.Set(Entry{Site: site.NGO, Entity: Event, Table: "ngo_programs"})
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ngo_programs")
	})

	t.Run("unknown site", func(t *testing.T) {
		r := Default()
		r.Set(Entry{Site: site.Site("charity"), Entity: Event, Table: "charity_events"})
		err := r.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestEntriesSorted(t *testing.T) {
	entries := Default().Entries()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		assert.True(t, prev.Site < cur.Site || (prev.Site == cur.Site && prev.Entity < cur.Entity))
	}
	assert.Len(t, entries, len(Catalog(site.Company))+len(Catalog(site.NGO)))
}

func TestLoadYAML(t *testing.T) {
	src := `
tables:
  - site: " NGO"
    entity: story
    table: ngo_success_stories
  - site: company
    entity: category
    table: categories
    shared: true
`
	entries, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Site: site.NGO, Entity: Story, Table: "ngo_success_stories"}, entries[0])
	assert.True(t, entries[1].Shared)

	_, err = LoadYAML(strings.NewReader("tables:\n  - site: charity\n    entity: story\n    table: x\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = LoadYAML(strings.NewReader("tables:\n  - site: ngo\n    entity: story\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = LoadYAML(strings.NewReader("tabels: []\n"))
	assert.Error(t, err)

	entries, err = LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables:\n  - site: ngo\n    entity: story\n    table: ngo_success_stories\n"), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	table, err := r.Resolve(site.NGO, Story)
	require.NoError(t, err)
	assert.Equal(t, "ngo_success_stories", table)

	table, err = r.Resolve(site.Company, Project)
	require.NoError(t, err)
	assert.Equal(t, "company_projects", table)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
