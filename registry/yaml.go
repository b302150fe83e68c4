/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/site"
)

type tableFile struct {
	Tables []Entry `yaml:"tables"`
}

// LoadYAML reads table overrides of the form
//
//	tables:
//	  - site: ngo
//	    entity: story
//	    table: ngo_success_stories
func LoadYAML(r io.Reader) ([]Entry, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode table map: %w", err)
	}

	for i := range f.Tables {
		parsed, err := site.Parse(string(f.Tables[i].Site))
		if err != nil {
			return nil, fmt.Errorf("table map entry %d: %w", i, err)
		}
		f.Tables[i].Site = parsed
		if f.Tables[i].Entity == "" || f.Tables[i].Table == "" {
			return nil, errors.NewValidationError("tables",
				fmt.Sprintf("entry %d needs both entity and table", i))
		}
	}
	return f.Tables, nil
}

// LoadFile applies the overrides in path on top of the default registry.
func LoadFile(path string) (*Registry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table map: %w", err)
	}
	defer fh.Close()

	entries, err := LoadYAML(fh)
	if err != nil {
		return nil, err
	}
	r := Default()
	for _, e := range entries {
		r.Set(e)
	}
	return r, nil
}
