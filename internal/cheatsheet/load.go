// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cheatsheet

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed catalogue.toml
var builtinTOML string

var (
	builtinOnce sync.Once
	builtin     Catalogue
)

// Default returns the built-in catalogue. It panics if the embedded data
// does not decode, which can only happen with a broken build.
func Default() Catalogue {
	builtinOnce.Do(func() {
		cat, err := Parse(builtinTOML)
		if err != nil {
			panic(fmt.Sprintf("cheatsheet: embedded catalogue: %v", err))
		}
		builtin = cat
	})
	return builtin.clone()
}

// Parse decodes a catalogue from TOML and checks that every item is usable.
func Parse(data string) (Catalogue, error) {
	var cat Catalogue
	md, err := toml.Decode(data, &cat)
	if err != nil {
		return Catalogue{}, fmt.Errorf("decode catalogue: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Catalogue{}, fmt.Errorf("decode catalogue: unknown key %q", undecoded[0].String())
	}
	if err := cat.validate(); err != nil {
		return Catalogue{}, err
	}
	return cat, nil
}

func (c Catalogue) validate() error {
	if len(c.Categories) == 0 {
		return errors.New("catalogue has no categories")
	}
	for ci, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d: missing name", ci)
		}
		for ii, item := range cat.Items {
			switch {
			case item.Label == "":
				return fmt.Errorf("%s item %d: missing label", cat.Name, ii)
			case item.Search == "":
				return fmt.Errorf("%s/%s: missing search key", cat.Name, item.Label)
			case item.Payload == "":
				return fmt.Errorf("%s/%s: missing payload", cat.Name, item.Label)
			}
		}
	}
	return nil
}

// clone copies the category and item slices so callers cannot alias the
// shared built-in value.
func (c Catalogue) clone() Catalogue {
	out := Catalogue{Categories: make([]Category, len(c.Categories))}
	for i, cat := range c.Categories {
		out.Categories[i] = Category{
			Name:  cat.Name,
			Items: append([]Item(nil), cat.Items...),
		}
	}
	return out
}
