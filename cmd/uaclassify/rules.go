package main

import (
	"os"

	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/ruleset"
	"github.com/fernwood-systems/uaclassify/uaclassify"
)

// matchersFromFlags loads a Document from path if given, else falls back
// to the embedded default rule set. YAML and JSON are both accepted.
func matchersFromFlags(path string) (domain.Matchers, error) {
	if path == "" {
		return ruleset.LoadBuiltins()
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Matchers{}, err
	}
	defer f.Close()
	return ruleset.LoadYAML(f)
}

// parserFromFlags builds the default production Parser stack (Linear +
// Caching + Locking(LRU(200))) over the rule set at path, or the
// embedded built-ins if path is empty.
func parserFromFlags(path string) (*uaclassify.Parser, error) {
	matchers, err := matchersFromFlags(path)
	if err != nil {
		return nil, err
	}
	return uaclassify.FromMatchers(matchers), nil
}
