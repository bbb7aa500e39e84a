package ruleset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fernwood-systems/uaclassify/domain"
)

//go:embed builtins.yaml
var builtinsYAML []byte

// LoadBuiltins parses the embedded default rule set into eagerly
// compiled domain.Matchers. Safe to call repeatedly; each call compiles
// its own independent set of matchers.
func LoadBuiltins() (domain.Matchers, error) {
	var doc Document
	if err := yaml.Unmarshal(builtinsYAML, &doc); err != nil {
		return domain.Matchers{}, fmt.Errorf("ruleset: parsing embedded builtins: %w", err)
	}
	return ToMatchers(doc), nil
}

// LoadLazyBuiltins is LoadBuiltins but every matcher defers regex
// compilation to first use.
func LoadLazyBuiltins() (domain.Matchers, error) {
	var doc Document
	if err := yaml.Unmarshal(builtinsYAML, &doc); err != nil {
		return domain.Matchers{}, fmt.Errorf("ruleset: parsing embedded builtins: %w", err)
	}
	return ToLazyMatchers(doc), nil
}
