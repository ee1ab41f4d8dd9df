package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hammale2003/satcore/cnf"
)

// Problem descriptions are YAML files. These mirror the request shapes of the
// excluded transport layer: the CLI only reads them, feeds the core and
// prints what comes back.

type coloringFile struct {
	Vertices []string   `yaml:"vertices"`
	Edges    [][]string `yaml:"edges"`
	Colors   []string   `yaml:"colors"`
}

type sudokuFile struct {
	Grid [][]int `yaml:"grid"`
}

type ruleSpec struct {
	If      string `yaml:"if"`
	Then    string `yaml:"then"`
	Penalty int    `yaml:"penalty"`
}

type rulesFile struct {
	Rules        []ruleSpec      `yaml:"rules"`
	Observations map[string]bool `yaml:"observations"`
	K            int             `yaml:"k"`
}

func loadYAML(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %q", path)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "could not parse %q", path)
	}
	return nil
}

func (f coloringFile) edges() ([][2]string, error) {
	edges := make([][2]string, len(f.Edges))
	for i, e := range f.Edges {
		if len(e) != 2 {
			return nil, errors.Errorf("edge %d has %d endpoints, want 2", i+1, len(e))
		}
		edges[i] = [2]string{e[0], e[1]}
	}
	return edges, nil
}

// parseAtom reads a proposition name, negated when prefixed with "!".
func parseAtom(s string) (cnf.Atom, error) {
	negated := strings.HasPrefix(s, "!")
	name := strings.TrimSpace(strings.TrimPrefix(s, "!"))
	if name == "" {
		return cnf.Atom{}, errors.Errorf("empty proposition in %q", s)
	}
	if negated {
		return cnf.Neg(cnf.Proposition(name)), nil
	}
	return cnf.Pos(cnf.Proposition(name)), nil
}

func (f rulesFile) rules() ([]cnf.Rule, error) {
	rules := make([]cnf.Rule, len(f.Rules))
	for i, spec := range f.Rules {
		ifAtom, err := parseAtom(spec.If)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i+1)
		}
		thenAtom, err := parseAtom(spec.Then)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i+1)
		}
		if spec.Penalty < 0 {
			return nil, errors.Errorf("rule %d has negative penalty %d", i+1, spec.Penalty)
		}
		rules[i] = cnf.Rule{If: ifAtom, Then: thenAtom, Penalty: spec.Penalty}
	}
	return rules, nil
}

func (f rulesFile) observations() cnf.Observations {
	obs := make(cnf.Observations, len(f.Observations))
	for name, val := range f.Observations {
		obs[cnf.Proposition(name)] = val
	}
	return obs
}
