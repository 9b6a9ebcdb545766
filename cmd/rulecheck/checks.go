package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

var (
	ErrInvalidChecksFile = errors.New("invalid checks file")
	ErrNoChecks          = errors.New("checks file declares no checks")
)

// checksFile is the YAML document read by -checks.
//
//	records:
//	  users:
//	    - email: taken@example.com
//	checks:
//	  - attribute: email
//	    value: taken@example.com
//	    rule: exists
//	    params: [users, email]
//
// records seed the memory driver and are ignored by the others.
type checksFile struct {
	Records map[string][]map[string]any `yaml:"records"`
	Checks  []checkEntry                `yaml:"checks"`
}

type checkEntry struct {
	Attribute string `yaml:"attribute"`
	Value     any    `yaml:"value"`
	Rule      string `yaml:"rule"`
	Params    []any  `yaml:"params"`
}

func readChecksFile(path string) (*checksFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidChecksFile, err)
	}
	defer f.Close()
	return decodeChecks(f)
}

func decodeChecks(r io.Reader) (*checksFile, error) {
	var doc checksFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoChecks
		}
		return nil, errors.Join(ErrInvalidChecksFile, err)
	}
	if len(doc.Checks) == 0 {
		return nil, ErrNoChecks
	}
	return &doc, nil
}

// checks resolves rule names. Unknown names fail the whole file.
func (d *checksFile) checks() ([]validator.Check, error) {
	out := make([]validator.Check, 0, len(d.Checks))
	for i, e := range d.Checks {
		name, err := validator.ParseName(e.Rule)
		if err != nil {
			return nil, fmt.Errorf("check %d (%s): %w", i, e.Attribute, err)
		}
		out = append(out, validator.Check{
			Attribute: e.Attribute,
			Value:     e.Value,
			Rule:      name,
			Params:    e.Params,
		})
	}
	return out, nil
}

// seed copies the declared records into m.
func (d *checksFile) seed(m *lookup.Memory) int {
	n := 0
	for collection, rows := range d.Records {
		for _, row := range rows {
			m.Insert(collection, lookup.Record(row))
			n++
		}
	}
	return n
}
