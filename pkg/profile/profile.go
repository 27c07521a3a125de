package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/safeop/pkg/validator"
)

// Profile is a named pair of overrides applied between the defaults and
// per-call configuration.
type Profile struct {
	Name    string
	Numeric validator.NumberOverride
	Text    validator.TextOverride
}

// Registry holds profiles by name. A nil *Registry is empty.
type Registry struct {
	profiles map[string]Profile
}

// document is the file layout:
//
//	profiles:
//	  strict:
//	    numeric: {allowNegative: false, min: 0}
//	    text: {maxLength: 255}
//	  unbounded:
//	    numeric: {min: null, max: null}
type document struct {
	Profiles map[string]struct {
		Numeric map[string]any `yaml:"numeric"`
		Text    map[string]any `yaml:"text"`
	} `yaml:"profiles"`
}

// Parse reads profiles from YAML. Keys are the JSON names of the override
// fields and unknown keys are rejected. A key set to null clears that
// setting, so "max: null" removes the upper bound.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	reg := &Registry{profiles: make(map[string]Profile, len(doc.Profiles))}
	for name, raw := range doc.Profiles {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidProfile)
		}
		p := Profile{Name: name}
		if err := decodeOverride(raw.Numeric, &p.Numeric); err != nil {
			return nil, fmt.Errorf("%w %q: numeric: %w", ErrInvalidProfile, name, err)
		}
		if err := decodeOverride(raw.Text, &p.Text); err != nil {
			return nil, fmt.Errorf("%w %q: text: %w", ErrInvalidProfile, name, err)
		}
		reg.profiles[name] = p
	}
	return reg, nil
}

// Load reads and parses the profile file at path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return Parse(data)
}

// decodeOverride re-encodes the YAML mapping as JSON and decodes it into dst
// through the Setting JSON codec, which maps null to a cleared setting.
func decodeOverride(m map[string]any, dst any) error {
	if len(m) == 0 {
		return nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Get returns the named profile.
func (r *Registry) Get(name string) (Profile, bool) {
	if r == nil {
		return Profile{}, false
	}
	p, ok := r.profiles[name]
	return p, ok
}

// Names lists profile names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len reports the number of profiles.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.profiles)
}
