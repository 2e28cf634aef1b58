// Package load reads and validates the YAML project descriptors that drive
// build-script generation.
//
// A descriptor declares what a generated script contains: plugins,
// repositories, dependencies, property assignments, method invocations and
// task configuration. It deliberately mirrors the builder API of the script
// package; the gen package turns a loaded descriptor into builder calls.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-openapi/inflect"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDescriptor indicates a descriptor definition error.
var ErrInvalidDescriptor = errors.New("load: invalid descriptor")

// DescriptorError represents a descriptor definition error.
type DescriptorError struct {
	Section string // descriptor section, e.g. "dependencies[2]"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	var b strings.Builder
	b.WriteString("load: descriptor error")
	if e.Section != "" {
		b.WriteString(" in ")
		b.WriteString(e.Section)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DescriptorError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for DescriptorError.
func (e *DescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}

// NewDescriptorError creates a new DescriptorError.
func NewDescriptorError(section, message string, cause error) *DescriptorError {
	return &DescriptorError{Section: section, Message: message, Cause: cause}
}

// Descriptor is one project descriptor loaded from YAML.
type Descriptor struct {
	Name         string       `yaml:"name"`
	Dialects     []string     `yaml:"dialects,omitempty"`
	Header       []string     `yaml:"header,omitempty"`
	Plugins      []Plugin     `yaml:"plugins,omitempty"`
	Repositories []Repository `yaml:"repositories,omitempty"`
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	Properties   []Property   `yaml:"properties,omitempty"`
	Invocations  []Invocation `yaml:"invocations,omitempty"`
	Tasks        []Task       `yaml:"tasks,omitempty"`
}

// Plugin declares one entry of the plugins section.
type Plugin struct {
	ID      string `yaml:"id"`
	Version string `yaml:"version,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Repository declares one entry of the repositories section. Kind is one of
// mavenCentral, mavenLocal or maven; maven requires a URL.
type Repository struct {
	Kind    string `yaml:"kind"`
	URL     string `yaml:"url,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Repository kinds.
const (
	RepoMavenCentral = "mavenCentral"
	RepoMavenLocal   = "mavenLocal"
	RepoMaven        = "maven"
)

// Dependency declares dependencies of one configuration. Exactly one of
// Coordinates, Platform or Project must be set.
type Dependency struct {
	Configuration string   `yaml:"configuration"`
	Coordinates   []string `yaml:"coordinates,omitempty"`
	Platform      string   `yaml:"platform,omitempty"`
	Project       string   `yaml:"project,omitempty"`
	Comment       string   `yaml:"comment,omitempty"`
}

// Property declares a top-level property assignment. Values are scalars or
// lists of scalars; ordered mappings have no stable YAML form and are not
// accepted from descriptors.
type Property struct {
	Target  string `yaml:"target"`
	Value   any    `yaml:"value"`
	Legacy  bool   `yaml:"legacy,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Invocation declares a top-level statement call.
type Invocation struct {
	Name    string `yaml:"name"`
	Args    []any  `yaml:"args,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Task declares configuration for one named task, or for every task of a
// type when Name is empty.
type Task struct {
	Name       string          `yaml:"name,omitempty"`
	Type       string          `yaml:"type,omitempty"`
	Statements []TaskStatement `yaml:"statements"`
}

// TaskStatement is one statement inside a task configuration block: an
// assignment when Target is set, an invocation when Invoke is set.
type TaskStatement struct {
	Target  string `yaml:"target,omitempty"`
	Value   any    `yaml:"value,omitempty"`
	Invoke  string `yaml:"invoke,omitempty"`
	Args    []any  `yaml:"args,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Load reads, normalizes and validates the descriptor at path.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read descriptor: %w", err)
	}
	return Parse(data)
}

// Parse decodes, normalizes and validates a descriptor from raw YAML.
// Unknown fields are rejected.
func Parse(data []byte) (*Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	d := &Descriptor{}
	if err := dec.Decode(d); err != nil {
		return nil, NewDescriptorError("", "cannot decode YAML", err)
	}
	d.normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// normalize rewrites free-form names into identifier form: task names
// become lowerCamelCase, task types UpperCamelCase.
func (d *Descriptor) normalize() {
	for i := range d.Tasks {
		if d.Tasks[i].Name != "" {
			d.Tasks[i].Name = inflect.CamelizeDownFirst(identifier(d.Tasks[i].Name))
		}
		if d.Tasks[i].Type != "" {
			d.Tasks[i].Type = inflect.Camelize(identifier(d.Tasks[i].Type))
		}
	}
}

// identifier folds spaces and dashes into underscores so inflect treats
// them as word boundaries.
func identifier(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks the descriptor for structural errors. The first error
// found is returned, attributed to its section.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return NewDescriptorError("name", "project name is required", nil)
	}
	for i, p := range d.Plugins {
		if p.ID == "" {
			return NewDescriptorError(fmt.Sprintf("plugins[%d]", i), "plugin id is required", nil)
		}
	}
	for i, r := range d.Repositories {
		switch r.Kind {
		case RepoMavenCentral, RepoMavenLocal:
			if r.URL != "" {
				return NewDescriptorError(fmt.Sprintf("repositories[%d]", i), r.Kind+" does not take a url", nil)
			}
		case RepoMaven:
			if r.URL == "" {
				return NewDescriptorError(fmt.Sprintf("repositories[%d]", i), "maven repository requires a url", nil)
			}
		default:
			return NewDescriptorError(fmt.Sprintf("repositories[%d]", i),
				fmt.Sprintf("unknown repository kind %q", r.Kind), nil)
		}
	}
	for i, dep := range d.Dependencies {
		section := fmt.Sprintf("dependencies[%d]", i)
		if dep.Configuration == "" {
			return NewDescriptorError(section, "configuration is required", nil)
		}
		forms := 0
		if len(dep.Coordinates) > 0 {
			forms++
		}
		if dep.Platform != "" {
			forms++
		}
		if dep.Project != "" {
			forms++
		}
		if forms != 1 {
			return NewDescriptorError(section, "exactly one of coordinates, platform or project must be set", nil)
		}
	}
	for i, p := range d.Properties {
		if p.Target == "" {
			return NewDescriptorError(fmt.Sprintf("properties[%d]", i), "target is required", nil)
		}
	}
	for i, inv := range d.Invocations {
		if inv.Name == "" {
			return NewDescriptorError(fmt.Sprintf("invocations[%d]", i), "name is required", nil)
		}
	}
	for i, task := range d.Tasks {
		section := fmt.Sprintf("tasks[%d]", i)
		if task.Name == "" && task.Type == "" {
			return NewDescriptorError(section, "a task needs a name or a type", nil)
		}
		if len(task.Statements) == 0 {
			return NewDescriptorError(section, "a task needs at least one statement", nil)
		}
		for j, s := range task.Statements {
			section := fmt.Sprintf("tasks[%d].statements[%d]", i, j)
			switch {
			case s.Target != "" && s.Invoke != "":
				return NewDescriptorError(section, "target and invoke are mutually exclusive", nil)
			case s.Target == "" && s.Invoke == "":
				return NewDescriptorError(section, "either target or invoke must be set", nil)
			case s.Invoke != "" && s.Value != nil:
				return NewDescriptorError(section, "invoke takes args, not value", nil)
			case s.Target != "" && len(s.Args) > 0:
				return NewDescriptorError(section, "assignment takes value, not args", nil)
			}
		}
	}
	return nil
}
