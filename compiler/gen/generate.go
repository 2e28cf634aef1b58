package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/scriptgen/compiler/load"
	"github.com/syssam/scriptgen/dialect"
	"github.com/syssam/scriptgen/script"
)

// Generator produces build-script files from one project descriptor.
// Each rendered file owns an independent script model, so dialects can be
// generated in parallel.
type Generator struct {
	project *load.Descriptor
	cfg     Config
}

// New creates a generator for the given descriptor.
func New(project *load.Descriptor, opts ...Option) (*Generator, error) {
	if project == nil {
		return nil, NewConfigError("project", nil, "descriptor cannot be nil")
	}
	cfg := Config{Target: ".", Workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Generator{project: project, cfg: cfg}, nil
}

// Dialects returns the dialect names this generator will produce: the
// configured override, then the descriptor's list, then the default.
func (g *Generator) Dialects() []string {
	if len(g.cfg.Dialects) > 0 {
		return g.cfg.Dialects
	}
	if len(g.project.Dialects) > 0 {
		return g.project.Dialects
	}
	return []string{dialect.Default}
}

// Render renders the descriptor in one dialect without touching the file
// system.
func (g *Generator) Render(name string) (string, error) {
	d, err := dialect.Lookup(name)
	if err != nil {
		return "", &GenerationError{Dialect: name, Cause: err}
	}
	text, err := g.build().Render(d)
	if err != nil {
		return "", &GenerationError{Dialect: name, Cause: err}
	}
	return text, nil
}

// Generate renders and writes one script file per dialect under the target
// directory, in parallel. It returns the written paths in dialect order.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return nil, err
	}
	names := g.Dialects()
	paths := make([]string, len(names))

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			d, err := dialect.Lookup(name)
			if err != nil {
				return &GenerationError{Dialect: name, Cause: err}
			}
			text, err := g.build().Render(d)
			if err != nil {
				return &GenerationError{Dialect: name, Cause: err}
			}
			path := filepath.Join(g.cfg.Target, d.ScriptFileName())
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return &GenerationError{Dialect: name, Path: path, Cause: err}
			}
			paths[i] = path
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// build translates the descriptor into a fresh script model. Every call
// returns a new builder: rendered models are read-only.
func (g *Generator) build() *script.Builder {
	p := g.project
	b := script.NewBuilder()

	header := g.cfg.Header
	if len(header) == 0 {
		header = p.Header
	}
	if len(header) > 0 {
		b.HeaderComment(header...)
	}
	for _, plugin := range p.Plugins {
		b.PluginWithVersion(plugin.Comment, plugin.ID, plugin.Version)
	}
	for _, repo := range p.Repositories {
		switch repo.Kind {
		case load.RepoMavenCentral:
			b.MavenCentral()
		case load.RepoMavenLocal:
			b.MavenLocal()
		case load.RepoMaven:
			b.MavenRepository(repo.Comment, repo.URL)
		}
	}
	for _, dep := range p.Dependencies {
		switch {
		case dep.Platform != "":
			b.PlatformDependency(dep.Comment, dep.Configuration, dep.Platform)
		case dep.Project != "":
			b.ProjectDependency(dep.Comment, dep.Configuration, dep.Project)
		default:
			b.Dependency(dep.Comment, dep.Configuration, dep.Coordinates...)
		}
	}
	for _, prop := range p.Properties {
		if prop.Legacy {
			b.LegacyPropertyAssignment(prop.Comment, prop.Target, prop.Value)
		} else {
			b.PropertyAssignment(prop.Comment, prop.Target, prop.Value)
		}
	}
	for _, inv := range p.Invocations {
		b.MethodInvocation(inv.Comment, inv.Name, inv.Args...)
	}
	for _, task := range p.Tasks {
		for _, s := range task.Statements {
			switch {
			case task.Name != "" && s.Target != "":
				b.TaskPropertyAssignment(s.Comment, task.Name, task.Type, s.Target, s.Value)
			case task.Name != "":
				b.TaskMethodInvocation(s.Comment, task.Name, task.Type, s.Invoke, s.Args...)
			case s.Target != "":
				b.TaskTypePropertyAssignment(s.Comment, task.Type, s.Target, s.Value)
			default:
				b.TaskTypeMethodInvocation(s.Comment, task.Type, s.Invoke, s.Args...)
			}
		}
	}
	return b
}
