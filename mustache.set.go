package mustache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// TemplateSet is a named collection of compiled templates. Templates in a
// set can include each other: rendering a member resolves {{>name}} and
// {{<name}} against the set itself. A TemplateSet is safe for concurrent
// use; compiled templates are immutable, so a reload never disturbs a
// render in progress.
type TemplateSet struct {
	engine *Engine
	logger *zap.Logger

	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateSet creates an empty set compiling with engine.
// A nil engine uses the default engine.
func NewTemplateSet(engine *Engine) *TemplateSet {
	if engine == nil {
		engine = defaultEngine
	}
	return &TemplateSet{
		engine:    engine,
		logger:    engine.logger,
		templates: make(map[string]*Template),
	}
}

// Add compiles source and stores it under name, replacing any template
// with the same name.
func (s *TemplateSet) Add(name, source string) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}
	tmpl, err := s.engine.Compile(source)
	if err != nil {
		return NewTemplateCompileError(name, err)
	}
	return s.AddTemplate(name, tmpl)
}

// MustAdd adds a template and panics on error.
func (s *TemplateSet) MustAdd(name, source string) {
	if err := s.Add(name, source); err != nil {
		panic(err)
	}
}

// AddTemplate stores an already compiled template under name.
func (s *TemplateSet) AddTemplate(name string, tmpl *Template) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}
	if tmpl == nil {
		return NewNilTemplateError(name)
	}

	s.mu.Lock()
	s.templates[name] = tmpl
	s.mu.Unlock()

	s.logger.Debug(LogMsgTemplateAdded, zap.String(LogFieldTemplate, name))
	return nil
}

// Remove deletes a template. Returns true if it existed.
func (s *TemplateSet) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.templates[name]; !exists {
		return false
	}
	delete(s.templates, name)
	return true
}

// Load replaces the contents of the set with every template in storage.
// All templates are compiled before the swap; if any fails, the set is
// left unchanged and the error names the failing template.
func (s *TemplateSet) Load(ctx context.Context, storage TemplateStorage) error {
	names, err := storage.List(ctx)
	if err != nil {
		return err
	}

	templates := make(map[string]*Template, len(names))
	for _, name := range names {
		stored, err := storage.Get(ctx, name)
		if err != nil {
			return err
		}
		tmpl, err := s.engine.Compile(stored.Source)
		if err != nil {
			return NewTemplateCompileError(name, err)
		}
		templates[name] = tmpl
	}

	s.mu.Lock()
	s.templates = templates
	s.mu.Unlock()

	s.logger.Debug(LogMsgSetLoaded, zap.Int(LogFieldTemplates, len(templates)))
	return nil
}

// Get returns the template stored under name.
func (s *TemplateSet) Get(name string) (*Template, error) {
	tmpl, ok := s.lookupPartial(name)
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	return tmpl, nil
}

// Has reports whether name is in the set
func (s *TemplateSet) Has(name string) bool {
	_, ok := s.lookupPartial(name)
	return ok
}

// Names returns the template names, sorted.
func (s *TemplateSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of templates
func (s *TemplateSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// Partials returns a snapshot of the set usable with Template.Render.
func (s *TemplateSet) Partials() Partials {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partials := make(Partials, len(s.templates))
	for name, tmpl := range s.templates {
		partials[name] = tmpl
	}
	return partials
}

// Render renders the named template with the set as its partials.
// Errors come from a missing template or from data conversion.
func (s *TemplateSet) Render(name string, data any) (string, error) {
	tmpl, err := s.Get(name)
	if err != nil {
		return "", err
	}
	value, err := ValueOf(data)
	if err != nil {
		return "", err
	}
	return tmpl.render(value, s), nil
}

// lookupPartial implements partialLookup
func (s *TemplateSet) lookupPartial(name string) (*Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tmpl, ok := s.templates[name]
	return tmpl, ok
}
