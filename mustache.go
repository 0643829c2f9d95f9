// Package mustache implements the Mustache template language: variable
// interpolation, sections, inverted sections, comments, partials,
// delimiter changes and template inheritance with blocks and parents.
//
//	Hello, {{name}}!
//
// # Basic Usage
//
// Compile once, render many times:
//
//	tmpl := mustache.MustCompile("Hello, {{name}}!")
//	result, err := tmpl.Render(map[string]any{"name": "Alice"}, nil)
//	// result: "Hello, Alice!"
//
// A compiled Template is immutable. It can be rendered concurrently against
// different data and different partials.
//
// # Template Syntax
//
//	{{name}}              escaped interpolation
//	{{{name}}} {{&name}}  unescaped interpolation
//	{{#name}}..{{/name}}  section: renders if truthy, once per item for lists
//	{{^name}}..{{/name}}  inverted section: renders if falsy or missing
//	{{! comment }}        comment
//	{{>name}}             partial
//	{{=<% %>=}}           change delimiters
//	{{$name}}..{{/name}}  block with a default body
//	{{<name}}..{{/name}}  parent: render partial name with block overrides
//
// Tags standing alone on a line are removed together with the line's
// whitespace and newline.
//
// # Partials and Inheritance
//
// Partials and parents are looked up by name at render time:
//
//	layout := mustache.MustCompile("<h1>{{$title}}Untitled{{/title}}</h1>")
//	page := mustache.MustCompile("{{<layout}}{{$title}}Home{{/title}}{{/layout}}")
//	result, _ := page.Render(nil, mustache.Partials{"layout": layout})
//	// result: "<h1>Home</h1>"
//
// A TemplateSet holds named templates that include each other, and can be
// loaded from a TemplateStorage (memory, filesystem or PostgreSQL):
//
//	storage, _ := mustache.NewFilesystemStorage("templates")
//	set := mustache.NewTemplateSet(nil)
//	err := set.Load(ctx, storage)
//	result, err := set.Render("page", data)
//
// # Error Handling
//
// Only compilation fails. Missing data, partials and parents render as
// nothing. Compile errors carry line and column metadata and wrap a
// *SyntaxError or *CompilerError:
//
//	_, err := mustache.Compile("{{#a}}")
//	var compilerErr *mustache.CompilerError
//	if errors.As(err, &compilerErr) {
//	    // compilerErr.Reason, compilerErr.Got, compilerErr.Position
//	}
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := mustache.New(
//	    mustache.WithDelimiters("<%", "%>"),
//	    mustache.WithMaxDepth(50),
//	    mustache.WithLogger(logger),
//	)
package mustache
