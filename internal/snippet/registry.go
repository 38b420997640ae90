package snippet

import (
	"fmt"
	"strconv"
)

// Macro is a snippet function invocable by name with string arguments,
// the calling convention of the docs-site macro plugin.
type Macro func(args ...string) (string, error)

// Registry maps macro names to their implementations.
type Registry struct {
	macros map[string]Macro
}

// NewRegistry returns a registry with the standard macros bound to the
// given extractor: codetag, codefile, github, and kdoc.
func NewRegistry(x *Extractor) *Registry {
	r := &Registry{macros: make(map[string]Macro)}
	r.Register("codetag", codetagMacro(x))
	r.Register("codefile", codefileMacro(x))
	r.Register("github", githubMacro(x))
	r.Register("kdoc", kdocMacro())
	return r
}

// Register binds a macro name. Later registrations override earlier ones.
func (r *Registry) Register(name string, m Macro) {
	r.macros[name] = m
}

// Names returns the registered macro names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.macros))
	for n := range r.macros {
		names = append(names, n)
	}
	return names
}

// Invoke calls a macro by name.
func (r *Registry) Invoke(name string, args ...string) (string, error) {
	m, ok := r.macros[name]
	if !ok {
		return "", fmt.Errorf("snippet: unknown macro %q", name)
	}
	return m(args...)
}

// codetagMacro: codetag(path, tag, [lang], [count])
func codetagMacro(x *Extractor) Macro {
	return func(args ...string) (string, error) {
		if len(args) < 2 {
			return "", fmt.Errorf("codetag: expected (path, tag), got %d args", len(args))
		}
		opts := TagOptions{}
		if len(args) > 2 {
			opts.Lang = args[2]
		}
		if len(args) > 3 {
			count, err := strconv.Atoi(args[3])
			if err != nil {
				return "", fmt.Errorf("codetag: count must be an integer: %q", args[3])
			}
			opts.Count = count
		}
		return x.Tag(args[0], args[1], opts)
	}
}

// codefileMacro: codefile(path, [start], [end], [lang])
func codefileMacro(x *Extractor) Macro {
	return func(args ...string) (string, error) {
		if len(args) < 1 {
			return "", fmt.Errorf("codefile: expected (path), got no args")
		}
		opts := FileOptions{}
		var err error
		if len(args) > 1 && args[1] != "" {
			if opts.Start, err = strconv.Atoi(args[1]); err != nil {
				return "", fmt.Errorf("codefile: start must be an integer: %q", args[1])
			}
		}
		if len(args) > 2 && args[2] != "" {
			if opts.End, err = strconv.Atoi(args[2]); err != nil {
				return "", fmt.Errorf("codefile: end must be an integer: %q", args[2])
			}
		}
		if len(args) > 3 {
			opts.Lang = args[3]
		}
		return x.File(args[0], opts)
	}
}

// githubMacro: github(file, [branch])
func githubMacro(x *Extractor) Macro {
	return func(args ...string) (string, error) {
		if len(args) < 1 {
			return "", fmt.Errorf("github: expected (file), got no args")
		}
		branch := ""
		if len(args) > 1 {
			branch = args[1]
		}
		return x.GitHub(args[0], branch)
	}
}

// kdocMacro: kdoc(fqcn, [display])
func kdocMacro() Macro {
	return func(args ...string) (string, error) {
		if len(args) < 1 {
			return "", fmt.Errorf("kdoc: expected (fqcn), got no args")
		}
		display := ""
		if len(args) > 1 {
			display = args[1]
		}
		return KDoc(args[0], display), nil
	}
}
