// SPDX-License-Identifier: AGPL-3.0-or-later

package inspection

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Provider scans the content of a single file.
type Provider interface {
	Name() string
	Scan(ctx context.Context, content, path string) (*Outcome, error)
}

// Registry maps language identifiers to the providers able to inspect them.
type Registry struct {
	mu         sync.RWMutex
	providers  map[string][]Provider
	extensions map[string]string
}

// NewRegistry returns a registry that knows the TypeScript file extensions.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string][]Provider),
		extensions: map[string]string{
			".ts":  "typescript",
			".tsx": "typescript",
		},
	}
}

// Register adds p for language. Provider names are unique per language.
func (r *Registry) Register(language string, p Provider) error {
	if language == "" {
		return fmt.Errorf("register %s: empty language", p.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.providers[language] {
		if existing.Name() == p.Name() {
			return fmt.Errorf("provider %q already registered for %s", p.Name(), language)
		}
	}
	r.providers[language] = append(r.providers[language], p)
	return nil
}

// Providers returns the providers registered for language, in registration order.
func (r *Registry) Providers(language string) []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.providers[language]
	out := make([]Provider, len(list))
	copy(out, list)
	return out
}

// Languages returns the languages with at least one provider, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.providers))
	for lang := range r.providers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// MapExtension associates a file extension (".ts") with a language.
func (r *Registry) MapExtension(ext, language string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extensions[strings.ToLower(ext)] = language
}

// LanguageFor returns the language of path, or "" when the extension is unknown.
func (r *Registry) LanguageFor(path string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extensions[strings.ToLower(filepath.Ext(path))]
}
