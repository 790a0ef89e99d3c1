package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

var _ driven.TemplateStore = (*TemplateStore)(nil)

// TemplateStore loads narrative templates from user-editable files on disk,
// falling back to the templates embedded in the binary.
//
// Initialisation is lazy: the directory and default files are only written on
// the first Load, never in the constructor.
type TemplateStore struct {
	mu          sync.RWMutex
	templateDir string
	cache       map[string]string
	initOnce    sync.Once
	initErr     error
}

// NewTemplateStore creates a file-based template store.
// If templateDir is empty, defaults to ~/.lexonarrative/templates.
func NewTemplateStore(templateDir string) (*TemplateStore, error) {
	if templateDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		templateDir = filepath.Join(dir, "templates")
	}

	return &TemplateStore{
		templateDir: templateDir,
		cache:       make(map[string]string),
	}, nil
}

// Load returns the template for a narrative type name.
// A missing or empty file falls back to the embedded default; a name with no
// default and no file returns an error wrapping domain.ErrNotFound.
func (s *TemplateStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if tmpl, ok := defaultTemplate(name); ok {
			return tmpl, nil
		}
		return "", fmt.Errorf("template store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if tmpl, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return tmpl, nil
	}
	s.mu.RUnlock()

	tmpl, err := s.loadFromFile(name)
	if err != nil || tmpl == "" {
		if def, ok := defaultTemplate(name); ok {
			return def, nil
		}
		if err == nil {
			err = errors.New("file is empty")
		}
		return "", fmt.Errorf("load template %q: %w: %w", name, domain.ErrNotFound, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		tmpl = cached
	} else {
		s.cache[name] = tmpl
	}
	s.mu.Unlock()

	return tmpl, nil
}

// Reload clears the template cache, forcing fresh loads from disk.
func (s *TemplateStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the template directory path.
func (s *TemplateStore) Dir() string {
	return s.templateDir
}

// initialise creates the template directory, one file per narrative type and
// a README. Existing files are left untouched.
func (s *TemplateStore) initialise() {
	if err := os.MkdirAll(s.templateDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create template directory: %w", err)
		return
	}

	for _, nt := range domain.NarrativeTypes() {
		content, ok := defaultTemplate(string(nt))
		if !ok {
			continue
		}
		path := filepath.Join(s.templateDir, string(nt)+".txt")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
				s.initErr = fmt.Errorf("create default template %q: %w", nt, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *TemplateStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.templateDir, name+".txt"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func defaultTemplate(name string) (string, bool) {
	tmpl, ok := vocabulary.DefaultTemplate(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(tmpl), true
}

func (s *TemplateStore) createReadme() error {
	path := filepath.Join(s.templateDir, "README.md")
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return nil
	}

	content := `# Narrative Templates

These templates are filled in when a Bar-compliant fee narrative is requested.

## Files

- ` + "`litigation.txt`" + ` - Court proceedings, pleadings and hearings
- ` + "`advisory.txt`" + ` - Opinions, agreements and transactional work
- ` + "`general.txt`" + ` - Matters that fit neither of the above

## Placeholders

Templates use literal ` + "`{{name}}`" + ` tokens:

- ` + "`{{matter_title}}`, `{{client_name}}`, `{{opposing_party}}`" + `
- ` + "`{{work_breakdown}}`, `{{total_hours}}`, `{{date_range}}`" + `
- ` + "`{{complexity_description}}`, `{{category_count}}`, `{{entry_count}}`" + `
- ` + "`{{fee_justification}}`, `{{scope_of_work}}`, `{{value_delivered}}`" + `

Unknown tokens are left as written. Changes are picked up automatically while
the MCP server or review UI is running, and on the next command otherwise.
Delete a file to restore the shipped default.
`
	return os.WriteFile(path, []byte(content), 0600)
}
