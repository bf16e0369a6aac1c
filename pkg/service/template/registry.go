// Package template holds the static regulatory (NR) checklist templates
// and the CNAE-to-template mapping used to instantiate company
// checklists. Templates are configuration data, not engine logic.
package template

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Item is one question of a checklist template.
type Item struct {
	ID       string `toml:"id"`
	Question string `toml:"question"`
	Weight   int    `toml:"weight"`
}

// Template is a regulatory checklist definition, keyed by NR code.
type Template struct {
	ID       string `toml:"id"`
	Category string `toml:"category"`
	Name     string `toml:"name"`
	Items    []Item `toml:"item"`
}

// Validate checks if the template is valid
func (t *Template) Validate() error {
	if t.ID == "" {
		return goerr.New("template ID is required")
	}
	if t.Category == "" {
		return goerr.New("template category is required", goerr.V("id", t.ID))
	}
	if len(t.Items) == 0 {
		return goerr.New("template must have at least one item", goerr.V("id", t.ID))
	}
	itemIDs := make(map[string]bool)
	for _, item := range t.Items {
		if item.ID == "" || item.Question == "" {
			return goerr.New("template item requires id and question", goerr.V("template", t.ID))
		}
		if itemIDs[item.ID] {
			return goerr.New("duplicate template item ID", goerr.V("template", t.ID), goerr.V("item", item.ID))
		}
		itemIDs[item.ID] = true
	}
	return nil
}

// Mapping associates a CNAE prefix with the templates applicable to
// companies under that classification.
type Mapping struct {
	CNAEPrefix  string   `toml:"cnae_prefix"`
	TemplateIDs []string `toml:"templates"`
}

type registryFile struct {
	Templates []Template `toml:"template"`
	Mappings  []Mapping  `toml:"mapping"`
}

// Registry resolves which checklists apply to a company.
type Registry struct {
	templates map[string]Template
	mappings  []Mapping
}

// Load reads the template registry from a TOML file.
func Load(path string) (*Registry, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read template file", goerr.V("path", path))
	}

	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse template TOML", goerr.V("path", path))
	}

	return New(file.Templates, file.Mappings)
}

// New builds a registry from templates and mappings.
func New(templates []Template, mappings []Mapping) (*Registry, error) {
	reg := &Registry{
		templates: make(map[string]Template, len(templates)),
		mappings:  mappings,
	}

	for i := range templates {
		tpl := &templates[i]
		if err := tpl.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid template")
		}
		if _, ok := reg.templates[tpl.ID]; ok {
			return nil, goerr.New("duplicate template ID", goerr.V("id", tpl.ID))
		}
		reg.templates[tpl.ID] = *tpl
	}

	for _, m := range mappings {
		for _, id := range m.TemplateIDs {
			if _, ok := reg.templates[id]; !ok {
				return nil, goerr.New("mapping references unknown template",
					goerr.V("cnae_prefix", m.CNAEPrefix), goerr.V("template", id))
			}
		}
	}

	return reg, nil
}

// Template returns a template by ID.
func (r *Registry) Template(id string) (Template, bool) {
	tpl, ok := r.templates[id]
	return tpl, ok
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}

// ChecklistsFor instantiates the checklists applicable to a company
// based on its CNAE classification. Unknown CNAEs yield no checklists.
func (r *Registry) ChecklistsFor(company *model.Company) []*model.Checklist {
	var checklists []*model.Checklist
	seen := make(map[string]bool)

	for _, m := range r.mappings {
		if !strings.HasPrefix(company.CNAE, m.CNAEPrefix) {
			continue
		}
		for _, id := range m.TemplateIDs {
			if seen[id] {
				continue
			}
			seen[id] = true

			tpl := r.templates[id]
			items := make([]model.ChecklistItem, len(tpl.Items))
			for i, item := range tpl.Items {
				items[i] = model.ChecklistItem{
					ID:       item.ID,
					Question: item.Question,
					Weight:   item.Weight,
				}
			}
			checklists = append(checklists, &model.Checklist{
				ID:        types.NewChecklistID(),
				CompanyID: company.ID,
				Category:  tpl.Category,
				Items:     items,
			})
		}
	}

	return checklists
}
