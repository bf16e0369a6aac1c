package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/service/template"
)

func testTemplates() []template.Template {
	return []template.Template{
		{
			ID:       "nr-12",
			Category: "NR-12",
			Name:     "Seguranca em maquinas",
			Items: []template.Item{
				{ID: "nr12-1", Question: "Protecoes fixas instaladas?", Weight: 2},
				{ID: "nr12-2", Question: "Parada de emergencia funcional?", Weight: 3},
			},
		},
		{
			ID:       "nr-17",
			Category: "NR-17",
			Name:     "Ergonomia",
			Items: []template.Item{
				{ID: "nr17-1", Question: "Mobiliario ajustavel?", Weight: 1},
			},
		},
	}
}

func TestRegistryChecklistsFor(t *testing.T) {
	reg, err := template.New(testTemplates(), []template.Mapping{
		{CNAEPrefix: "25", TemplateIDs: []string{"nr-12"}},
		{CNAEPrefix: "25.1", TemplateIDs: []string{"nr-12", "nr-17"}},
		{CNAEPrefix: "62", TemplateIDs: []string{"nr-17"}},
	})
	gt.NoError(t, err).Required()

	t.Run("prefix match instantiates checklists", func(t *testing.T) {
		company := &model.Company{ID: "co-1", CNAE: "62.01-5"}
		checklists := reg.ChecklistsFor(company)

		gt.Array(t, checklists).Length(1)
		gt.Value(t, checklists[0].Category).Equal("NR-17")
		gt.Value(t, checklists[0].CompanyID).Equal(company.ID)
		gt.Array(t, checklists[0].Items).Length(1)
		gt.Bool(t, checklists[0].ID != "").True()
	})

	t.Run("overlapping prefixes deduplicate templates", func(t *testing.T) {
		company := &model.Company{ID: "co-2", CNAE: "25.11-0"}
		checklists := reg.ChecklistsFor(company)

		// Both the "25" and "25.1" mappings match; nr-12 must appear once.
		gt.Array(t, checklists).Length(2)
		categories := map[string]bool{}
		for _, c := range checklists {
			categories[c.Category] = true
		}
		gt.Bool(t, categories["NR-12"]).True()
		gt.Bool(t, categories["NR-17"]).True()
	})

	t.Run("unknown CNAE yields nothing", func(t *testing.T) {
		company := &model.Company{ID: "co-3", CNAE: "99.99-9"}
		gt.Array(t, reg.ChecklistsFor(company)).Length(0)
	})
}

func TestRegistryValidation(t *testing.T) {
	t.Run("template without items is rejected", func(t *testing.T) {
		_, err := template.New([]template.Template{
			{ID: "nr-1", Category: "NR-1", Name: "Vazio"},
		}, nil)
		gt.Error(t, err)
	})

	t.Run("duplicate template ID is rejected", func(t *testing.T) {
		templates := testTemplates()
		templates[1].ID = templates[0].ID
		_, err := template.New(templates, nil)
		gt.Error(t, err)
	})

	t.Run("duplicate item ID is rejected", func(t *testing.T) {
		templates := testTemplates()
		templates[0].Items[1].ID = templates[0].Items[0].ID
		_, err := template.New(templates, nil)
		gt.Error(t, err)
	})

	t.Run("mapping to unknown template is rejected", func(t *testing.T) {
		_, err := template.New(testTemplates(), []template.Mapping{
			{CNAEPrefix: "25", TemplateIDs: []string{"nr-404"}},
		})
		gt.Error(t, err)
	})
}

func TestRegistryLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.toml")
	content := `
[[template]]
id = "nr-12"
category = "NR-12"
name = "Seguranca em maquinas"

[[template.item]]
id = "nr12-1"
question = "Protecoes fixas instaladas?"
weight = 2

[[mapping]]
cnae_prefix = "25"
templates = ["nr-12"]
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

	reg, err := template.Load(path)
	gt.NoError(t, err).Required()
	gt.Value(t, reg.Len()).Equal(1)

	tpl, ok := reg.Template("nr-12")
	gt.Bool(t, ok).True()
	gt.Value(t, tpl.Category).Equal("NR-12")
}
