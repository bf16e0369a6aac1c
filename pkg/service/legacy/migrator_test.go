package legacy_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/legacy"
)

func TestMigrateFullRecord(t *testing.T) {
	rec := legacy.Record{
		EmpresaID:           "empresa-1",
		Unidade:             "Matriz",
		Setor:               "Producao",
		TipoAmbiente:        "industrial",
		Cargo:               "Operador",
		Perigo:              "Ruido alto",
		EventoPerigoso:      "Exposicao continua",
		DanoPotencial:       "Perda auditiva",
		RiskType:            "fisico",
		Condicao:            "habitual",
		Expostos:            12,
		ControlesExistentes: "Protetor auricular",
	}

	bundle := legacy.Migrate(rec)

	env := bundle.Environment
	gt.Value(t, env.CompanyID).Equal(types.CompanyID("empresa-1"))
	gt.Value(t, env.Unit).Equal("Matriz")
	gt.Value(t, env.Sector).Equal("Producao")
	gt.Value(t, env.Name).Equal(legacy.EnvironmentName)
	gt.Value(t, env.Type).Equal("industrial")
	gt.Value(t, env.Status).Equal(types.EnvironmentDraft)

	activity := bundle.Activity
	gt.Value(t, activity.EnvironmentID).Equal(env.ID)
	gt.Value(t, activity.Name).Equal(legacy.ActivityName)
	gt.Value(t, activity.Role).Equal("Operador")
	gt.Value(t, activity.MacroProcess).Equal(legacy.MacroProcess)

	risk := bundle.Risk
	gt.Value(t, risk.ActivityID).Equal(activity.ID)
	gt.Value(t, risk.Hazard).Equal("Ruido alto")
	gt.Value(t, risk.HazardousEvent).Equal("Exposicao continua")
	gt.Value(t, risk.PotentialDamage).Equal("Perda auditiva")
	gt.Value(t, risk.AgentCategory).Equal(types.AgentFisico)
	gt.Value(t, risk.Condition).Equal("habitual")
	gt.Value(t, risk.ExposedCount).Equal(12)
	gt.Value(t, risk.ExistingControls).Equal("Protetor auricular")
	gt.Bool(t, risk.LegacyMigrated).True()
}

func TestMigrateEmptyRecord(t *testing.T) {
	bundle := legacy.Migrate(legacy.Record{})

	env := bundle.Environment
	gt.Value(t, env.CompanyID).Equal(types.CompanyID(legacy.LegacyCompanyID))
	gt.Value(t, env.Unit).Equal(legacy.DefaultUnit)
	gt.Value(t, env.Sector).Equal(legacy.DefaultSector)
	gt.Value(t, env.Name).Equal(legacy.EnvironmentName)

	activity := bundle.Activity
	gt.Value(t, activity.Role).Equal(legacy.DefaultCargo)
	gt.Value(t, activity.MacroProcess).Equal(legacy.MacroProcess)

	risk := bundle.Risk
	gt.Value(t, risk.Hazard).Equal(legacy.DefaultHazard)
	gt.Value(t, risk.HazardousEvent).Equal(legacy.DefaultHazardousEvent)
	gt.Value(t, risk.PotentialDamage).Equal(legacy.DefaultDamage)
	gt.Value(t, risk.AgentCategory).Equal(types.AgentAcidente)
	gt.Bool(t, risk.LegacyMigrated).True()
}

func TestMigrateFallbacks(t *testing.T) {
	t.Run("funcaoCargo used when cargo is empty", func(t *testing.T) {
		bundle := legacy.Migrate(legacy.Record{FuncaoCargo: "Soldador"})
		gt.Value(t, bundle.Activity.Role).Equal("Soldador")
	})

	t.Run("categoriaAgente used when riskType is empty", func(t *testing.T) {
		bundle := legacy.Migrate(legacy.Record{CategoriaAgente: "quimico"})
		gt.Value(t, bundle.Risk.AgentCategory).Equal(types.AgentQuimico)
	})

	t.Run("riskType wins over categoriaAgente", func(t *testing.T) {
		bundle := legacy.Migrate(legacy.Record{RiskType: "biologico", CategoriaAgente: "quimico"})
		gt.Value(t, bundle.Risk.AgentCategory).Equal(types.AgentBiologico)
	})

	t.Run("unknown category degrades to acidente", func(t *testing.T) {
		bundle := legacy.Migrate(legacy.Record{RiskType: "radioativo"})
		gt.Value(t, bundle.Risk.AgentCategory).Equal(types.AgentAcidente)
	})
}

func TestMigrateLinksAreUnique(t *testing.T) {
	first := legacy.Migrate(legacy.Record{})
	second := legacy.Migrate(legacy.Record{})

	gt.Bool(t, first.Environment.ID != second.Environment.ID).True()
	gt.Bool(t, first.Activity.ID != second.Activity.ID).True()
	gt.Bool(t, first.Risk.ID != second.Risk.ID).True()
}
