// Package legacy normalizes flat historical risk records into the
// current environment/activity/risk hierarchy.
package legacy

import (
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Placeholder labels for fields the legacy record does not carry.
// Migrated records are never assumed to map to a real physical
// environment, so the environment name is always the fixed label.
const (
	LegacyCompanyID       = "legacy"
	EnvironmentName       = "Ambiente migrado"
	DefaultUnit           = "Unidade migrada"
	DefaultSector         = "Setor migrado"
	DefaultCargo          = "Cargo migrado"
	ActivityName          = "Atividade migrada - modelo anterior"
	MacroProcess          = "migracao"
	DefaultHazard         = "Perigo nao informado"
	DefaultHazardousEvent = "Evento perigoso nao informado"
	DefaultDamage         = "Dano potencial nao informado"
)

// Record is an unstructured historical risk record. Every field is
// optional; the JSON keys follow the legacy flat schema.
type Record struct {
	EmpresaID           string `json:"empresaId"`
	Unidade             string `json:"unidade"`
	Setor               string `json:"setor"`
	TipoAmbiente        string `json:"tipoAmbiente"`
	Cargo               string `json:"cargo"`
	FuncaoCargo         string `json:"funcaoCargo"`
	Perigo              string `json:"perigo"`
	EventoPerigoso      string `json:"eventoPerigoso"`
	DanoPotencial       string `json:"danoPotencial"`
	RiskType            string `json:"riskType"`
	CategoriaAgente     string `json:"categoriaAgente"`
	Condicao            string `json:"condicao"`
	Expostos            int    `json:"expostos"`
	ControlesExistentes string `json:"controlesExistentes"`
}

// Bundle is a complete, insertable hierarchy produced from one legacy
// record. The risk points at the activity, which points at the
// environment.
type Bundle struct {
	Environment *model.Environment
	Activity    *model.Activity
	Risk        *model.Risk
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Migrate converts a legacy record into the current hierarchy with safe
// defaults. It never fails regardless of input shape: missing fields
// degrade to documented placeholders, trading fidelity for referential
// integrity of historical data.
func Migrate(rec Record) Bundle {
	env := &model.Environment{
		ID:        types.NewEnvironmentID(),
		CompanyID: types.CompanyID(fallback(rec.EmpresaID, LegacyCompanyID)),
		Unit:      fallback(rec.Unidade, DefaultUnit),
		Sector:    fallback(rec.Setor, DefaultSector),
		Name:      EnvironmentName,
		Type:      rec.TipoAmbiente,
		Status:    types.EnvironmentDraft,
	}

	activity := &model.Activity{
		ID:            types.NewActivityID(),
		EnvironmentID: env.ID,
		Name:          ActivityName,
		Role:          fallback(rec.Cargo, rec.FuncaoCargo, DefaultCargo),
		MacroProcess:  MacroProcess,
	}

	category := types.AgentCategory(fallback(rec.RiskType, rec.CategoriaAgente))
	if !category.IsValid() {
		category = types.AgentAcidente
	}

	risk := &model.Risk{
		ID:               types.NewRiskID(),
		ActivityID:       activity.ID,
		Hazard:           fallback(rec.Perigo, DefaultHazard),
		HazardousEvent:   fallback(rec.EventoPerigoso, DefaultHazardousEvent),
		PotentialDamage:  fallback(rec.DanoPotencial, DefaultDamage),
		AgentCategory:    category,
		Condition:        rec.Condicao,
		ExposedCount:     rec.Expostos,
		ExistingControls: rec.ControlesExistentes,
		LegacyMigrated:   true,
	}

	return Bundle{Environment: env, Activity: activity, Risk: risk}
}
