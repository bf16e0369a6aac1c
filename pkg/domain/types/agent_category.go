package types

// AgentCategory represents the hazardous agent category of a risk,
// following the Brazilian GRO/PGR taxonomy.
type AgentCategory string

const (
	AgentFisico     AgentCategory = "fisico"
	AgentQuimico    AgentCategory = "quimico"
	AgentBiologico  AgentCategory = "biologico"
	AgentErgonomico AgentCategory = "ergonomico"
	AgentAcidente   AgentCategory = "acidente"
)

// AllAgentCategories returns all valid agent categories
func AllAgentCategories() []AgentCategory {
	return []AgentCategory{
		AgentFisico,
		AgentQuimico,
		AgentBiologico,
		AgentErgonomico,
		AgentAcidente,
	}
}

// IsValid checks if the agent category is valid
func (a AgentCategory) IsValid() bool {
	switch a {
	case AgentFisico, AgentQuimico, AgentBiologico, AgentErgonomico, AgentAcidente:
		return true
	default:
		return false
	}
}

// AllowsQuantitative reports whether instrument-measured exposure data may
// be recorded for this category. Ergonomic and accident risks have no
// measurable exposure agent.
func (a AgentCategory) AllowsQuantitative() bool {
	switch a {
	case AgentFisico, AgentQuimico, AgentBiologico:
		return true
	default:
		return false
	}
}

// String returns the string representation of the agent category
func (a AgentCategory) String() string {
	return string(a)
}
