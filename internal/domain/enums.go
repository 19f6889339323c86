package domain

type RiskLevel string

const (
	RiskSafe    RiskLevel = "SAFE"
	RiskWarning RiskLevel = "WARNING"
	RiskDanger  RiskLevel = "DANGER"
)

// ValidRiskLevels is the canonical set of accepted risk level strings.
var ValidRiskLevels = map[string]bool{
	"SAFE": true, "WARNING": true, "DANGER": true,
}

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)
