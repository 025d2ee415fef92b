package validator

import (
	"github.com/avkozlov/analyzer-backend/internal/config"
)

// Validator checks incoming requests against configured limits.
type Validator struct {
	cfg config.LimitsConfig
}

func New(cfg config.LimitsConfig) *Validator {
	return &Validator{cfg: cfg}
}
