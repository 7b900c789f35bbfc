package model

// Scope identifies the authenticated caller.
type Scope struct {
	UserID string
	Email  string
	Role   string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
