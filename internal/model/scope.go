package model

// Scope carries the authenticated caller identity through the request.
// UserID always comes from the verified session token, never from any
// model-generated payload.
type Scope struct {
	UserID string
	Email  string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
