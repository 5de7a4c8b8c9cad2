package environment

import "strings"

// Environment names the deployment the service runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalises an APP_ENV style value. Short aliases (dev, stage, prod)
// are accepted; anything unrecognised is returned lower-cased as-is.
func Parse(s string) Environment {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	default:
		return Environment(s)
	}
}

func (e Environment) String() string {
	return string(e)
}
