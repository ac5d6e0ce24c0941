package config

import (
	"os"
	"time"
)

var (
	Port string

	AdminToken        string
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         []byte
	JWTExpiration     time.Duration

	CrunchbaseAPIKey string
	SwarmAPIKey      string
)

// Load reads configuration from the environment. The database path is read
// directly by the sqlite package; everything else lands here.
func Load() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8000"
	}

	AdminToken = os.Getenv("ADMIN_TOKEN")
	AdminEmail = os.Getenv("ADMIN_EMAIL")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	JWTSecret = []byte(os.Getenv("JWT_SECRET_KEY"))
	JWTExpiration = 8 * time.Hour

	CrunchbaseAPIKey = os.Getenv("CRUNCHBASE_API_KEY")
	SwarmAPIKey = os.Getenv("SWARM_API_KEY")
}
