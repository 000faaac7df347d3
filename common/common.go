package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the google cloud project used for request logging.
	ProjectID string

	GAEService string

	GAEVersion string

	Env string

	Domain string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "cafe-com-vendas"
	devProject        = "cafe-com-vendas-dev"
)

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", devProject)

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "checkout")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if ProjectID == productionProject && !IsLocalhost {
		Env = "production"
		Production = true
		Domain = "cafecomvendas.com"
	} else {
		Env = "development"
		Production = false
		Domain = "dev.cafecomvendas.com"
	}
}

// GetEnv returns the value of the environment variable named by key,
// or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
