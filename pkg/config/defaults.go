package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "beautycabin"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	DefaultJWTTTL    = 24 * time.Hour
	DefaultJWTIssuer = "beautycabin"
	MinJWTSecretLen  = 32

	DefaultBcryptCost = 10

	DefaultDenylistSweepInterval = 10 * time.Minute

	DefaultKafkaAppointmentsTopic = "appointments.events"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// DefaultCORSAllowedOrigins are the booking and admin frontends.
var DefaultCORSAllowedOrigins = []string{
	"https://newbeauty.onrender.com",
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:5175",
	"https://beautycabin-2.onrender.com",
}
