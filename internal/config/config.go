package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The booking state itself is in-memory and needs
// no configuration; what is configured here is the HTTP surface, token
// signing and the optional collaborators (AI, broker, audit database).
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    Port           string // HTTP port to listen on
    JWTSecret      string // secret used to sign JWTs
    AccessTTLMin   int    // access token time-to-live in minutes
    RefreshTTLDays int    // refresh token time-to-live in days
    BcryptCost     int    // bcrypt cost for password hashing

    // GeminiAPIKey enables the AI conflict-analysis and auto-fill features.
    // Empty disables both; the rest of the service works without them.
    GeminiAPIKey string
    GeminiModel  string

    // Audit database (optional).  When AuditDSNConfigured() is false the
    // decision audit trail is disabled.
    AuditDBUser string
    AuditDBPass string
    AuditDBHost string
    AuditDBPort string
    AuditDBName string
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),
        Port:           must("APP_PORT"),
        JWTSecret:      must("JWT_SECRET"),
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
        RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
        BcryptCost:     mustInt("BCRYPT_COST"),
        GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
        GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.5-flash"),
        AuditDBUser:    os.Getenv("AUDIT_DB_USER"),
        AuditDBPass:    os.Getenv("AUDIT_DB_PASS"),
        AuditDBHost:    os.Getenv("AUDIT_DB_HOST"),
        AuditDBPort:    getenv("AUDIT_DB_PORT", "3306"),
        AuditDBName:    os.Getenv("AUDIT_DB_NAME"),
    }
}

// AuditDSNConfigured reports whether enough audit-database variables are
// set to open a connection.
func (c Config) AuditDSNConfigured() bool {
    return c.AuditDBUser != "" && c.AuditDBHost != "" && c.AuditDBName != ""
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
