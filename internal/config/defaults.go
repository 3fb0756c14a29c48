package config

import "time"

const (
	DefaultLogLevel       = "info"
	DefaultStoreDriver    = "redis"
	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "supportbot"
	DefaultSQLitePath     = "supportbot.db"
	DefaultTicketTTL      = 7 * 24 * time.Hour
	DefaultLocale         = "en_US"
)

// DefaultLanguages is used when the configuration file lists none.
var DefaultLanguages = []map[string]any{
	{"code": "en_US", "name": "English"},
	{"code": "pt_BR", "name": "Português"},
}

// DefaultTasks enables the housekeeping jobs every deployment needs.
var DefaultTasks = map[string]any{
	"ticket_cleanup":  map[string]any{"enabled": true, "schedule": "0 */30 * * * *"},
	"store_health":    map[string]any{"enabled": true, "schedule": "0 */5 * * * *"},
	"sql_maintenance": map[string]any{"enabled": false, "schedule": "0 0 4 * * *"},
}
