package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Columns  ColumnConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Agenda   AgendaConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	AllowOrigins []string
}

const (
	SourceSheet    = "sheet"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type SourceConfig struct {
	Kind      string
	CSVURL    string
	SheetID   string
	SheetName string
	FilePath  string
	Timeout   time.Duration
}

// ColumnConfig 來源表格的欄位名稱，預設為表單產生的法文標題
type ColumnConfig struct {
	Name        string
	Organizer   string
	Category    string
	Date        string
	PostalCode  string
	Description string
	Media       string
	DateLayout  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Table    string
}

type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

type AgendaConfig struct {
	SiteTitle           string
	Timezone            string
	TitleLimit          int
	RefreshCron         string
	PreserveSourceOrder bool
	StylePath           string
	SubmitFormURL       string
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Source:   GetSourceConfig(),
		Columns:  GetColumnConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Agenda:   GetAgendaConfig(),
		Log:      LogConfig{Level: getEnv("LOG_LEVEL", "info")},
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := GetDatabaseConfig()
	testConfig.Host = "localhost"
	testConfig.Port = "5433" // 測試 DB 用 5433 port
	testConfig.User = "postgres"
	testConfig.Password = "postgres"
	testConfig.DBName = "test_db"
	testConfig.SSLMode = "disable"
	testConfig.Table = "agenda_rows"

	testRedisConfig := RedisConfig{
		Enabled:     true,
		Host:        "localhost",
		Port:        "6380", // 測試 Redis 用 6380 port
		Password:    "",
		DB:          1,
		SnapshotTTL: time.Minute,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", Mode: "test"},
		Source:   SourceConfig{Kind: SourceFile, Timeout: 5 * time.Second},
		Columns:  DefaultColumns(),
		Database: testConfig,
		Redis:    testRedisConfig,
		Agenda:   GetAgendaConfig(),
		Log:      LogConfig{Level: "debug"},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:         getEnv("PORT", "8080"),
		Mode:         getEnv("GIN_MODE", "release"),
		AllowOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

func GetSourceConfig() SourceConfig {
	return SourceConfig{
		Kind:      getEnv("SOURCE_KIND", SourceSheet),
		CSVURL:    getEnv("SHEET_CSV_URL", ""),
		SheetID:   getEnv("SHEET_ID", ""),
		SheetName: getEnv("SHEET_NAME", "db"),
		FilePath:  getEnv("SOURCE_FILE", "data/agenda.csv"),
		Timeout:   getEnvDuration("SOURCE_TIMEOUT", 15*time.Second),
	}
}

func DefaultColumns() ColumnConfig {
	return ColumnConfig{
		Name:        "Nom de l'évènement",
		Organizer:   "Nom de l'entreprise ou de l'association",
		Category:    "Catégorie de l'évènement",
		Date:        "Date de l'événement",
		PostalCode:  "Code postal de l'évènement",
		Description: "Description de l'évènement",
		Media:       "Média(s)",
		DateLayout:  "2/1/2006",
	}
}

func GetColumnConfig() ColumnConfig {
	d := DefaultColumns()
	return ColumnConfig{
		Name:        getEnv("COL_NAME", d.Name),
		Organizer:   getEnv("COL_ORGANIZER", d.Organizer),
		Category:    getEnv("COL_CATEGORY", d.Category),
		Date:        getEnv("COL_DATE", d.Date),
		PostalCode:  getEnv("COL_POSTAL_CODE", d.PostalCode),
		Description: getEnv("COL_DESCRIPTION", d.Description),
		Media:       getEnv("COL_MEDIA", d.Media),
		DateLayout:  getEnv("DATE_LAYOUT", d.DateLayout),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		Table:    getEnv("DB_TABLE", "agenda_rows"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Enabled:     getEnvBool("REDIS_ENABLED", false),
		Host:        getEnv("REDIS_HOST", "localhost"),
		Port:        getEnv("REDIS_PORT", "6379"),
		Password:    getEnv("REDIS_PASSWORD", ""),
		DB:          db,
		SnapshotTTL: getEnvDuration("SNAPSHOT_TTL", 5*time.Minute),
	}
}

func GetAgendaConfig() AgendaConfig {
	limit, err := strconv.Atoi(getEnv("TITLE_LIMIT", "30"))
	if err != nil || limit <= 0 {
		limit = 30
	}

	return AgendaConfig{
		SiteTitle:           getEnv("SITE_TITLE", "K.E.R - Agenda des événements"),
		Timezone:            getEnv("TIMEZONE", "Europe/Paris"),
		TitleLimit:          limit,
		RefreshCron:         getEnv("REFRESH_CRON", "*/5 * * * *"),
		PreserveSourceOrder: getEnvBool("UPCOMING_PRESERVE_ORDER", false),
		StylePath:           getEnv("STYLE_PATH", ""),
		SubmitFormURL:       getEnv("SUBMIT_FORM_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
