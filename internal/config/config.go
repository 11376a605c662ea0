package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Defaults de sincronização. O teto de páginas garante término da paginação
// mesmo quando a API remota ecoa o mesmo cursor indefinidamente.
const (
	DefaultMaxPagesPerResource       = 20
	DefaultFetchConcurrency          = 4
	DefaultPerformanceLookbackMonths = 6
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	Sync        Sync        `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	ProfileSync ProfileSync `mapstructure:",squash"`
	AdminConfig AdminConfig `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

// Google reúne as credenciais de client OAuth e as URLs das APIs da
// plataforma de perfis de negócio
type Google struct {
	ClientID        string `mapstructure:"google_client_id"`
	ClientSecret    string `mapstructure:"google_client_secret"`
	RedirectURI     string `mapstructure:"google_redirect_uri"`
	AuthURL         string `mapstructure:"google_auth_url"`
	TokenURL        string `mapstructure:"google_token_url"`
	Scopes          string `mapstructure:"google_scopes"`
	BusinessAPIURL  string `mapstructure:"google_business_api_url"`
	BusinessInfoURL string `mapstructure:"google_business_info_url"`
	QandaURL        string `mapstructure:"google_qanda_url"`
	PerformanceURL  string `mapstructure:"google_performance_url"`
	AccountsURL     string `mapstructure:"google_accounts_url"`
	PlacesURL       string `mapstructure:"google_places_url"`
	PlacesAPIKey    string `mapstructure:"google_places_api_key"`
}

type Sync struct {
	MaxPagesPerResource       int `mapstructure:"sync_max_pages_per_resource"`
	FetchConcurrency          int `mapstructure:"sync_fetch_concurrency"`
	ReviewsPageSize           int `mapstructure:"sync_reviews_page_size"`
	MediaPageSize             int `mapstructure:"sync_media_page_size"`
	PostsPageSize             int `mapstructure:"sync_posts_page_size"`
	ProductsPageSize          int `mapstructure:"sync_products_page_size"`
	ServicesPageSize          int `mapstructure:"sync_services_page_size"`
	QuestionsPageSize         int `mapstructure:"sync_questions_page_size"`
	PerformanceLookbackMonths int `mapstructure:"sync_performance_lookback_months"`
}

type Cache struct {
	Enabled   bool          `mapstructure:"cache_enabled"`
	RedisAddr string        `mapstructure:"cache_redis_addr"`
	RedisDB   int           `mapstructure:"cache_redis_db"`
	TTL       time.Duration `mapstructure:"cache_ttl"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// ProfileSync configura a re-sincronização noturna em background de todos os
// negócios conectados. Desabilitada por padrão: a sincronização principal é
// disparada sob demanda, por requisição.
type ProfileSync struct {
	CronSchedule      string `mapstructure:"profile_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"profile_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"profile_sync_enabled"`
}

// AdminConfig aponta para o serviço administrativo de configuração de onde as
// credenciais de client OAuth são carregadas em produção
type AdminConfig struct {
	APIKey    string `mapstructure:"admin_config_api_key"`
	ServiceID string `mapstructure:"admin_config_service_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/profile_health")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id") // ONLY LOCAL
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:8000/v1/oauth/google/callback")
	viper.SetDefault("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_SCOPES", "https://www.googleapis.com/auth/business.manage")
	viper.SetDefault("GOOGLE_BUSINESS_API_URL", "https://mybusiness.googleapis.com/v4")
	viper.SetDefault("GOOGLE_BUSINESS_INFO_URL", "https://mybusinessbusinessinformation.googleapis.com/v1")
	viper.SetDefault("GOOGLE_QANDA_URL", "https://mybusinessqanda.googleapis.com/v1")
	viper.SetDefault("GOOGLE_PERFORMANCE_URL", "https://businessprofileperformance.googleapis.com/v1")
	viper.SetDefault("GOOGLE_ACCOUNTS_URL", "https://mybusinessaccountmanagement.googleapis.com/v1")
	viper.SetDefault("GOOGLE_PLACES_URL", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("GOOGLE_PLACES_API_KEY", "")

	// Defaults para busca paginada por recurso
	viper.SetDefault("SYNC_MAX_PAGES_PER_RESOURCE", DefaultMaxPagesPerResource)
	viper.SetDefault("SYNC_FETCH_CONCURRENCY", DefaultFetchConcurrency)
	viper.SetDefault("SYNC_REVIEWS_PAGE_SIZE", 50)
	viper.SetDefault("SYNC_MEDIA_PAGE_SIZE", 100)
	viper.SetDefault("SYNC_POSTS_PAGE_SIZE", 100)
	viper.SetDefault("SYNC_PRODUCTS_PAGE_SIZE", 100)
	viper.SetDefault("SYNC_SERVICES_PAGE_SIZE", 100)
	viper.SetDefault("SYNC_QUESTIONS_PAGE_SIZE", 50)
	viper.SetDefault("SYNC_PERFORMANCE_LOOKBACK_MONTHS", DefaultPerformanceLookbackMonths)

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("CACHE_REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "15m")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para re-sincronização de perfis
	viper.SetDefault("PROFILE_SYNC_CRON", "0 3 * * *")     // Todos os dias às 3h da manhã
	viper.SetDefault("PROFILE_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 jobs concorrentes
	viper.SetDefault("PROFILE_SYNC_ENABLED", false)         // Habilitar re-sincronização noturna

	viper.SetDefault("ADMIN_CONFIG_API_KEY", "")
	viper.SetDefault("ADMIN_CONFIG_SERVICE_ID", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Em produção as credenciais de client OAuth vivem no serviço
	// administrativo de configuração; as variáveis de ambiente servem de
	// fallback local
	if config.AdminConfig.ServiceID != "" {
		adminClient := NewAdminClient(config)
		secretsByCode, err := adminClient.ListSecrets(config.AdminConfig.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do serviço administrativo:", err)
			return nil, err
		}

		if clientID, ok := secretsByCode["google_client_id"]; ok {
			config.Google.ClientID = clientID
		}
		if clientSecret, ok := secretsByCode["google_client_secret"]; ok {
			config.Google.ClientSecret = clientSecret
		}
		if placesKey, ok := secretsByCode["google_places_api_key"]; ok && config.Google.PlacesAPIKey == "" {
			config.Google.PlacesAPIKey = placesKey
		}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
