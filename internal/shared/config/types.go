package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CarrierConfig holds the FedEx integration settings. Shipment and tracking
// calls use separately scoped OAuth credentials.
type CarrierConfig struct {
	Host               string               `mapstructure:"host"`
	TrackHost          string               `mapstructure:"track_host"`
	ClientID           string               `mapstructure:"client_id"`
	ClientSecret       string               `mapstructure:"client_secret"`
	TrackClientID      string               `mapstructure:"track_client_id"`
	TrackClientSecret  string               `mapstructure:"track_client_secret"`
	AccountNumber      string               `mapstructure:"account_number"`
	ServiceType        string               `mapstructure:"service_type"`
	PackagingType      string               `mapstructure:"packaging_type"`
	PickupType         string               `mapstructure:"pickup_type"`
	LabelStockType     string               `mapstructure:"label_stock_type"`
	RequestTimeoutSecs int                  `mapstructure:"request_timeout_secs"`
	Shipper            CarrierContactConfig `mapstructure:"shipper"`
}

// CarrierContactConfig is the configured return-shipping contact/address.
type CarrierContactConfig struct {
	PersonName  string `mapstructure:"person_name"`
	PhoneNumber string `mapstructure:"phone_number"`
	CompanyName string `mapstructure:"company_name"`
	Street      string `mapstructure:"street"`
	City        string `mapstructure:"city"`
	StateCode   string `mapstructure:"state_code"`
	PostalCode  string `mapstructure:"postal_code"`
	CountryCode string `mapstructure:"country_code"`
}

// ReportConfig controls county report rendering and storage.
type ReportConfig struct {
	OutputDir       string `mapstructure:"output_dir"`
	RenderBudgetMS  int    `mapstructure:"render_budget_ms"`
	NotifyRecipient string `mapstructure:"notify_recipient"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}
