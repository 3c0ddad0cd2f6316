package quickbooks

// Config holds configuration for the QBXML gateway.
type Config struct {
	// Endpoint is the base URL of the QBXML remote-connector bridge.
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:8166"`
	// AppName is the application name registered with QuickBooks on connect.
	AppName string `mapstructure:"app_name" default:"qb-sync"`
	// CompanyFile is the QBW company file path; empty means the currently
	// open company file.
	CompanyFile string `mapstructure:"company_file" default:""`
	// QBXMLVersion is the qbxml processing-instruction version.
	QBXMLVersion string `mapstructure:"qbxml_version" default:"16.0"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheTTLSeconds is the customer index cache TTL; zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
