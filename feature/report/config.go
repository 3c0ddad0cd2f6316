package report

// Config holds configuration for report output.
type Config struct {
	// Path is the JSON report output path for CLI runs.
	Path string `mapstructure:"path" default:"customer_report.json"`
	// Archive enables uploading report documents to object storage.
	Archive bool `mapstructure:"archive" default:"false"`
	// HistoryLimit caps the number of runs returned by the list endpoint.
	HistoryLimit int `mapstructure:"history_limit" default:"50"`
}
