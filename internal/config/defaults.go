package config

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize: 20,
		ExcludeNames: []string{
			"master_sequence.pdf",
			"merged.pdf",
			"merged_for_printing.pdf",
		},
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        "8080",
			MaxUploadMB: 100,
		},
		IPSync: IPSyncConfig{
			Endpoint: "",
			Attempts: 5,
		},
	}
}
