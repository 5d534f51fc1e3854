// Package cli implements the mqttdash command-line interface.
//
// The package is organized around Cobra commands. Each command resolves
// settings (config file plus flag overrides), builds a metrics provider and
// hands off to the dashboard, chart or ui packages for the actual work.
//
// # Command Structure
//
// The root command opens the interactive dashboard:
//
//	mqttdash                  - Interactive dashboard (default)
//	mqttdash snapshot         - Print the dashboard once and exit
//	mqttdash series [metric]  - List metrics, or print one series
//	mqttdash init             - Create .mqttdash.yaml config
//	mqttdash version          - Print version information
//	mqttdash completion       - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --data, --no-color) are defined on the root
// command and available to all subcommands. --data overrides the config
// file's data.file so a sample file can be charted without writing config.
//
// # Logging
//
// The dashboard owns the terminal, so interactive runs log to a file only
// (log.file in config, or MQTTDASH_LOG_FILE). Other commands log to stderr.
package cli
