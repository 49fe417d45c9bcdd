// Package configs manages the optional shush config file.
//
// Configuration is stored in TOML format. The file lives at
// $XDG_CONFIG_HOME/shush/config.toml (the platform user config directory)
// unless SHUSH_CONFIG or --config points elsewhere:
//
//	region = "eu-west-1"
//	profile = "prod"
//	endpoint_url = "http://localhost:4566"
//	prefix = "KMS_ENCRYPTED_"
//	no_padding = false
//	audit_log = "/var/log/shush/audit.jsonl"
//
// A missing file is the same as an empty one. Unknown keys are rejected.
//
// # Precedence
//
// Command line flags win over the file, which wins over built-in defaults.
// AWS credentials are never stored here: they come from the ambient AWS
// configuration chain.
//
// # Settings
//
// UserShushSettings holds the user config directory and OS username and is
// initialized at startup. GlobalConfig holds the effective configuration of
// the running command and is set by the root command before any subcommand
// runs.
package configs
