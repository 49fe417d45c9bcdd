package cmd

import (
	"context"

	"github.com/PolarWolf314/shush/internal/configs"
	"github.com/PolarWolf314/shush/internal/environment"
	"github.com/PolarWolf314/shush/internal/kms"
	logger "github.com/PolarWolf314/shush/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	debug       bool
	configPath  string
	region      string
	profile     string
	endpointURL string
	Logger      logger.Logger
)

// newGateway builds the KMS gateway from the effective configuration.
// Tests swap it for a kms.Fake.
var newGateway = func(ctx context.Context) (kms.Gateway, error) {
	client, err := kms.New(ctx, kms.Config{
		Region:   configs.GlobalConfig.Region,
		Profile:  configs.GlobalConfig.Profile,
		Endpoint: configs.GlobalConfig.EndpointURL,
	})
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Using KMS in region %q", client.Region())
	return client, nil
}

// processEnvironment is the environment exec rewrites before starting the
// command.
var processEnvironment environment.Store = environment.OS{}

// NewRootCommand builds the shush command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shush",
		Short: "shush - encrypt secrets with AWS KMS and decrypt them into a command's environment",
		Long: `shush encrypts small secrets with an AWS KMS key and prints a text token
that is safe to store in configuration. At launch, shush exec decrypts every
environment variable carrying the prefix and starts your command with the
plaintext in place.

Examples:
  # Encrypt a secret
  shush encrypt --key alias/app "hunter2"

  # Decrypt it again
  shush decrypt "$TOKEN"

  # Run a service with KMS_ENCRYPTED_DB_PASSWORD decrypted into DB_PASSWORD
  shush exec -- ./server --port 8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $SHUSH_CONFIG or <user config dir>/shush/config.toml)")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region of the KMS key")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "AWS shared config profile")
	rootCmd.PersistentFlags().StringVar(&endpointURL, "endpoint-url", "", "override the KMS endpoint")

	rootCmd.AddCommand(newEncryptCommand())
	rootCmd.AddCommand(newDecryptCommand())
	rootCmd.AddCommand(newExecCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup initializes the logger and the effective configuration. Explicit
// flags win over the config file.
func setup(cmd *cobra.Command, args []string) error {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
		Writer:  cmd.ErrOrStderr(),
	}
	Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)

	path := configPath
	if path == "" {
		path = configs.DefaultConfigPath()
	}
	Logger.Debugf("Loading config from %q", path)

	config, err := configs.LoadConfig(path)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("region") {
		config.Region = region
	}
	if flags.Changed("profile") {
		config.Profile = profile
	}
	if flags.Changed("endpoint-url") {
		config.EndpointURL = endpointURL
	}

	configs.GlobalConfig = config
	Logger.Debugf("Effective config: region=%q profile=%q endpoint=%q prefix=%q no_padding=%t",
		config.Region, config.Profile, config.EndpointURL, config.EffectivePrefix(), config.NoPadding)

	return nil
}

// effectiveConfigPath is the file config init writes and config show reads.
func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return configs.DefaultConfigPath()
}

// noPadding resolves --no_padding against the config file.
func noPadding(cmd *cobra.Command, flagValue bool) bool {
	if cmd.Flags().Changed("no_padding") {
		return flagValue
	}
	return configs.GlobalConfig.NoPadding
}
