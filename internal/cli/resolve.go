package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depsolve/internal/app"
)

type resolveOptions struct {
	Repository      string
	InitialState    string
	Constraints     string
	OutputDir       string
	InstallWeight   int
	UninstallWeight int
	Timeout         time.Duration
	MaxRetries      int
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve constraints against a repository and emit a transition plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Repository, "repository", "", "Repository document path")
	cmd.Flags().StringVar(&opts.InitialState, "initial-state", "", "Initial state document path")
	cmd.Flags().StringVar(&opts.Constraints, "constraints", "", "Constraints document path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().IntVar(&opts.InstallWeight, "install-weight", 0, "Cost multiplier applied to size for new installs (0 = default)")
	cmd.Flags().IntVar(&opts.UninstallWeight, "uninstall-weight", 0, "Flat cost penalty per removal (0 = default)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "Wall-clock bound on a single optimizer invocation")
	cmd.Flags().IntVar(&opts.MaxRetries, "max-retries", 8, "Cycle-escape re-solve attempt cap")

	_ = viper.BindPFlag("repository", cmd.Flags().Lookup("repository"))
	_ = viper.BindPFlag("initial_state", cmd.Flags().Lookup("initial-state"))
	_ = viper.BindPFlag("constraints", cmd.Flags().Lookup("constraints"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("install_weight", cmd.Flags().Lookup("install-weight"))
	_ = viper.BindPFlag("uninstall_weight", cmd.Flags().Lookup("uninstall-weight"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("max_retries", cmd.Flags().Lookup("max-retries"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RepositoryPath:   resolveString(cmd, opts.Repository, "repository", "repository"),
		InitialStatePath: resolveString(cmd, opts.InitialState, "initial_state", "initial-state"),
		ConstraintsPath:  resolveString(cmd, opts.Constraints, "constraints", "constraints"),
		OutputDir:        resolveString(cmd, opts.OutputDir, "output", "output"),
		InstallWeight:    resolveInt(cmd, opts.InstallWeight, "install_weight", "install-weight"),
		UninstallWeight:  resolveInt(cmd, opts.UninstallWeight, "uninstall_weight", "uninstall-weight"),
		Timeout:          resolveDuration(cmd, opts.Timeout, "timeout", "timeout"),
		MaxRetries:       resolveInt(cmd, opts.MaxRetries, "max_retries", "max-retries"),
	})
	if err != nil {
		return err
	}
	for _, command := range result.Plan {
		fmt.Println(command.String())
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveDuration(cmd *cobra.Command, value time.Duration, key string, flagName string) time.Duration {
	if cmd == nil {
		if value != 0 {
			return value
		}
		return viper.GetDuration(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetDuration(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		if value != 0 {
			return value
		}
		return viper.GetInt(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
