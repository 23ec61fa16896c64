package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind          string
	port          int
	redisAddr     string
	redisPassword string
	redisDB       int
	gameMode      string
	prizeCutoff   int
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.redisAddr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}
	if c.prizeCutoff < 0 {
		return fmt.Errorf("invalid prize cutoff: %d", c.prizeCutoff)
	}
	return nil
}

func (c *Config) listenAddr() string {
	return fmt.Sprintf("%s:%d", c.bind, c.port)
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SANTASWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "santaswap",
		Short:         "A secret santa coordinator with identity guessing and a star-game vote.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SANTASWAP_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: SANTASWAP_PORT)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: SANTASWAP_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: SANTASWAP_REDIS_PASSWORD)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: SANTASWAP_REDIS_DB)")
	fs.StringVar(&cfg.gameMode, "game-mode", "token", "default game mode, classic or token (env: SANTASWAP_GAME_MODE)")
	fs.IntVar(&cfg.prizeCutoff, "prize-cutoff", 0, "speed winners who take a prize, 0 for default (env: SANTASWAP_PRIZE_CUTOFF)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}
