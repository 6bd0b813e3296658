// cmd/agent/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/statuskite/statuskite/pkg/agent"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "statuskite-agent",
		Short: "statuskite push agent",
		Long: `statuskite-agent collects CPU, memory, disk and network usage
from this host and reports it to a statuskite server.`,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.statuskite-agent.yaml)")
	root.PersistentFlags().String("server", "", "server base URL")
	root.PersistentFlags().String("token", "", "agent token")
	root.PersistentFlags().String("name", "", "agent display name (defaults to hostname)")
	root.PersistentFlags().Duration("interval", 60*time.Second, "report interval")

	for _, flag := range []string{"server", "token", "name", "interval"} {
		if err := viper.BindPFlag(flag, root.PersistentFlags().Lookup(flag)); err != nil {
			log.Fatalf("Failed to bind flag %s: %v", flag, err)
		}
	}

	cobra.OnInitialize(func() { initConfig(cfgFile) })

	root.AddCommand(startCmd(), versionCmd())

	return root
}

func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".statuskite-agent")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("STATUSKITE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		log.Printf("Warning: failed to read config file: %v", err)
	}
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start collecting and reporting",
		RunE: func(*cobra.Command, []string) error {
			serverURL := viper.GetString("server")
			token := viper.GetString("token")
			name := viper.GetString("name")
			interval := viper.GetDuration("interval")

			if serverURL == "" {
				return fmt.Errorf("server URL is required (--server or STATUSKITE_SERVER)")
			}

			if token == "" {
				return fmt.Errorf("agent token is required (--token or STATUSKITE_TOKEN)")
			}

			if interval <= 0 {
				interval = 60 * time.Second
			}

			log.Printf("Starting statuskite agent, reporting to %s every %v", serverURL, interval)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				sig := <-sigChan
				log.Printf("Received signal %v, stopping", sig)
				cancel()
			}()

			a := agent.New(agent.NewCollector(), agent.NewReporter(serverURL, token, name), interval)

			if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the agent version",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("statuskite-agent %s\n", version)
		},
	}
}
