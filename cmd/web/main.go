package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"calcweb/internal/web"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "calcweb",
	Short:        "Calculator webpage server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return web.Run(configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
