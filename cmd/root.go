package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lumos-Labs-HQ/lexseed/internal/config"
)

var (
	cfgFile string
	Version = "0.3.0"

	// configErr holds a config file that exists but could not be read.
	configErr error
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════╗",
		"║   ██╗     ███████╗██╗  ██╗███████╗███████╗███████╗██████╗ ║",
		"║   ██║     ██╔════╝╚██╗██╔╝██╔════╝██╔════╝██╔════╝██╔══██╗║",
		"║   ██║     █████╗   ╚███╔╝ ███████╗█████╗  █████╗  ██║  ██║║",
		"║   ██║     ██╔══╝   ██╔██╗ ╚════██║██╔══╝  ██╔══╝  ██║  ██║║",
		"║   ███████╗███████╗██╔╝ ██╗███████║███████╗███████╗██████╔╝║",
		"║   ╚══════╝╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═════╝ ║",
		"║                                                          ║",
		"║          ⚖️  Demo data for multi-tenant law firms          ║",
		"╚══════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "lexseed",
	Short: "Seed a legal practice management database with demo data",
	Long: `
LexSeed populates an empty legal practice management database with a
coherent demonstration dataset: one law firm tenant, an admin, a lawyer,
a paralegal and a client login, plus clients, cases, tasks, hearings,
invoices, time entries, expenses and client communications.

Running it twice is safe: if any demo user already exists, nothing is written.

Database Support:
- PostgreSQL
- MySQL
- SQLite (embedded databases)`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("LexSeed CLI version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.Red("❌ %v", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lexseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(config.DefaultConfigName)
	}

	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover every setting.
	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("failed to read config: %w", err)
		}
	}
}
