package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title                      Hospital Admin API
// @version                    1.0
// @description                CRUD over the hospital schema plus cookie/bearer session login.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:           "hospital-api",
		Short:         "Hospital administration REST API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
