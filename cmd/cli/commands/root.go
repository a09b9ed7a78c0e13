package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pagebrief/pagebrief/pkg/api/v1/client"
)

// flag names
const (
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "PAGEBRIEF_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	// Set a basic default for the flag. PersistentPreRunE handles the env var override.
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", client.DefaultBaseURL, "Address of the API server (env: PAGEBRIEF_SERVER_ADDRESS)")

	RootCmd.AddCommand(jobsCmd)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pagebrief",
	Short: "Pagebrief CLI - submit URLs for summarization and poll for results",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed(flagServerAddress) {
			if addr := os.Getenv(envServerAddress); addr != "" {
				serverAddress = addr
			}
		}
		return initClient()
	},
}
