package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	jobsCmd.AddCommand(submitJobCmd)
	jobsCmd.AddCommand(getJobCmd)

	// Add flags
	submitJobCmd.Flags().StringP("url", "u", "", "URL to summarize")
	_ = submitJobCmd.MarkFlagRequired("url")

	getJobCmd.Flags().StringP("uuid", "i", "", "Job UUID to fetch")
	_ = getJobCmd.MarkFlagRequired("uuid")
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage summarization jobs",
}

var submitJobCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a URL for summarization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		url, _ := cmd.Flags().GetString("url")

		// Call the API client
		job, err := apiClient.SubmitJob(context.Background(), url)
		if err != nil && job.UUID == "" {
			return fmt.Errorf("error submitting job: %w", err)
		}

		// Pretty print the response; rejected jobs still carry a uuid
		// and the rejection message
		prettyJSON, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}

var getJobCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		uuid, _ := cmd.Flags().GetString("uuid")

		// Call the API client
		job, err := apiClient.GetJob(context.Background(), uuid)
		if err != nil {
			return fmt.Errorf("error fetching job: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}
