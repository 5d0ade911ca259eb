package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/jobapi"
	"github.com/jonathan/resume-match/internal/types"
)

var (
	analyzeJobID   int
	analyzeJobFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume.pdf]",
	Short: "Analyze a resume against a job posting",
	Long:  `Analyze extracts text from a resume PDF, scores it against a job posting, and prints the analysis as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeJobID, "job-id", 0, "Job ID to fetch from the job board API")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to a job posting JSON file")
	analyzeCmd.MarkFlagsMutuallyExclusive("job-id", "job")
	analyzeCmd.MarkFlagsOneRequired("job-id", "job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	eng, client, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	job, err := loadJob(cmd, cfg.JobAPIBaseURL, cfg.JobAPIKey)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	text, err := eng.ExtractText(data)
	if err != nil {
		return err
	}

	result, err := eng.Analyze(ctx, text, job)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadJob resolves the job posting either from a local JSON file or from the
// job board API.
func loadJob(cmd *cobra.Command, baseURL, apiKey string) (types.JobData, error) {
	if analyzeJobFile != "" {
		data, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return types.JobData{}, fmt.Errorf("failed to read job file: %w", err)
		}
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return types.JobData{}, fmt.Errorf("failed to parse job JSON: %w", err)
		}
		return types.JobDataFromMap(raw), nil
	}

	if baseURL == "" {
		return types.JobData{}, fmt.Errorf("job API base URL is required (job_api_base_url or JOB_API_BASE_URL)")
	}
	return jobapi.New(baseURL, apiKey).GetJobDetails(cmd.Context(), analyzeJobID)
}
