package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"brightree-backend/lib/scrapers/brightree"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var createPatientFlags brightree.Patient

func init() {
	flags := createPatientCmd.Flags()
	flags.IntVar(&createPatientFlags.PatientID, "id", 0, "Account number of an existing patient; 0 creates a new record.")
	flags.StringVar(&createPatientFlags.FirstName, "first-name", "", "")
	flags.StringVar(&createPatientFlags.LastName, "last-name", "", "")
	flags.StringVar(&createPatientFlags.MiddleName, "middle-name", "", "")
	flags.StringVar(&createPatientFlags.PreferredName, "preferred-name", "", "")
	flags.StringVar(&createPatientFlags.Suffix, "suffix", "", "")
	flags.StringVar(&createPatientFlags.Email, "email", "", "")
	flags.StringVar(&createPatientFlags.DateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD.")
	flags.StringVar(&createPatientFlags.SSN, "ssn", "", "")
	flags.StringVar(&createPatientFlags.HomePhone, "home-phone", "", "")
	flags.StringVar(&createPatientFlags.MobilePhone, "mobile-phone", "", "")
	flags.StringVar(&createPatientFlags.Fax, "fax", "", "")
	createPatientCmd.MarkFlagRequired("first-name")
	createPatientCmd.MarkFlagRequired("last-name")

	rootCmd.AddCommand(createPatientCmd)
	rootCmd.AddCommand(searchPatientCmd)
}

var createPatientCmd = &cobra.Command{
	Use:   "create-patient --first-name <name> --last-name <name> [flags]",
	Short: "Creates or updates a patient record through the personal info page.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()

		result, err := client.CreateOrUpdatePatient(cmd.Context(), createPatientFlags)
		if err != nil {
			fatal("failed to save patient", err)
		}
		if result.Message != "" {
			slog.Warn(result.Message)
			return
		}
		slog.Info("patient saved", "key", result.PatientKey, "url", result.URL)
	},
}

var searchPatientCmd = &cobra.Command{
	Use:   "search-patient <account number>",
	Short: "Prints the summary page of a patient grouped by section.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		patientID, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("account number must be an integer", err)
		}
		client := createClient()

		result, err := client.SearchPatient(cmd.Context(), patientID)
		if err != nil {
			fatal("failed to search patient", err)
		}
		if result.Message != "" {
			slog.Warn(result.Message)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Section", "Field", "Value"})
		for section, fields := range result.Summary {
			for label, value := range fields {
				t.AppendRow(table.Row{section, label, value})
			}
		}
		t.SortBy([]table.SortBy{
			{Name: "Section", Mode: table.Asc},
			{Name: "Field", Mode: table.Asc},
		})
		t.Render()
		fmt.Println()
	},
}
