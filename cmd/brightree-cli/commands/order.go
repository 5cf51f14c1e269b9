package commands

import (
	"log/slog"

	"brightree-backend/lib/scrapers/brightree"

	"github.com/spf13/cobra"
)

var createOrderFlags brightree.SalesOrder

func init() {
	flags := createOrderCmd.Flags()
	flags.IntVar(&createOrderFlags.PatientID, "patient-id", 0, "Account number of the patient the order is for.")
	flags.StringVar(&createOrderFlags.OrderType, "type", "S", "Order classification code.")
	flags.StringVar(&createOrderFlags.ActualDate, "actual-date", "", "YYYY-MM-DD.")
	flags.StringVar(&createOrderFlags.ScheduledDate, "scheduled-date", "", "YYYY-MM-DD.")
	flags.StringVar(&createOrderFlags.ScheduledTime, "scheduled-time", "", "24-hour HH:MM.")
	flags.StringVar(&createOrderFlags.PONumber, "po-number", "", "")
	flags.StringVar(&createOrderFlags.Note, "note", "", "")
	createOrderCmd.MarkFlagRequired("patient-id")

	rootCmd.AddCommand(createOrderCmd)
}

var createOrderCmd = &cobra.Command{
	Use:   "create-order --patient-id <account number> [flags]",
	Short: "Creates a sales order for an existing patient.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()

		result, err := client.CreateSalesOrder(cmd.Context(), createOrderFlags)
		if err != nil {
			fatal("failed to create sales order", err)
		}
		if result.Message != "" {
			slog.Warn(result.Message)
			return
		}
		slog.Info("sales order created", "key", result.OrderKey, "url", result.URL)
	},
}
