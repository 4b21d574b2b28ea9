package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iho/ledgerexplorer/internal/adapter/http/dto"
	"github.com/iho/ledgerexplorer/internal/adapter/http/handler"
)

var (
	baseURL string
	timeout time.Duration
)

// historyFlags are shared by the show and download commands.
type historyFlags struct {
	targetDate    string
	decimalPlaces int
	since         uint32
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "explorer-cli",
		Short:         "Ledger explorer CLI tool",
		Long:          `A command line interface for exporting address transaction histories from the ledger explorer API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger explorer API")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Address history operations",
	}
	historyCmd.AddCommand(showCmd(), downloadCmd())

	root.AddCommand(historyCmd, networksCmd())
	return root
}

func (f *historyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.targetDate, "target-date", "", "Only include transactions after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.decimalPlaces, "decimals", -1, "Fraction digits to show (server default when negative)")
	cmd.Flags().Uint32Var(&f.since, "since", 0, "Only list outputs booked after this unix timestamp")
}

func (f *historyFlags) request() (dto.HistoryRequest, error) {
	req := dto.HistoryRequest{TargetDate: f.targetDate, Since: f.since}
	if f.decimalPlaces >= 0 {
		if f.decimalPlaces > 255 {
			return req, fmt.Errorf("--decimals must be at most 255")
		}
		places := uint8(f.decimalPlaces)
		req.DecimalPlaces = &places
	}
	return req, nil
}

func showCmd() *cobra.Command {
	var (
		flags  historyFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show <network> <address>",
		Short: "Print the transaction history of an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			q := url.Values{}
			if req.TargetDate != "" {
				q.Set("target_date", req.TargetDate)
			}
			if req.DecimalPlaces != nil {
				q.Set("decimal_places", strconv.Itoa(int(*req.DecimalPlaces)))
			}
			if req.Since != 0 {
				q.Set("since", strconv.FormatUint(uint64(req.Since), 10))
			}

			endpoint := historyURL(args[0], args[1]) + "?" + q.Encode()
			resp, err := newHTTPClient().Get(endpoint)
			if err != nil {
				return fmt.Errorf("error making request: %w", err)
			}
			defer resp.Body.Close()

			body, err := readOK(resp)
			if err != nil {
				return err
			}

			var history dto.HistoryResponse
			if err := json.Unmarshal(body, &history); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, history)
			}
			return printHistory(out, &history)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	return cmd
}

func downloadCmd() *cobra.Command {
	var (
		flags  historyFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "download <network> <address>",
		Short: "Download the transaction history of an address as a zipped CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			payload, err := json.Marshal(req)
			if err != nil {
				return err
			}

			resp, err := newHTTPClient().Post(historyURL(args[0], args[1])+"/download", "application/json", bytes.NewReader(payload))
			if err != nil {
				return fmt.Errorf("error making request: %w", err)
			}
			defer resp.Body.Close()

			content, err := readOK(resp)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%s)\n", output, humanize.Bytes(uint64(len(content))))
			fmt.Fprintf(out, "Export ID: %s\n", resp.Header.Get(handler.HeaderExportID))
			if skipped := resp.Header.Get(handler.HeaderSkippedOutputs); skipped != "" && skipped != "0" {
				fmt.Fprintf(out, "Warning: %s outputs could not be resolved and were skipped\n", skipped)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "history.zip", "File to write the archive to")
	return cmd
}

func networksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks served by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newHTTPClient().Get(baseURL + "/api/v1/networks")
			if err != nil {
				return fmt.Errorf("error making request: %w", err)
			}
			defer resp.Body.Close()

			body, err := readOK(resp)
			if err != nil {
				return err
			}

			var networks []dto.NetworkResponse
			if err := json.Unmarshal(body, &networks); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLABEL\tTOKEN\tHISTORY EXPORT")
			for _, n := range networks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", n.Name, n.Label, n.Token.Unit, n.SupportsHistoryExport)
			}
			return w.Flush()
		},
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: timeout}
}

func historyURL(network, address string) string {
	return baseURL + "/api/v1/history/" + url.PathEscape(network) + "/" + url.PathEscape(address)
}

// readOK returns the response body, or an error carrying the API error message.
func readOK(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return nil, fmt.Errorf("request failed (status %d): %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
			}
			return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	return body, nil
}

func printHistory(out io.Writer, history *dto.HistoryResponse) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTRANSACTION\tBALANCE CHANGE")
	for _, r := range history.Records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Date, truncate(r.TransactionID, 20), r.BalanceChangeFormatted)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d transactions from %d outputs", len(history.Records), history.TotalOutputs)
	if history.SkippedOutputs > 0 {
		fmt.Fprintf(out, " (%d skipped)", history.SkippedOutputs)
	}
	fmt.Fprintln(out)
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
