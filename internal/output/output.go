package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/report"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/service"
)

const waitlisted = "WAITLIST"

// Write renders a ranking result in the given format (config.FormatJSON or
// config.FormatTable).
func Write(w io.Writer, format string, res service.Result) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, res)
	case config.FormatTable:
		return writeTable(w, res)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, res service.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func writeTable(w io.Writer, res service.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "RANK\tID\tNAME\tTOTAL\tPERCENT\tPROGRAM\tSTATUS\n")
	for _, r := range res.Ranked {
		program, status := r.ProgramName(), "ADMITTED"
		if !r.Admitted() {
			program, status = "-", waitlisted
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Rank, r.ID, r.FullName(),
			formatScore(r.TotalScore),
			formatScore(report.Percentage(r.TotalScore, res.Summary.TotalMaxScore)),
			program, status,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nstrategy %s, run %s: %d admitted, %d wait-listed\n",
		res.Strategy, res.RunID, res.Summary.Admitted, res.Summary.Waitlisted)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PROGRAM\tQUOTA\tADMITTED\tFILL%%\tCUTOFF\tFIRST CHOICE\n")
	for _, p := range res.Summary.Programs {
		cutoff := "-"
		if p.Cutoff != nil {
			cutoff = formatScore(*p.Cutoff)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\n",
			p.Name, p.Quota, p.Admitted, formatScore(p.FillPercent), cutoff, p.FirstChoice)
	}
	return tw.Flush()
}

// formatScore drops trailing zeros: 85 -> "85", 53.3 -> "53.3".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
