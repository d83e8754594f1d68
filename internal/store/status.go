package store

import (
	"fmt"
	"io"

	"github.com/worthyretail/xray/schema"
)

// PrintStoreStatus prints result store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Submissions: %d\n", status.TotalSubmissions)
	_, _ = fmt.Fprintf(w, "Total Teams: %d\n", status.TotalTeams)
	if status.TotalSubmissions > 0 {
		_, _ = fmt.Fprintf(w, "Last Submission: %s\n", status.LastSubmission.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Submission: %s\n", status.OldestSubmission.Format("2006-01-02 15:04:05"))
	}
}
