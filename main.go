// Command xray scores the Worthy Retail X-Ray leadership assessment.
package main

import (
	"fmt"
	"os"

	"github.com/worthyretail/xray/cmd"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/store"
)

func main() {
	err := cmd.Execute()

	store.CloseStore()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	contract.SyncLogger()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
