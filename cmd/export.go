package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [year]",
	Short: "Print a yearly timesheet CSV to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], err)
		}
		year = y
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}

	text, err := rt.store.ReadTimesheet(year)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no timesheet for %d", year)
	}
	fmt.Println(text)
	return nil
}
