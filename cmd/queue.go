package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/ui"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect or edit the pending-quiz queue",
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days waiting for an answer",
	Args:  cobra.NoArgs,
	RunE:  runQueueList,
}

var queueAddCmd = &cobra.Command{
	Use:   "add <yyyy-mm-dd>",
	Short: "Queue a day for the next session",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueAdd,
}

func init() {
	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueAddCmd)
}

func runQueueList(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	days := rt.queue.Days()
	if len(days) == 0 {
		fmt.Println("rien à pointer")
		return nil
	}
	for _, d := range days {
		fmt.Printf("%s  (%s)\n", d.String(), ui.FrenchDate(d))
	}
	return nil
}

func runQueueAdd(cmd *cobra.Command, args []string) error {
	day, err := model.ParseQuizzDate(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	if rt.queue.Contains(day) {
		fmt.Printf("%s déjà en attente\n", day)
		return nil
	}
	if err := rt.queue.Add(day); err != nil {
		return err
	}
	fmt.Printf("%s ajouté\n", day)
	return nil
}
