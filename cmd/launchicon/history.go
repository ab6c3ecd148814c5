package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mosa3ed/launchicon/internal/eventlog"
	"github.com/mosa3ed/launchicon/internal/paths"
)

func historyCmd(args []string) {
	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No history found. Enable it with \"log\": true in launchicon.json.")
		return
	}

	store, err := eventlog.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.Recent(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("No generations recorded yet.")
		return
	}
	for _, r := range records {
		fmt.Println(formatRecord(r))
	}
}

// formatRecord renders one history line.
func formatRecord(r eventlog.Record) string {
	ts := r.Time.Local().Format("2006-01-02 15:04:05")
	switch r.Status {
	case eventlog.StatusCreated:
		return fmt.Sprintf("%s  %-14s  %s  %dx%d (content %dx%d at %d,%d)",
			ts, r.Status, r.Output, r.Size, r.Size, r.Width, r.Height, r.X, r.Y)
	case eventlog.StatusMissingSource:
		return fmt.Sprintf("%s  %-14s  %s", ts, r.Status, r.Source)
	default:
		return fmt.Sprintf("%s  %-14s  %s  %s", ts, r.Status, r.Output, r.Error)
	}
}
