package main

import (
	"errors"
	"fmt"

	"github.com/quotekeeper/quotes/internal/input"
)

// runMenu is the no-argument entry point: a small interactive loop over
// the common operations.
func runMenu() {
	reader, err := input.NewReader()
	if err != nil {
		fatal("failed to open terminal: %v", err)
	}
	defer reader.Close()

	for {
		fmt.Println()
		render.Info("[a]dd  [d]aily  [l]ist  [s]earch  [v]iew  [e]dit  [x] delete  [t]heme  set[u]p  [q]uit")
		choice, err := reader.Choice("quotes> ", []string{"a", "d", "l", "s", "v", "e", "x", "t", "u", "q"}, "q")
		if err != nil {
			if errors.Is(err, input.ErrCancelled) {
				return
			}
			fatal("%v", err)
		}

		switch choice {
		case "a":
			addCmd.Run(addCmd, nil)
		case "d":
			dailyCmd.Run(dailyCmd, nil)
		case "l":
			listCmd.Run(listCmd, nil)
		case "s":
			query, err := reader.Line("search for: ")
			if err != nil || query == "" {
				continue
			}
			searchCmd.Run(searchCmd, []string{query})
		case "v":
			id, err := reader.Line("quote ID: ")
			if err != nil || id == "" {
				continue
			}
			viewCmd.Run(viewCmd, []string{id})
		case "e":
			id, err := reader.Line("quote ID: ")
			if err != nil || id == "" {
				continue
			}
			editCmd.Run(editCmd, []string{id})
		case "x":
			id, err := reader.Line("quote ID: ")
			if err != nil || id == "" {
				continue
			}
			deleteCmd.Run(deleteCmd, []string{id})
		case "t":
			themeCmd.Run(themeCmd, nil)
		case "u":
			setupCmd.Run(setupCmd, nil)
		case "q":
			return
		}
	}
}
