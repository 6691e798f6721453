package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List stored layouts",
	Long:  `Shows all layouts saved in the database with piece counts and units.`,
	Run:   runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	store := openStore(settings)
	defer store.Close()

	layouts, err := store.ListLayouts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing layouts: %v\n", err)
		os.Exit(1)
	}

	if len(layouts) == 0 {
		fmt.Println("No layouts saved yet.")
		fmt.Println("Run 'tangram save <name> --from classic' to store one.")
		return
	}

	// Calculate the name column width
	maxNameLen := 4 // "Name" header
	for _, row := range layouts {
		if len(row.Name) > maxNameLen {
			maxNameLen = len(row.Name)
		}
	}

	fmt.Printf("  %-*s  %6s  %8s  %s\n", maxNameLen, "Name", "Pieces", "Unit", "Saved")
	fmt.Printf("  %-*s  %6s  %8s  %s\n", maxNameLen, "----", "------", "----", "-----")
	for _, row := range layouts {
		fmt.Printf("  %-*s  %6d  %8g  %s\n",
			maxNameLen, row.Name, row.PieceCount, row.Unit,
			row.CreatedAt.Format("2006-01-02 15:04"))
	}
}

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored layout",
	Long:  `Removes a layout and its pieces from the database.`,
	Args:  cobra.ExactArgs(1),
	Run:   runRm,
}

func runRm(cmd *cobra.Command, args []string) {
	name := args[0]
	store := openStore(loadSettings())
	defer store.Close()

	removed, err := store.DeleteLayout(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting layout: %v\n", err)
		os.Exit(1)
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: no layout named %q\n", name)
		os.Exit(1)
	}

	fmt.Printf("Deleted layout %q\n", name)
}
