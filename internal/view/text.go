package view

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints the page for a terminal: notices, one row per card, then any details
func WriteTable(w io.Writer, page *Page) error {
	for _, notice := range page.Notices() {
		if _, err := fmt.Fprintf(w, "! %s\n", notice); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBREED\tSTATUS\tIMAGE")
	for _, card := range page.Cards() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", card.PlayerID, card.Name, card.Breed, card.Status, card.ImageURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, detail := range page.Details() {
		_, err := fmt.Fprintf(w, "\nPlayer #%s\n  Name:   %s\n  Breed:  %s\n  Status: %s\n  Image:  %s\n",
			detail.PlayerID, detail.Name, detail.Breed, detail.Status, detail.ImageURL)
		if err != nil {
			return err
		}
	}

	return nil
}
