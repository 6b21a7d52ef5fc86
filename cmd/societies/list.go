package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"societies/internal/directory"
)

type listedSociety struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Href        string   `json:"href,omitempty"`
	Image       string   `json:"image,omitempty"`
	Categories  []string `json:"categories"`
	Favourite   bool     `json:"favourite"`
}

// printList writes the visible directory in display order.
func printList(w io.Writer, state *directory.State, asJSON bool) error {
	result := state.Visible()

	if asJSON {
		out := make([]listedSociety, 0, len(result.Societies))
		for _, s := range result.Societies {
			cats := s.Categories()
			if cats == nil {
				cats = []string{}
			}
			out = append(out, listedSociety{
				Name:        s.Name(),
				Description: s.Description(),
				Href:        s.Href(),
				Image:       s.Image(),
				Categories:  cats,
				Favourite:   state.IsFavorite(s.Name()),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(result.Societies) == 0 {
		_, err := fmt.Fprintln(w, "No societies match the selected categories.")
		return err
	}
	for _, s := range result.Societies {
		marker := " "
		if state.IsFavorite(s.Name()) {
			marker = "★"
		}
		line := fmt.Sprintf("%s %s", marker, s.Name())
		if cats := s.Categories(); len(cats) > 0 {
			line += " [" + strings.Join(cats, ", ") + "]"
		}
		if s.Href() != "" {
			line += "  " + s.Href()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
