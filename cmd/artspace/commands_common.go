package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/AvengeMedia/artspace/internal/config"
	"github.com/AvengeMedia/artspace/internal/errdefs"
	"github.com/AvengeMedia/artspace/internal/gallery"
	"github.com/AvengeMedia/artspace/internal/log"
	"github.com/AvengeMedia/artspace/internal/render"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
)

type artworkEntry struct {
	Page int `json:"page"`
	gallery.Artwork
}

func printASCII(w io.Writer) {
	logo := `
 ▄▀█ █▀█ ▀█▀   █▀ █▀█ ▄▀█ █▀▀ █▀▀
 █▀█ █▀▄  █    ▄█ █▀▀ █▀█ █▄▄ ██▄`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d3d3d3")).
		Bold(true).
		MarginBottom(1)

	fmt.Fprintln(w, style.Render(logo))
}

func listArtworks(w io.Writer, catalog *gallery.Catalog, query string, asJSON bool) error {
	matches := catalog.Search(query)
	entries := make([]artworkEntry, 0, len(matches))
	for _, i := range matches {
		entries = append(entries, artworkEntry{Page: i + 1, Artwork: catalog.Get(i)})
	}

	if asJSON {
		data, err := sonic.ConfigStd.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No artworks found.")
		return nil
	}

	fmt.Fprintf(w, "\nArtworks (%d):\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %d. %s\n", e.Page, e.Title)
		fmt.Fprintf(w, "    Image: %s\n", e.ImageRef)
		fmt.Fprintf(w, "    Description: %s\n", e.Description)
		fmt.Fprintln(w)
	}
	return nil
}

// showArtwork drives the pager forward page-1 times and prints where it lands.
func showArtwork(w io.Writer, pager *gallery.Pager, page int, cfg config.Config) error {
	for i := 1; i < page; i++ {
		if !pager.CanGoNext() {
			log.Warn("page is past the end of the gallery, showing the last artwork", "page", page, "pages", pager.Catalog().Len())
			break
		}
		pager.Next()
	}

	current := pager.Current()
	art, err := render.NewCache().Asset(current.ImageRef, cfg.ImageWidth, cfg.ImageAlpha)
	if err != nil {
		return fmt.Errorf("failed to show artwork %d: %w", pager.Index()+1, err)
	}

	var b strings.Builder
	b.WriteString(art)
	b.WriteString("\n\n")
	b.WriteString(current.Title)
	b.WriteString("\n")
	b.WriteString(current.Description)
	b.WriteString("\n")
	b.WriteString(pager.Position())
	fmt.Fprintln(w, b.String())
	return nil
}

func initConfig(fs afero.Fs, path string, force bool, w io.Writer) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to check config: %w", err)
	}
	if exists && !force {
		return errdefs.NewCustomError(errdefs.ErrTypeConfig, fmt.Sprintf("config already exists: %s (use --force to overwrite)", path))
	}

	loader := config.NewLoader(fs)
	if exists {
		backupPath, err := loader.Backup(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Backed up existing config to %s\n", backupPath)
	}

	if err := loader.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote default config to %s\n", path)
	return nil
}
