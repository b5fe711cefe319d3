package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripagent/tripagent/internal/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Manage the travel package catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog packages",
		Run:   runPackagesList,
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one package as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runPackagesShow,
	}

	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import packages from CSV",
		Long:  "Import packages from a CSV file. Rows upsert by id; --replace clears the catalog first.",
		Args:  cobra.ExactArgs(1),
		Run:   runPackagesImport,
	}
	importCmd.Flags().Bool("replace", false, "Clear the catalog before importing")

	exportCmd := &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export the catalog as CSV",
		Long:  "Export the catalog as CSV, to a file or to stdout with no argument.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runPackagesExport,
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into an empty database",
		Run:   runPackagesSeed,
	}

	cmd.AddCommand(listCmd, showCmd, importCmd, exportCmd, seedCmd)
	RootCmd.AddCommand(cmd)
}

func runPackagesList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	pkgs, err := s.List(cmd.Context())
	if err != nil {
		exitErr("list packages", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(pkgs, "", "  ")
		fmt.Println(string(b))
		return
	}
	for _, p := range pkgs {
		fmt.Printf("%-14s %-32s %-14s %d days  %.0f-%.0f  %.1f  %s\n",
			p.ID, p.Name, p.Destination, p.DurationDays,
			p.PriceMin, p.PriceMax, p.Rating, strings.Join(p.Styles, "|"))
	}
}

func runPackagesShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	p, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("show package", err)
	}

	b, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(b))
}

func runPackagesImport(cmd *cobra.Command, args []string) {
	replace, _ := cmd.Flags().GetBool("replace")

	pkgs, err := catalog.ReadFile(args[0])
	if err != nil {
		exitErr("read csv", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	if replace {
		if err := s.Clear(cmd.Context()); err != nil {
			exitErr("clear catalog", err)
		}
	}

	imported, err := s.PutAll(cmd.Context(), pkgs)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", imported)
}

func runPackagesExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	pkgs, err := s.List(cmd.Context())
	if err != nil {
		exitErr("list packages", err)
	}

	if len(args) == 0 {
		if err := catalog.Write(os.Stdout, pkgs); err != nil {
			exitErr("write csv", err)
		}
		return
	}
	if err := catalog.WriteFile(args[0], pkgs); err != nil {
		exitErr("write csv", err)
	}
	fmt.Printf(`{"ok":true,"exported":%d,"file":%q}`+"\n", len(pkgs), args[0])
}

func runPackagesSeed(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	seeded, err := catalog.SeedIfEmpty(cmd.Context(), s)
	if err != nil {
		exitErr("seed catalog", err)
	}
	if !seeded {
		count, err := s.Count(cmd.Context())
		if err != nil {
			exitErr("count packages", err)
		}
		fmt.Printf(`{"ok":true,"seeded":false,"count":%d}`+"\n", count)
		return
	}
	fmt.Printf(`{"ok":true,"seeded":true,"count":%d}`+"\n", len(catalog.Sample()))
}
