package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wristcheck/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new watchface project",
	Long: `Initialize a new watchface project by creating a package.json manifest with a
fresh UUID, a wscript build descriptor, a .gitignore and an entry-point source
file. If [path|name] is omitted, initializes the current directory. If a
non-existing name is provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("author", "", "author name for the manifest")
	initCmd.Flags().String("display", "", "display name shown on the watch")
	initCmd.Flags().Bool("animated", false, "scaffold the animated C watchface (default)")
	initCmd.Flags().Bool("static", false, "scaffold a minimal static C watchface")
	initCmd.Flags().Bool("rockyjs", false, "scaffold a Rocky.js JavaScript watchface instead of C")
	initCmd.MarkFlagsMutuallyExclusive("animated", "static", "rockyjs")
}

// runInit scaffolds a watchface project at the specified target path (or the
// current working directory when no argument or "." is provided). It refuses
// to initialize a directory that already holds a manifest.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	author, err := cmd.Flags().GetString("author")
	if err != nil {
		return fmt.Errorf("failed to get author flag: %w", err)
	}
	display, err := cmd.Flags().GetString("display")
	if err != nil {
		return fmt.Errorf("failed to get display flag: %w", err)
	}
	tmpl := scaffold.TemplateAnimated
	if static, err := cmd.Flags().GetBool("static"); err != nil {
		return fmt.Errorf("failed to get static flag: %w", err)
	} else if static {
		tmpl = scaffold.TemplateStatic
	}
	if rockyJS, err := cmd.Flags().GetBool("rockyjs"); err != nil {
		return fmt.Errorf("failed to get rockyjs flag: %w", err)
	} else if rockyJS {
		tmpl = scaffold.TemplateRockyJS
	}

	res, err := scaffold.Create(target, scaffold.Options{
		Author:      author,
		DisplayName: display,
		Template:    tmpl,
	})
	if err != nil {
		return err
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized watchface project %q in %s\n", res.Name, rel)
	for _, name := range res.Created {
		fmt.Fprintf(os.Stdout, "  - %s\n", name)
	}
	fmt.Fprintf(os.Stdout, "\nNext steps:\n")
	fmt.Fprintf(os.Stdout, "  1. cd %s\n", rel)
	fmt.Fprintf(os.Stdout, "  2. wristcheck validate .\n")
	fmt.Fprintf(os.Stdout, "  3. pebble build\n")
	return nil
}
