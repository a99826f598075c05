package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coolbeans/swisscite/pkg/citation"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// engine is shared by all subcommands; built in the root pre-run so the
// --statutes flag applies everywhere.
var engine = citation.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "swisscite",
		Short: "Swiss legal citation engine",
		Long: `Swisscite parses, validates, normalizes, and translates Swiss legal
citations: Federal Supreme Court decisions (BGE/ATF/DTF) and statutory
provisions (Art./Abs./lit./Ziff.), across German, French, and Italian.

Examples:
  swisscite parse "BGE 145 III 229 E. 4.2.1"
  swisscite validate "Art. 97" --type statute
  swisscite format "Art. 97 OR" --lang fr
  swisscite extract --file brief.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			statutesPath, _ := cmd.Flags().GetString("statutes")
			if statutesPath == "" {
				return nil
			}
			table, err := citation.LoadStatutes(statutesPath)
			if err != nil {
				return err
			}
			engine = citation.NewWithStatutes(table)
			return nil
		},
	}
	rootCmd.PersistentFlags().String("statutes", "", "YAML file with additional statute abbreviations")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(statutesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <citation>",
		Short: "Parse a citation into its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindFlag, _ := cmd.Flags().GetString("type")
			asJSON, _ := cmd.Flags().GetBool("json")

			kind, err := kindFromFlag(kindFlag)
			if err != nil {
				return err
			}

			var parsed citation.Citation
			if kind == "" {
				parsed, err = engine.Parse(args[0])
			} else {
				parsed, err = engine.ParseKind(args[0], kind)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(parsed)
			}
			printCitation(parsed)
			return nil
		},
	}
	cmd.Flags().String("type", "", "expected citation kind: case, statute, or doctrine")
	cmd.Flags().Bool("json", false, "emit JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <citation>",
		Short: "Validate a citation and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindFlag, _ := cmd.Flags().GetString("type")
			asJSON, _ := cmd.Flags().GetBool("json")

			kind, err := kindFromFlag(kindFlag)
			if err != nil {
				return err
			}

			var result *citation.Result
			if kind == "" {
				result = engine.Validate(args[0])
			} else {
				result = engine.ValidateKind(args[0], kind)
			}

			if asJSON {
				if err := printJSON(result); err != nil {
					return err
				}
			} else {
				printResult(result)
			}
			if !result.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().String("type", "", "expected citation kind: case, statute, or doctrine")
	cmd.Flags().Bool("json", false, "emit JSON")
	return cmd
}

func formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <citation>",
		Short: "Re-render a citation in another language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			langFlag, _ := cmd.Flags().GetString("lang")
			styleFlag, _ := cmd.Flags().GetString("style")

			target, ok := citation.ParseLanguage(langFlag)
			if !ok {
				return fmt.Errorf("unsupported language %q (expected de, fr, it, or en)", langFlag)
			}
			style, ok := citation.ParseStyle(styleFlag)
			if !ok {
				return fmt.Errorf("unsupported style %q (expected full, short, or inline)", styleFlag)
			}

			formatted, err := engine.Format(args[0], target, style)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
			return nil
		},
	}
	cmd.Flags().String("lang", "de", "target language: de, fr, it, or en")
	cmd.Flags().String("style", "full", "output style: full, short, or inline")
	return cmd
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract all citations from running text",
		Long: `Extract scans running text for Swiss legal citations and prints each
one with its position. Reads from --file, or from stdin when no file is
given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			asJSON, _ := cmd.Flags().GetBool("json")

			text, err := readInput(filePath)
			if err != nil {
				return err
			}

			matches := engine.Scan(text)
			if asJSON {
				return printJSON(matches)
			}
			if len(matches) == 0 {
				fmt.Println("No citations found.")
				return nil
			}
			for _, match := range matches {
				fmt.Printf("%6d  %-12s %s\n", match.Offset, match.Citation.Kind(), citation.Normalize(match.Citation))
			}
			fmt.Printf("\n%d citation(s) found\n", len(matches))
			return nil
		},
	}
	cmd.Flags().String("file", "", "file to scan (default: stdin)")
	cmd.Flags().Bool("json", false, "emit JSON")
	return cmd
}

func statutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statutes",
		Short: "List the registered statute abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			groups := engine.Statutes().Groups()
			if asJSON {
				return printJSON(groups)
			}
			for _, group := range groups {
				fmt.Printf("%-8s de=%-6s fr=%-6s it=%-6s %s\n",
					group.ID,
					group.Names[citation.German],
					group.Names[citation.French],
					group.Names[citation.Italian],
					group.Title)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "emit JSON")
	return cmd
}

// kindFromFlag maps the --type flag to a Kind; empty means auto-detect.
func kindFromFlag(flag string) (citation.Kind, error) {
	switch citation.Kind(strings.ToLower(flag)) {
	case "":
		return "", nil
	case citation.KindCase:
		return citation.KindCase, nil
	case citation.KindStatute:
		return citation.KindStatute, nil
	case citation.KindDoctrine:
		return citation.KindDoctrine, nil
	default:
		return "", fmt.Errorf("unknown citation type %q (expected case, statute, or doctrine)", flag)
	}
}

func readInput(filePath string) (string, error) {
	if filePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return string(data), nil
}

func printJSON(value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func printCitation(parsed citation.Citation) {
	fmt.Printf("Kind:       %s\n", parsed.Kind())
	if lang := parsed.Language(); lang != "" {
		fmt.Printf("Language:   %s\n", lang)
	}
	fmt.Printf("Normalized: %s\n", citation.Normalize(parsed))

	switch c := parsed.(type) {
	case *citation.CaseCitation:
		fmt.Printf("Volume:     %d\n", c.Volume)
		fmt.Printf("Section:    %s\n", c.Section)
		fmt.Printf("Page:       %d\n", c.Page)
		if c.Consideration != "" {
			fmt.Printf("Consid.:    %s\n", c.Consideration)
		}
	case *citation.StatuteCitation:
		fmt.Printf("Article:    %d\n", c.Article)
		if c.Paragraph > 0 {
			fmt.Printf("Paragraph:  %d\n", c.Paragraph)
		}
		if c.Letter != "" {
			fmt.Printf("Letter:     %s\n", c.Letter)
		}
		if c.Number > 0 {
			fmt.Printf("Number:     %d\n", c.Number)
		}
		if c.Statute != "" {
			fmt.Printf("Statute:    %s\n", c.Statute)
		}
	case *citation.DoctrineCitation:
		fmt.Printf("Author:     %s\n", c.Author)
		fmt.Printf("Title:      %s\n", c.Title)
		fmt.Printf("Year:       %d\n", c.Year)
	}
}

func printResult(result *citation.Result) {
	if result.Valid {
		fmt.Printf("VALID (%s)\n", result.Kind)
		fmt.Printf("Normalized: %s\n", result.Normalized)
		return
	}
	fmt.Println("INVALID")
	if result.Kind != "" {
		fmt.Printf("Kind:       %s\n", result.Kind)
	}
	for _, diagnostic := range result.Diagnostics {
		if diagnostic.Position >= 0 {
			fmt.Printf("  [%s] %s (at offset %d)\n", diagnostic.Code, diagnostic.Message, diagnostic.Position)
		} else {
			fmt.Printf("  [%s] %s\n", diagnostic.Code, diagnostic.Message)
		}
	}
	for _, suggestion := range result.Suggestions {
		fmt.Printf("  hint: %s\n", suggestion)
	}
}
