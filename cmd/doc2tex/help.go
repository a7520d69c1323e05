package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2tex <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert       Convert documents to LaTeX source")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w, "  completion    Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running 'doc2tex <input>' without a command converts directly.")
	fmt.Fprintln(w, "Run 'doc2tex help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2tex convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert DOCX, PDF, Markdown, or plain-text documents to LaTeX source.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Document file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-file timeout, e.g. 30s (default: none)")
	fmt.Fprintln(w, "      --format <s>          Force input format: docx, pdf, md, txt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --class <s>           Document class: article, report, book")
	fmt.Fprintln(w, "      --font-size <s>       Font size: 10pt, 11pt, 12pt")
	fmt.Fprintln(w, "      --margins <s>         Geometry options, e.g. margin=1in")
	fmt.Fprintln(w, "      --package <s>         Extra package to load (repeatable)")
	fmt.Fprintln(w, "      --preamble <s>        Raw LaTeX appended to the preamble")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintln(w, "      --title <s>           Document title (default: input filename)")
	fmt.Fprintln(w, "      --author <s>          Author name")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Date]: YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --listing-style <s>   Code listing style: name, file path, or raw \\lstset")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/*.tex assets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing and resolved config")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: doc2tex version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: doc2tex help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		fmt.Fprintln(env.Stdout, "Usage: doc2tex completion <shell>")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Generate a completion script for bash, zsh, fish, or powershell.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
