package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/neslang-05/LaTeX-Convertor/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.docx")
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"class":         {Values: []string{"article", "report", "book"}},
	"font-size":     {Values: []string{"10pt", "11pt", "12pt"}},
	"format":        {Values: []string{"docx", "pdf", "md", "txt"}},
	"listing-style": {Values: builtinStyleNames()},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// builtinStyleNames lists the embedded listing styles for completion.
func builtinStyleNames() []string {
	names, err := assets.StyleNames()
	if err != nil {
		return []string{assets.DefaultStyleName}
	}
	return names
}

// buildConvertFlagSet creates a FlagSet with all convert command flags.
// This reuses the same flag registration as parseConvertFlags.
func buildConvertFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.format, "format", "", "input format override: docx, pdf, md, txt")

	// Flag groups - same as parseConvertFlags
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addMetaFlags(fs, &f.meta)
	addStyleFlags(fs, &f.style)

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	convertFlags := extractFlagsFromFlagSet(buildConvertFlagSet())

	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert documents to LaTeX source",
			Flags:       convertFlags,
			TakesFiles:  true,
			FilePattern: "*.docx,*.pdf,*.md,*.markdown,*.txt",
		},
		{
			Name:  "version",
			Desc:  "Show version information",
			Flags: nil,
		},
		{
			Name:  "help",
			Desc:  "Show help for a command",
			Flags: nil,
		},
		{
			Name:  "completion",
			Desc:  "Generate shell completion script",
			Flags: nil,
		},
	}
}

// commandWords returns the command names joined for word lists.
func commandWords(commands []commandDef) string {
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	return strings.Join(names, " ")
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2tex completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(doc2tex completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(doc2tex completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    doc2tex completion fish > ~/.config/fish/completions/doc2tex.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    doc2tex completion powershell | Out-String | Invoke-Expression")
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# bash completion for doc2tex\n\n")
	b.WriteString("_doc2tex_completions() {\n")
	b.WriteString("    local cur prev commands\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	fmt.Fprintf(&b, "    commands=%q\n\n", commandWords(commands))

	// Value completion keyed on the previous word
	b.WriteString("    case \"${prev}\" in\n")
	for _, cmd := range commands {
		for _, f := range cmd.Flags {
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern = "-" + f.Short + "|" + pattern
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s)\n", pattern)
				fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(f.Values, " "))
				b.WriteString("            return\n            ;;\n")
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n", pattern)
				b.WriteString("            COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
				b.WriteString("            return\n            ;;\n")
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n", pattern)
				b.WriteString("            COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
				b.WriteString("            return\n            ;;\n")
			}
		}
	}
	b.WriteString("        completion)\n")
	b.WriteString("            COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"${cur}\"))\n")
	b.WriteString("            return\n            ;;\n")
	b.WriteString("        help)\n")
	b.WriteString("            COMPREPLY=($(compgen -W \"${commands}\" -- \"${cur}\"))\n")
	b.WriteString("            return\n            ;;\n")
	b.WriteString("    esac\n\n")

	// First word: commands plus files (implicit convert)
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 && \"${cur}\" != -* ]]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"${commands}\" -- \"${cur}\") $(compgen -f -- \"${cur}\"))\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if [[ \"${cur}\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", bashFlagWords(commands))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _doc2tex_completions doc2tex\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// bashFlagWords joins all flag spellings for bash word completion.
func bashFlagWords(commands []commandDef) string {
	var words []string
	for _, cmd := range commands {
		for _, f := range cmd.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
		}
	}
	return strings.Join(words, " ")
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("#compdef doc2tex\n\n")
	b.WriteString("_doc2tex() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, zshEscape(cmd.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    _arguments -C \\\n")
	b.WriteString("        '1: :->command' \\\n")
	b.WriteString("        '*:: :->args'\n\n")

	b.WriteString("    case $state in\n")
	b.WriteString("        command)\n")
	b.WriteString("            _describe -t commands 'doc2tex command' commands\n")
	b.WriteString("            _files\n")
	b.WriteString("            ;;\n")
	b.WriteString("        args)\n")
	b.WriteString("            case $words[1] in\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "                %s)\n", cmd.Name)
		b.WriteString("                    _arguments \\\n")
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "                        %s \\\n", zshFlagSpec(f))
		}
		b.WriteString("                        '*:file:_files'\n")
		b.WriteString("                    ;;\n")
	}
	b.WriteString("                completion)\n")
	b.WriteString("                    _values 'shell' bash zsh fish powershell\n")
	b.WriteString("                    ;;\n")
	b.WriteString("                help)\n")
	b.WriteString("                    _describe -t commands 'doc2tex command' commands\n")
	b.WriteString("                    ;;\n")
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_doc2tex \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments entry for a flag.
func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)

	var action string
	switch f.Type {
	case flagBool:
		if f.Short != "" {
			return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]'", f.Short, f.Long, f.Short, f.Long, desc)
		}
		return fmt.Sprintf("'--%s[%s]'", f.Long, desc)
	case flagEnum:
		action = fmt.Sprintf(":value:(%s)", strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(`:file:_files -g "%s"`, zshFileGlob(f.FileGlob))
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value:"
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'=[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s=[%s]%s'", f.Long, desc, action)
}

// zshEscape escapes characters with meaning inside _arguments specs.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, ":", `\:`)
	s = strings.ReplaceAll(s, "'", `'\''`)
	return s
}

// zshFileGlob converts a comma glob list ("*.yaml,*.yml") to zsh
// alternation ("*.(yaml|yml)").
func zshFileGlob(glob string) string {
	parts := strings.Split(glob, ",")
	if len(parts) == 1 {
		return glob
	}
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# fish completion for doc2tex\n\n")
	b.WriteString("function __fish_doc2tex_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_doc2tex_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$argv[1]\" = \"$cmd[2]\"\n")
	b.WriteString("end\n\n")

	for _, cmd := range commands {
		fmt.Fprintf(&b, "complete -c doc2tex -n __fish_doc2tex_needs_command -a %s -d '%s'\n", cmd.Name, fishEscape(cmd.Desc))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "complete -c doc2tex -n '__fish_doc2tex_using_command completion' -x -a 'bash zsh fish powershell' -d 'Shell'\n")
	fmt.Fprintf(&b, "complete -c doc2tex -n '__fish_doc2tex_using_command help' -x -a '%s' -d 'Command'\n\n", commandWords(commands))

	for _, cmd := range commands {
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c doc2tex -n '__fish_doc2tex_using_command %s' -l %s", cmd.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagBool:
				// no argument
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Desc))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape escapes single quotes for fish -d arguments.
func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// generatePowerShell writes the PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# PowerShell completion for doc2tex\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName doc2tex -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = @(\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        @{ Name = '%s'; Desc = '%s' }\n", cmd.Name, psEscape(cmd.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    $flags = @(\n")
	for _, cmd := range commands {
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "        @{ Name = '--%s'; Desc = '%s' }\n", f.Long, psEscape(f.Desc))
		}
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if ($wordToComplete.StartsWith('-')) {\n")
	b.WriteString("        $flags | Where-Object { $_.Name -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Desc)\n")
	b.WriteString("        }\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $commands | Where-Object { $_.Name -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterValue', $_.Desc)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// psEscape doubles single quotes for PowerShell string literals.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
