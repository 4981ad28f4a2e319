package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FA0068"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	italicStyle    = lipgloss.NewStyle().Italic(true)
	dimStyle       = lipgloss.NewStyle().Italic(true).Faint(true)
	logHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func printUsage() {
	fmt.Println(headerStyle.Render("SP"))
	fmt.Println(dimStyle.Render("Leann Phydon <leann.phydon@gmail.com>"))
	fmt.Println()
	fmt.Println("Search in stdin")
	fmt.Println()
	fmt.Println("Usage: sp [OPTIONS] <PATTERN>")
	fmt.Println("       sp <COMMAND>")
	fmt.Println()
	fmt.Println("Arguments:")
	fmt.Println("  <PATTERN>  The search pattern, treated as a regex")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  examples  Show examples")
	fmt.Println("  syntax    Show a short regex syntax overview")
	fmt.Println("  log       Show content of the log file")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Print(flag.CommandLine.FlagUsages())
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SP_PARALLEL     Process input in parallel (true/false)")
	fmt.Println("  SP_FILTER_ONLY  Print only matching lines (true/false)")
	fmt.Println("  SP_WORKERS      Worker count for parallel mode")
	fmt.Println("  SP_HIGHLIGHT    Highlight color as a hex value")
	fmt.Println("  SP_CONFIG       Path to config file")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/sp/config.yaml")
	fmt.Println("Log file: ~/.config/sp/sp.log")
}

func printExamples() {
	fmt.Println()
	fmt.Println(boldStyle.Render("Example 1"))
	fmt.Println("----------")
	fmt.Println(`echo "this is a test" | sp test`)
	fmt.Println("Marks every match in the stream, other lines pass through unchanged")

	fmt.Println()
	fmt.Println(boldStyle.Render("Example 2"))
	fmt.Println("----------")
	fmt.Println(`cat /var/log/syslog | sp -f "error|warning"`)
	fmt.Println("Prints only the lines that match, unmodified")

	fmt.Println()
	fmt.Println(boldStyle.Render("Example 3"))
	fmt.Println("----------")
	fmt.Println(`cat big.txt | sp -p -w 8 needle`)
	fmt.Println("Searches with eight workers; the output order will most likely change")

	fmt.Println()
	fmt.Println(boldStyle.Render("Example 4"))
	fmt.Println("----------")
	fmt.Println(`ls | sp "\.go$"`)
	fmt.Println("Patterns are regular expressions, anchors included")
}

func printSyntax() {
	fmt.Println(headerStyle.Render("Regex syntax"))
	fmt.Println()
	fmt.Println(`  abc       literal match`)
	fmt.Println(`  .         any character except newline`)
	fmt.Println(`  [a-z0-9]  character class`)
	fmt.Println(`  [^ab]     negated class`)
	fmt.Println(`  x* x+ x?  zero or more, one or more, optional`)
	fmt.Println(`  x{2,5}    counted repetition`)
	fmt.Println(`  a|b       alternation`)
	fmt.Println(`  (ab)+     grouping`)
	fmt.Println(`  ^ $       start and end of the line`)
	fmt.Println(`  \d \w \s  digit, word, whitespace classes`)
	fmt.Println(`  \.        literal dot (escape metacharacters)`)
	fmt.Println()
	fmt.Println("Patterns match anywhere in the line unless anchored")
}
