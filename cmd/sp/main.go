package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/phydon/sp/pkg/config"
	"github.com/phydon/sp/pkg/logging"
)

const version = "1.0.0"

func main() {
	// Ctrl+C is an ordinary way to stop reading a stream, not a failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		fmt.Println(italicStyle.Render("Received Ctrl-C!"))
		os.Exit(0)
	}()

	// Dispatch subcommands before flag parsing; they are accepted both
	// as bare words and as long flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "log", "--log", "-L":
			os.Exit(runLog())
		case "examples", "--examples":
			printExamples()
			os.Exit(0)
		case "syntax", "--syntax":
			printSyntax()
			os.Exit(0)
		}
	}

	var (
		configPath  string
		filterOnly  bool
		parallel    bool
		workers     int
		showVersion bool
		help        bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVarP(&filterOnly, "filter-only", "f", false, "Print only matching lines, unmodified")
	flag.BoolVarP(&parallel, "parallel", "p", false, "Process input in parallel if possible (the input order will most likely change)")
	flag.IntVarP(&workers, "workers", "w", 0, "Worker count for parallel mode (0 = one per CPU)")
	flag.BoolVarP(&showVersion, "version", "V", false, "Show version")
	flag.BoolVarP(&help, "help", "h", false, "Show help message")
	flag.Parse()

	args := flag.Args()

	if help {
		printUsage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Println("sp " + version)
		os.Exit(0)
	}

	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "expected exactly one pattern, got %d (quote the pattern if it contains spaces)\n", len(args))
		os.Exit(1)
	}
	pattern := args[0]

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if filterOnly {
		cfg.FilterOnly = true
	}
	if parallel {
		cfg.Parallel = true
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	// Route the standard logger to the run log; the search still works
	// without it, so a setup failure only warns
	if logDir, err := logging.Dir(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to find a config directory: %v\n", err)
	} else if err := logging.Setup(logDir, cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to set up the log file: %v\n", err)
	}

	// Create dependencies; the only fallible step is pattern compilation
	deps, err := NewDependencies(cfg, pattern)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(2)
	}

	app := NewApplication(deps)
	if err := app.Run(os.Stdin, os.Stdout); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// runLog prints the run log the way the log subcommand shows it.
func runLog() int {
	dir, err := logging.Dir()
	if err != nil {
		log.Printf("Unable to read logs: %v", err)
		return 1
	}

	content, found, err := logging.Read(dir)
	if err != nil {
		log.Printf("Unable to read logs: %v", err)
		return 1
	}

	fmt.Println(logHeaderStyle.Render("Available logs:"))
	if !found {
		fmt.Printf("%s %s\n", headerStyle.Render("No log file found:"), logging.Path(dir))
		return 0
	}
	fmt.Printf("%s %s\n%s\n", dimStyle.Render("Log location:"), logging.Path(dir), content)
	return 0
}
