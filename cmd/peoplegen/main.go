// Command peoplegen generates fake people data and writes it to a CSV,
// JSON, JSON Lines, or YAML file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/bmc/peoplegen"
)

const (
	envMaleFirstNamesFile   = "PEOPLEGEN_MALE_FIRST_NAMES"
	envFemaleFirstNamesFile = "PEOPLEGEN_FEMALE_FIRST_NAMES"
	envLastNamesFile        = "PEOPLEGEN_LAST_NAMES"

	startingYearDefaultDelta = 90
	endingYearDefaultDelta   = 18
)

var (
	femalePercent = flag.Uint("female-pct", 50, "Percentage of female names")
	malePercent   = flag.Uint("male-pct", 50, "Percentage of male names")
	maleNamesFile = flag.String("male-names", "",
		"Path to a text file of male first names, one per line. Defaults to $"+
			envMaleFirstNamesFile+", then to a built-in list")
	femaleNamesFile = flag.String("female-names", "",
		"Path to a text file of female first names, one per line. Defaults to $"+
			envFemaleFirstNamesFile+", then to a built-in list")
	lastNamesFile = flag.String("last-names", "",
		"Path to a text file of last names, one per line. Defaults to $"+
			envLastNamesFile+", then to a built-in list")
	withSSNs     = flag.Bool("ssn", false, "Save the generated fake Social Security numbers")
	withIDs      = flag.Bool("id", false, "Save a unique numeric ID for each person")
	withSalaries = flag.Bool("salaries", false, "Save generated salary data")
	salaryMean   = flag.Float64("salary-mean", 72641, "Mean for generated salaries")
	salarySigma  = flag.Float64("salary-sigma", 20000, "Standard deviation for generated salaries")
	headerFormat = flag.String("header-format", "snake",
		"Header format, one of: "+joinHeaderFormats())
	outputFormat = flag.String("format", "",
		"Output format, one of: "+joinFormats()+". Default: guessed from the output file extension")
	yearMin = flag.Int("year-min", 0,
		fmt.Sprintf("The starting year for birth dates. Default: %d years ago", startingYearDefaultDelta))
	yearMax = flag.Int("year-max", 0,
		fmt.Sprintf("The ending year for birth dates. Default: %d years ago", endingYearDefaultDelta))
	verbose = flag.Bool("verbose", false, "Enable verbose processing messages")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: peoplegen [options] OUTPUT_FILE TOTAL")
	fmt.Fprintln(out, "\nGenerate TOTAL fake people and write them to OUTPUT_FILE.")
	fmt.Fprintln(out, "\nOptions:")
	flag.PrintDefaults()
}

func run() error {
	if flag.NArg() != 2 {
		usage()
		return fmt.Errorf("expected OUTPUT_FILE and TOTAL arguments")
	}
	outputPath := flag.Arg(0)
	total, err := strconv.ParseUint(flag.Arg(1), 10, 32)
	if err != nil {
		return fmt.Errorf("%q is an invalid number", flag.Arg(1))
	}

	format, err := pickFormat(*outputFormat, outputPath)
	if err != nil {
		return err
	}
	headers, err := peoplegen.ParseHeaderFormat(*headerFormat)
	if err != nil {
		return err
	}

	thisYear := time.Now().Year()
	minYear := *yearMin
	if minYear == 0 {
		minYear = thisYear - startingYearDefaultDelta
	}
	maxYear := *yearMax
	if maxYear == 0 {
		maxYear = thisYear - endingYearDefaultDelta
	}

	maleFirst, err := loadNames(*maleNamesFile, envMaleFirstNamesFile, peoplegen.DefaultMaleFirstNames)
	if err != nil {
		return err
	}
	femaleFirst, err := loadNames(*femaleNamesFile, envFemaleFirstNamesFile, peoplegen.DefaultFemaleFirstNames)
	if err != nil {
		return err
	}
	last, err := loadNames(*lastNamesFile, envLastNamesFile, peoplegen.DefaultLastNames)
	if err != nil {
		return err
	}

	gen := &peoplegen.Generator{
		Config: peoplegen.GenConfig{
			Total:         total,
			FemalePercent: uint32(*femalePercent),
			MalePercent:   uint32(*malePercent),
			YearMin:       minYear,
			YearMax:       maxYear,
			SalaryMean:    *salaryMean,
			SalarySigma:   *salarySigma,
		},
		Warn: func(ssnTotal, requested uint64) {
			color.New(color.FgYellow).Fprintf(os.Stderr,
				"Warning: there are %s total unique SSNs, and you're generating %s people. Some SSNs will repeat.\n",
				humanize.Comma(int64(ssnTotal)), humanize.Comma(int64(requested)))
		},
	}

	if *verbose {
		fmt.Printf("Generating %s people (%d%% female, %d%% male), born %d-%d, as %s.\n",
			humanize.Comma(int64(total)), *femalePercent, *malePercent, minYear, maxYear, format)
	}

	people, err := gen.Generate(maleFirst, femaleFirst, last)
	if err != nil {
		return err
	}

	n, err := peoplegen.WriteFile(outputPath, format, peoplegen.WriteOptions{
		Headers:  headers,
		IDs:      *withIDs,
		SSNs:     *withSSNs,
		Salaries: *withSalaries,
	}, people)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d record(s) to %q.\n", n, outputPath)
	return nil
}

// pickFormat resolves the output format from the -format flag, falling
// back to the output file's extension.
func pickFormat(flagValue, outputPath string) (peoplegen.Format, error) {
	if flagValue != "" {
		return peoplegen.ParseFormat(flagValue)
	}
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".csv":
		return peoplegen.CSV, nil
	case ".json":
		return peoplegen.JSON, nil
	case ".jsonl", ".ndjson":
		return peoplegen.JSONL, nil
	case ".yaml", ".yml":
		return peoplegen.YAML, nil
	default:
		return "", fmt.Errorf("can't infer an output format from %q; use -format", outputPath)
	}
}

// loadNames resolves one name list: explicit flag first, then the
// environment variable, then the built-in list.
func loadNames(flagValue, envVar string, builtin []string) ([]string, error) {
	path := flagValue
	if path == "" {
		path = os.Getenv(envVar)
	}
	if path == "" {
		return builtin, nil
	}
	names, err := peoplegen.LoadNames(path)
	if err != nil {
		return nil, err
	}
	if *verbose {
		fmt.Printf("Read %s name(s) from %q.\n", humanize.Comma(int64(len(names))), path)
	}
	return names, nil
}

func joinFormats() string {
	fs := peoplegen.Formats()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return strings.Join(out, ", ")
}

func joinHeaderFormats() string {
	hs := peoplegen.HeaderFormats()
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.String()
	}
	return strings.Join(out, ", ")
}
