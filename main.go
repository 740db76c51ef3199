package main

import (
	"flag"
	"fmt"
	"linkedList/controllers/scenarioRunner"
	"linkedList/gates/storage"
	"linkedList/gates/storage/list"
	"linkedList/models/scenario"
	"linkedList/pkg"
	"os"
)

func main() {
	var scenarioFile, logFile, reportFile string
	var showTree, synchronized bool

	flag.StringVar(&scenarioFile, "scenario", "", "YAML scenario file (defaults to the built-in scenario)")
	flag.StringVar(&logFile, "log", "", "Append log messages to this file")
	flag.StringVar(&reportFile, "report", "", "Write the YAML report to this file ('-' for stdout)")
	flag.BoolVar(&showTree, "tree", false, "Print the final chain as a tree")
	flag.BoolVar(&synchronized, "sync", false, "Run against the mutex-guarded list")
	flag.Parse()

	os.Exit(run(scenarioFile, logFile, reportFile, showTree, synchronized))
}

func run(scenarioFile, logFile, reportFile string, showTree, synchronized bool) int {
	wErr := pkg.NewWrappedError("main()")
	if logFile != "" {
		fileErr, err := pkg.NewWrappedErrorWithFile("main()", logFile)
		if err != nil {
			wErr.Specify(err, "pkg.NewWrappedErrorWithFile()").LogError()
			return 1
		}
		wErr = fileErr
	}
	defer wErr.Close()

	sc := scenario.Default()
	if scenarioFile != "" {
		var err error
		sc, err = scenario.Load(scenarioFile)
		if err != nil {
			wErr.Specify(err, fmt.Sprintf("scenario.Load(%q)", scenarioFile)).LogError()
			return 1
		}
	}

	l := list.NewList[any]()
	var st storage.Sequence[any] = l
	if synchronized {
		st = list.NewSyncList(l)
	}

	report := scenarioRunner.NewScenarioRunner(st, wErr).Run(sc)
	for _, result := range report.Results {
		fmt.Println(result)
	}
	fmt.Printf("final: %s size=%d\n", report.Final, st.Size())

	if showTree {
		scenarioRunner.PrintChain(st, os.Stdout)
	}

	if reportFile != "" {
		if err := writeReport(report, reportFile); err != nil {
			wErr.Specify(err, "writeReport()").LogError()
			return 1
		}
	}

	if report.Failed > 0 {
		wErr.LogMsg(fmt.Sprintf("%d of %d steps failed", report.Failed, len(report.Results)))
		return 1
	}
	return 0
}

func writeReport(report *scenario.Report, fileName string) error {
	if fileName == "-" {
		return report.WriteYAML(os.Stdout)
	}
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := report.WriteYAML(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
