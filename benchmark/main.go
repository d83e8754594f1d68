// Package main provides a performance benchmarking tool for the xray CLI.
// It seeds a throwaway result store with synthetic submissions, then measures
// execution times of the scoring and dashboard commands against each store backend,
// treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - xray binary installed and available in PATH
//
// Usage: go run benchmark/main.go [submissions-per-team]
//
//	submissions-per-team: Number of synthetic submissions recorded per team (default 50)
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Backend  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	Runs        int
	PerTeam     int
	Teams       []string
	Backends    []string
	QuestionCnt int
}

func main() {
	perTeam := 50
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Printf("Usage: %s [submissions-per-team]\n", os.Args[0])
			os.Exit(1)
		}
		perTeam = n
	} else if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [submissions-per-team]\n", os.Args[0])
		os.Exit(1)
	}

	workDir, err := os.MkdirTemp("", "xray-benchmark-")
	if err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     time.Minute,
		Runs:        5,
		PerTeam:     perTeam,
		Teams:       []string{"NY-01", "SF-02", "LA-03"},
		Backends:    []string{"none", "sqlite"},
		QuestionCnt: 9,
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results, config)
}

// checkPrerequisites verifies that the xray binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("xray"); err != nil {
		return fmt.Errorf("xray binary not found in PATH")
	}
	return nil
}

// backendEnv returns the environment pointing xray at the given backend.
func backendEnv(config BenchmarkConfig, backend string) []string {
	env := append(os.Environ(), "XRAY_STORE_BACKEND="+backend, "XRAY_LOG_LEVEL=error")
	if backend == "sqlite" {
		env = append(env, "XRAY_STORE_DB_CONNECT="+filepath.Join(config.WorkDir, "bench.db"))
	}
	return env
}

// randomAnswers builds a positional answer list like "4,2,5,...".
func randomAnswers(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(rand.IntN(5) + 1)
	}
	return strings.Join(parts, ",")
}

// seedStore records PerTeam submissions for every team.
func seedStore(config BenchmarkConfig, backend string) error {
	env := backendEnv(config, backend)
	for _, team := range config.Teams {
		for i := range config.PerTeam {
			cmd := exec.Command("xray", "score",
				"--answers", randomAnswers(config.QuestionCnt),
				"--user", fmt.Sprintf("bench-%d", i),
				"--team", team,
				"--output", "json")
			cmd.Env = env
			cmd.Dir = config.WorkDir
			if output, err := cmd.CombinedOutput(); err != nil {
				return fmt.Errorf("seeding %s failed: %w\nOutput: %s", team, err, string(output))
			}
		}
	}
	return nil
}

// runBenchmarks executes all benchmark commands across configured backends
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d backends, %d teams x %d submissions, %d runs, %v timeout\n",
		len(config.Backends), len(config.Teams), config.PerTeam, config.Runs, config.Timeout)

	for _, backend := range config.Backends {
		fmt.Printf("Benchmarking %s backend\n", backend)

		if backend != "none" {
			fmt.Printf("  Seeding store...\n")
			if err := seedStore(config, backend); err != nil {
				fmt.Printf("  Warning: %v\n", err)
			}
		}

		suites := []struct {
			command string
			args    []string
		}{
			{"score", []string{"score", "--answers", randomAnswers(config.QuestionCnt), "--output", "json"}},
			{"team", []string{"team", config.Teams[0], "--output", "json"}},
			{"teams", []string{"teams", "--output", "csv"}},
			{"status", []string{"results", "status"}},
		}
		for _, s := range suites {
			results = append(results, runBenchmarkSuite(config, backend, s.command, s.args))
		}
	}

	return results
}

// runBenchmarkSuite runs one command several times and reports cold and warm times
func runBenchmarkSuite(config BenchmarkConfig, backend, command string, args []string) BenchmarkResult {
	fmt.Printf("  Running %s (%d runs)\n", command, config.Runs)

	coldTime, warmTimes := runBenchmark(config, backend, args)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Backend:  backend,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes an xray command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, backend string, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("xray", args...)
		cmd.Env = backendEnv(config, backend)
		cmd.Dir = config.WorkDir

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/xray_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"backend", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Backend, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult, config BenchmarkConfig) {
	fmt.Printf("Benchmark complete\n")

	for _, backend := range config.Backends {
		fmt.Printf("%s backend:\n", backend)
		for _, result := range results {
			if result.Backend == backend {
				fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", result.Command, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
