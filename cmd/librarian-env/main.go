// Command librarian-env resolves the project-librarian configuration and
// prints, validates, or exports it. "export" writes shell lines fit for
// eval, which is how deploy scripts pick the variables up.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/karen-onishi/project-librarian/config"
	"github.com/karen-onishi/project-librarian/internal/observability"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("librarian-env", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: librarian-env [flags] [show|validate|export]\n\n")
		fs.PrintDefaults()
	}
	envFile := fs.String("env-file", "", "dotenv file to load before resolution")
	profile := fs.String("profile", "", "built-in override profile (production, debug)")
	profileFile := fs.String("profile-file", "", "YAML file with profile overrides")
	format := fs.String("format", "shell", "export format: shell or dotenv")
	if err := fs.Parse(args); err != nil {
		return err
	}

	command := "show"
	if fs.NArg() > 0 {
		command = fs.Arg(0)
	}

	cfg, err := config.Load(context.Background(), config.Options{
		EnvFile:     *envFile,
		Profile:     *profile,
		ProfileFile: *profileFile,
	})
	if err != nil {
		return err
	}

	switch command {
	case "validate":
		fmt.Fprintln(out, "configuration ok")
		return nil
	case "export":
		return cfg.WriteEnv(out, config.Format(*format))
	case "show":
		return show(cfg, out)
	}
	return fmt.Errorf("unknown command %q", command)
}

func show(cfg *config.Config, out io.Writer) error {
	logger, err := observability.NewLogger(cfg.Observability.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Debug("configuration resolved",
		zap.String("project_id", cfg.Project.ProjectID),
		zap.String("location", cfg.Project.Location),
	)

	fmt.Fprintf(out, "project:          %s (%s)\n", cfg.Project.ProjectID, cfg.Project.Location)
	fmt.Fprintf(out, "local mode:       %t\n", cfg.Project.IsLocal)
	fmt.Fprintf(out, "reasoning engine: %s\n", cfg.ReasoningEngineResourceName())
	fmt.Fprintf(out, "firestore db:     %s\n", cfg.Firestore.DatabaseName)
	fmt.Fprintf(out, "staging bucket:   %s\n", cfg.Deploy.StagingBucketURI())
	fmt.Fprintf(out, "log level:        %s\n", cfg.Observability.LogLevel)

	fmt.Fprintf(out, "agent models:\n")
	fmt.Fprintf(out, "  entity manager:    %s\n", cfg.Agents.EntityManager)
	fmt.Fprintf(out, "  project archivist: %s\n", cfg.Agents.ProjectArchivist)
	optional := []struct {
		label string
		model string
	}{
		{"task analyzer", cfg.Agents.TaskAnalyzer},
		{"project analyzer", cfg.Agents.ProjectAnalyzer},
		{"advice generator", cfg.Agents.AdviceGenerator},
		{"planning", cfg.Agents.Planning},
		{"google search", cfg.Agents.GoogleSearch},
		{"url context", cfg.Agents.URLContext},
		{"proactive advisor", cfg.Agents.ProactiveAdvisor},
	}
	for _, a := range optional {
		if a.model != "" {
			fmt.Fprintf(out, "  %s: %s\n", a.label, a.model)
		}
	}
	return nil
}
