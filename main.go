package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"repo-radar/packages/ai"
	"repo-radar/packages/config"
	"repo-radar/packages/github"
	"repo-radar/packages/handlers"
	"repo-radar/packages/radar"
	"repo-radar/packages/session"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	keyFlag := &cli.StringFlag{
		Name:    "key",
		Usage:   "GPT or Gemini API key",
		Sources: cli.EnvVars("AI_API_KEY"),
	}

	app := &cli.Command{
		Name:  "repo-radar",
		Usage: "Analyze GitHub repositories with AI-generated reports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the dashboard HTTP server",
				Action: serveAction,
			},
			{
				Name:      "tree",
				Usage:     "Print the repository file tree",
				ArgsUsage: "<repository-url>",
				Action:    treeAction,
			},
			{
				Name:      "structure",
				Usage:     "AI analysis of the repository structure",
				ArgsUsage: "<repository-url>",
				Flags:     []cli.Flag{keyFlag},
				Action:    analysisAction("structure"),
			},
			{
				Name:      "setup",
				Usage:     "AI-generated environment setup guide",
				ArgsUsage: "<repository-url>",
				Flags:     []cli.Flag{keyFlag},
				Action:    analysisAction("setup"),
			},
			{
				Name:      "flow",
				Usage:     "AI analysis of the code flow",
				ArgsUsage: "<repository-url>",
				Flags: []cli.Flag{
					keyFlag,
					&cli.StringSliceFlag{
						Name:  "file",
						Usage: "repository file path to attach as a source snippet (repeatable)",
					},
				},
				Action: analysisAction("flow"),
			},
			{
				Name:      "issues",
				Usage:     "AI summary of the open issues",
				ArgsUsage: "<repository-url>",
				Flags:     []cli.Flag{keyFlag},
				Action:    analysisAction("issues"),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	service := radar.NewService(github.NewClient())
	server := handlers.NewServer(session.New(), service)

	slog.Info("Starting dashboard", "addr", cfg.Server.ListenAddr)
	return http.ListenAndServe(cfg.Server.ListenAddr, server.Router())
}

func treeAction(ctx context.Context, cmd *cli.Command) error {
	if _, err := config.LoadConfig(cmd.String("config")); err != nil {
		return err
	}
	rawURL, err := repositoryURL(cmd)
	if err != nil {
		return err
	}

	service := radar.NewService(github.NewClient())
	rendered, err := service.TreeString(ctx, rawURL)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

func analysisAction(kind string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if _, err := config.LoadConfig(cmd.String("config")); err != nil {
			return err
		}
		rawURL, err := repositoryURL(cmd)
		if err != nil {
			return err
		}

		provider, err := ai.Detect(ctx, cmd.String("key"))
		if err != nil {
			return err
		}

		service := radar.NewService(github.NewClient())

		var content string
		switch kind {
		case "structure":
			content, err = service.Structure(ctx, provider, rawURL)
		case "setup":
			content, err = service.Setup(ctx, provider, rawURL)
		case "flow":
			content, err = runFlow(ctx, service, provider, rawURL, cmd.StringSlice("file"))
		case "issues":
			content, err = service.Issues(ctx, provider, rawURL)
		}
		if err != nil {
			return err
		}
		fmt.Println(content)
		return nil
	}
}

// runFlow fetches the requested source snippets with a progress bar before
// dispatching the code-flow analysis.
func runFlow(ctx context.Context, service *radar.Service, provider ai.Provider, rawURL string, files []string) (string, error) {
	var progress func(path string)
	var bar *pb.ProgressBar
	if len(files) > 0 {
		bar = pb.StartNew(len(files))
		progress = func(string) { bar.Increment() }
	}

	content, err := service.Flow(ctx, provider, rawURL, files, progress)
	if bar != nil {
		bar.Finish()
	}
	return content, err
}

func repositoryURL(cmd *cli.Command) (string, error) {
	rawURL := cmd.Args().First()
	if rawURL == "" {
		return "", errors.New("a repository URL argument is required")
	}
	return rawURL, nil
}
