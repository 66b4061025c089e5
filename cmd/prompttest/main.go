package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"interview-backend/internal/bootstrap"
	"interview-backend/internal/interview"
	"interview-backend/internal/llm/gemini"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(fmt.Sprintf("config: %v", err))
	}
	telemetry.Init(cfg.LogLevel, os.Stderr)

	profilePath := flag.String("profile", "", "Path to profile JSON file")
	run := flag.Bool("run", false, "Run the full analysis against the configured gateway")
	outPath := flag.String("out", "", "Path to write the analysis JSON (optional, requires -run)")
	model := flag.String("model", cfg.Gemini.Model, "Gemini model")
	transport := flag.String("transport", cfg.Gemini.Transport, "Gateway transport (rest or sdk)")
	flag.Parse()

	if strings.TrimSpace(*profilePath) == "" {
		exitErr("profile path is required")
	}
	profile, err := readProfile(*profilePath)
	if err != nil {
		exitErr(err.Error())
	}

	profileText := profile.FullText()
	fmt.Println("=== questions prompt ===")
	fmt.Println(interview.QuestionPrompt(profileText))
	fmt.Println("=== learning path prompt ===")
	fmt.Println(interview.LearningPathPrompt(profileText))

	if !*run {
		return
	}

	cfg.Gemini.Model = *model
	cfg.Gemini.Transport = *transport
	client, err := bootstrap.BuildLLM(context.Background(), cfg)
	if err != nil {
		exitErr(fmt.Sprintf("build gateway: %v", err))
	}
	info := gemini.Describe(cfg.Gemini.Model)
	svc := interview.NewService(client, info.DisplayName, info.Description)

	result, err := svc.Analyze(context.Background(), profile)
	if err != nil {
		exitErr(fmt.Sprintf("analyze: %v", err))
	}

	pretty, err := prettyJSON(result)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}
	fmt.Println("=== analysis ===")
	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	_, _ = os.Stdout.Write([]byte("\n"))
}

func readProfile(path string) (interview.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return interview.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p interview.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return interview.Profile{}, fmt.Errorf("invalid profile json: %w", err)
	}
	return p, nil
}

func prettyJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
