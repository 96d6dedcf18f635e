package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
	"github.com/kailas-cloud/taskmatch/internal/domain/recommendation"
	"github.com/kailas-cloud/taskmatch/internal/output"
	"github.com/kailas-cloud/taskmatch/internal/usecase/ranking"
	taskmatch "github.com/kailas-cloud/taskmatch/pkg/sdk"
)

type rankFlags struct {
	file           string
	format         string
	server         string
	apiKey         string
	minTokenLength int
}

func newRankCmd() *cobra.Command {
	f := &rankFlags{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the assignees of a request file",
		Long: `Reads a recommendation request ({"task_description": ..., "potential_assignees": [...]})
from --file or stdin and prints the assignees best match first.

Ranking runs locally unless --server points at a running taskmatch API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readRequest(f.file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var resp taskmatch.Response
			if f.server != "" {
				resp, err = rankRemote(cmd.Context(), f, req)
			} else {
				resp, err = rankLocal(cmd.Context(), f.minTokenLength, req)
			}
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), f.format, resp)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "request JSON file (default: stdin)")
	cmd.Flags().StringVarP(&f.format, "output", "o", output.FormatTable, "output format (table, json)")
	cmd.Flags().StringVar(&f.server, "server", "", "taskmatch API base URL; rank remotely instead of locally")
	cmd.Flags().StringVar(&f.apiKey, "api-key", os.Getenv("TASKMATCH_API_KEY"), "API key for --server")
	cmd.Flags().IntVar(&f.minTokenLength, "min-token-length", ranking.DefaultMinTokenLength,
		"shortest token kept when ranking locally")
	return cmd
}

func readRequest(path string, stdin io.Reader) (taskmatch.Request, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return taskmatch.Request{}, fmt.Errorf("failed to read request: %w", err)
	}

	var req taskmatch.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return taskmatch.Request{}, fmt.Errorf("failed to parse request JSON: %w", err)
	}
	return req, nil
}

func rankRemote(ctx context.Context, f *rankFlags, req taskmatch.Request) (taskmatch.Response, error) {
	client, err := taskmatch.New(f.server, taskmatch.WithAPIKey(f.apiKey))
	if err != nil {
		return taskmatch.Response{}, err
	}
	return client.Recommend(ctx, req)
}

func rankLocal(ctx context.Context, minTokenLength int, req taskmatch.Request) (taskmatch.Response, error) {
	cands, err := requestCandidates(req)
	if err != nil {
		return taskmatch.Response{}, err
	}
	rec, err := ranking.New().WithMinTokenLength(minTokenLength).Rank(ctx, req.TaskDescription, cands)
	if err != nil {
		return taskmatch.Response{}, err
	}
	return recommendationResponse(rec)
}

// requestCandidates converts request assignees into domain candidates.
// Ids keep their JSON encoding so numbers and strings survive the round trip.
func requestCandidates(req taskmatch.Request) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, len(req.PotentialAssignees))
	for i, a := range req.PotentialAssignees {
		if a.ID.IsZero() {
			return nil, fmt.Errorf("potential_assignees[%d].id is required", i)
		}
		raw, err := a.ID.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("potential_assignees[%d].id: %w", i, err)
		}
		out[i] = candidate.New(string(raw), a.Name, a.Skills)
	}
	return out, nil
}

func recommendationResponse(rec recommendation.Recommendation) (taskmatch.Response, error) {
	items := make([]taskmatch.Recommendation, rec.Len())
	for i, it := range rec.Items() {
		var id taskmatch.ID
		if err := id.UnmarshalJSON([]byte(it.ID())); err != nil {
			return taskmatch.Response{}, fmt.Errorf("candidate %q: %w", it.Name(), err)
		}
		items[i] = taskmatch.Recommendation{
			User:   taskmatch.User{ID: id, Name: it.Name()},
			Score:  it.Score(),
			Skills: it.Skills(),
		}
	}
	return taskmatch.Response{Task: rec.Task(), Recommendations: items}, nil
}
