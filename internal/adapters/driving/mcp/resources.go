package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for netwiz resources.
	uriScheme = "netwiz://"

	// historyListLimit caps the history resource listing.
	historyListLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing recorded validation runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recorded netlist validation runs, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for a single recorded run's document text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{submissionId}",
		Name:        "submission",
		Description: "Raw netlist text of a recorded validation run",
		MIMEType:    "application/json",
	}, s.handleSubmissionResource)
}

// handleHistoryResource returns the list of recorded validation runs.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Submission == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	submissions, err := s.ports.Submission.List(ctx, historyListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	// Build simplified submission list.
	type submissionInfo struct {
		ID          string `json:"id"`
		Filename    string `json:"filename,omitempty"`
		SubmittedAt string `json:"submitted_at"`
		IsValid     *bool  `json:"is_valid,omitempty"`
	}

	infos := make([]submissionInfo, len(submissions))
	for i := range submissions {
		infos[i] = submissionInfo{
			ID:          submissions[i].ID,
			Filename:    submissions[i].Filename,
			SubmittedAt: submissions[i].SubmittedAt.Format(time.RFC3339),
		}
		if submissions[i].Result != nil {
			infos[i].IsValid = &submissions[i].Result.IsValid
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling submissions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSubmissionResource returns the raw text of a recorded run.
func (s *Server) handleSubmissionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Submission == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract submissionId from URI: netwiz://history/{submissionId}
	id := extractSubmissionID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	submission, err := s.ports.Submission.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting submission: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     submission.RawText,
		}},
	}, nil
}

// extractSubmissionID extracts the submission ID from a URI like netwiz://history/{submissionId}.
func extractSubmissionID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
