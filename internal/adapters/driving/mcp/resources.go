package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

const (
	uriScheme = "narrative://"

	// historyResourceLimit caps the records returned by narrative://history.
	historyResourceLimit = 50
)

// vocabularyInfo summarises the wording tables for clients.
type vocabularyInfo struct {
	Version         string         `json:"version"`
	DefaultCategory string         `json:"default_category"`
	Categories      []categoryInfo `json:"categories"`
	NarrativeTypes  []string       `json:"narrative_types"`
}

type categoryInfo struct {
	Label         string   `json:"label"`
	Justification string   `json:"justification"`
	Verbs         []string `json:"verbs"`
	Objects       []string `json:"objects"`
}

// historyInfo is one audit record as exposed to clients.
type historyInfo struct {
	ID                string  `json:"id"`
	MatterTitle       string  `json:"matter_title"`
	ClientName        string  `json:"client_name"`
	Seed              string  `json:"seed"`
	NarrativeType     string  `json:"narrative_type,omitempty"`
	BarMode           bool    `json:"bar_mode"`
	ComplianceScore   int     `json:"compliance_score,omitempty"`
	Confidence        float64 `json:"confidence"`
	VocabularyVersion string  `json:"vocabulary_version"`
	CreatedAt         string  `json:"created_at"`
	Narrative         string  `json:"narrative"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "vocabulary",
		Name:        "vocabulary",
		Description: "Version and work categories of the wording tables in use",
		MIMEType:    "application/json",
	}, s.handleVocabularyResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent generated narratives with the seeds needed to reproduce them",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

func (s *Server) handleVocabularyResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	vocab := s.ports.Narrative.Vocabulary()

	info := vocabularyInfo{
		Version:         vocab.Version,
		DefaultCategory: string(vocab.DefaultCategory),
		Categories:      make([]categoryInfo, len(vocab.Categories)),
	}
	for i, c := range vocab.Categories {
		info.Categories[i] = categoryInfo{
			Label:         string(c.Label),
			Justification: c.Justification,
			Verbs:         c.Verbs,
			Objects:       c.Objects,
		}
	}
	for _, nt := range domain.NarrativeTypes() {
		info.NarrativeTypes = append(info.NarrativeTypes, string(nt))
	}

	return jsonResult(req.Params.URI, info)
}

func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Narrative.History(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]historyInfo, len(records))
	for i, r := range records {
		infos[i] = historyInfo{
			ID:                r.ID,
			MatterTitle:       r.MatterTitle,
			ClientName:        r.ClientName,
			Seed:              fmt.Sprintf("%d", r.Seed),
			NarrativeType:     string(r.NarrativeType),
			BarMode:           r.BarMode,
			ComplianceScore:   r.ComplianceScore,
			Confidence:        r.Confidence,
			VocabularyVersion: r.VocabularyVersion,
			CreatedAt:         r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Narrative:         r.Narrative,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
