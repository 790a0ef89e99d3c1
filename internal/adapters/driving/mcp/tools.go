package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// EntryInput is one time entry in a tool call.
type EntryInput struct {
	ID              string  `json:"id,omitempty" jsonschema:"identifier from the time-tracking system"`
	Date            string  `json:"date,omitempty" jsonschema:"day the work was done, YYYY-MM-DD"`
	DurationMinutes int     `json:"duration_minutes" jsonschema:"time spent in whole minutes, must be positive"`
	Description     string  `json:"description" jsonschema:"free-text description captured by the fee earner"`
	Amount          float64 `json:"amount,omitempty" jsonschema:"monetary value of the entry"`
	Billable        bool    `json:"billable,omitempty" jsonschema:"whether the entry is billable"`
}

// MatterInput describes the matter being billed.
type MatterInput struct {
	Title       string `json:"title" jsonschema:"matter title, e.g. Smith v Jones"`
	ClientName  string `json:"client_name" jsonschema:"client the matter is billed to"`
	MatterType  string `json:"matter_type,omitempty" jsonschema:"practice-area label"`
	Description string `json:"description,omitempty" jsonschema:"longer description of the matter"`
	RiskLevel   string `json:"risk_level,omitempty" jsonschema:"risk rating"`
}

// OptionsInput overrides the configured defaults. Omitted fields keep them.
type OptionsInput struct {
	IncludeTimeBreakdown           *bool  `json:"include_time_breakdown,omitempty" jsonschema:"mention the time spent per group"`
	IncludeWorkTypeDetails         *bool  `json:"include_work_type_details,omitempty" jsonschema:"prefix each section with its work category"`
	FormalTone                     *bool  `json:"formal_tone,omitempty" jsonschema:"apply formal substitutions"`
	IncludeOutcomes                *bool  `json:"include_outcomes,omitempty" jsonschema:"allow outcome clauses"`
	GroupByWorkType                *bool  `json:"group_by_work_type,omitempty" jsonschema:"group by work category rather than by date"`
	IncludeComplexityJustification *bool  `json:"include_complexity_justification,omitempty" jsonschema:"append the complexity sentence (compliant mode)"`
	IncludeValueDelivered          *bool  `json:"include_value_delivered,omitempty" jsonschema:"append the value sentence (compliant mode)"`
	NarrativeType                  string `json:"narrative_type,omitempty" jsonschema:"litigation, advisory or general; empty to detect (compliant mode)"`
	Seed                           string `json:"seed,omitempty" jsonschema:"decimal seed to reproduce an earlier narrative"`
}

// GenerateInput is the input schema for both generation tools.
type GenerateInput struct {
	Entries []EntryInput  `json:"entries" jsonschema:"time entries to describe"`
	Matter  *MatterInput  `json:"matter" jsonschema:"matter the entries belong to"`
	Options *OptionsInput `json:"options,omitempty" jsonschema:"generation options"`
}

// ComplianceOutput is the result of a compliance check.
type ComplianceOutput struct {
	IsCompliant     bool     `json:"is_compliant"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	ComplianceScore int      `json:"compliance_score"`
}

// NarrativeOutput is the output schema for both generation tools.
// Seed is a decimal string so clients with float64 numbers keep every digit.
type NarrativeOutput struct {
	Narrative           string            `json:"narrative"`
	WordCount           int               `json:"word_count"`
	Confidence          float64           `json:"confidence"`
	Suggestions         []string          `json:"suggestions"`
	AlternativeVersions []string          `json:"alternative_versions"`
	Compliance          *ComplianceOutput `json:"compliance,omitempty"`
	NarrativeType       string            `json:"narrative_type,omitempty"`
	Seed                string            `json:"seed"`
	VocabularyVersion   string            `json:"vocabulary_version"`
	RecordID            string            `json:"record_id,omitempty"`
}

// ValidateInput is the input schema for validate_compliance.
type ValidateInput struct {
	Text string `json:"text" jsonschema:"narrative text to check"`
}

// ClassifyInput is the input schema for classify_entry.
type ClassifyInput struct {
	Descriptions []string `json:"descriptions" jsonschema:"time entry descriptions to classify"`
}

// Classification pairs a description with its work category.
type Classification struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ClassifyOutput is the output schema for classify_entry.
type ClassifyOutput struct {
	Results []Classification `json:"results"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_narrative",
		Description: "Draft a fee narrative describing the given time entries",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_compliant_narrative",
		Description: "Draft a Bar-compliant fee narrative and check it against the fee-justification rules",
	}, s.handleGenerateCompliant)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_compliance",
		Description: "Check narrative text for fee justification, work description, time reference and professional language",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_entry",
		Description: "Classify time entry descriptions into work categories",
	}, s.handleClassify)
}

func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, NarrativeOutput, error) {
	req, err := s.toRequest(input)
	if err != nil {
		return nil, NarrativeOutput{}, err
	}

	out, err := s.ports.Narrative.Generate(ctx, req)
	if err != nil {
		return nil, NarrativeOutput{}, err
	}
	return nil, toNarrativeOutput(out), nil
}

func (s *Server) handleGenerateCompliant(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, NarrativeOutput, error) {
	req, err := s.toRequest(input)
	if err != nil {
		return nil, NarrativeOutput{}, err
	}

	out, err := s.ports.Narrative.GenerateCompliant(ctx, req)
	if err != nil {
		return nil, NarrativeOutput{}, err
	}
	return nil, toNarrativeOutput(out), nil
}

func (s *Server) handleValidate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ComplianceOutput, error) {
	check := s.ports.Narrative.Validate(input.Text)
	return nil, toComplianceOutput(check), nil
}

func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	output := ClassifyOutput{Results: make([]Classification, len(input.Descriptions))}
	for i, d := range input.Descriptions {
		output.Results[i] = Classification{
			Description: d,
			Category:    string(s.ports.Narrative.Classify(d)),
		}
	}
	return nil, output, nil
}

// toRequest converts tool input into a service request, layering any option
// overrides on top of the configured defaults.
func (s *Server) toRequest(input GenerateInput) (domain.NarrativeRequest, error) {
	req := domain.NarrativeRequest{
		Entries: make([]domain.TimeEntry, len(input.Entries)),
		Options: s.ports.defaults(),
	}

	for i, e := range input.Entries {
		date, err := domain.ParseEntryDate(e.Date)
		if err != nil {
			return req, fmt.Errorf("entries[%d]: %w", i, err)
		}
		req.Entries[i] = domain.TimeEntry{
			ID:              e.ID,
			Date:            date,
			DurationMinutes: e.DurationMinutes,
			Description:     e.Description,
			Amount:          e.Amount,
			Billable:        e.Billable,
		}
	}

	if input.Matter != nil {
		req.Matter = &domain.Matter{
			Title:       input.Matter.Title,
			ClientName:  input.Matter.ClientName,
			MatterType:  input.Matter.MatterType,
			Description: input.Matter.Description,
			RiskLevel:   input.Matter.RiskLevel,
		}
	}

	if o := input.Options; o != nil {
		applyBool(&req.Options.IncludeTimeBreakdown, o.IncludeTimeBreakdown)
		applyBool(&req.Options.IncludeWorkTypeDetails, o.IncludeWorkTypeDetails)
		applyBool(&req.Options.FormalTone, o.FormalTone)
		applyBool(&req.Options.IncludeOutcomes, o.IncludeOutcomes)
		applyBool(&req.Options.GroupByWorkType, o.GroupByWorkType)
		applyBool(&req.Options.IncludeComplexityJustification, o.IncludeComplexityJustification)
		applyBool(&req.Options.IncludeValueDelivered, o.IncludeValueDelivered)

		if o.NarrativeType != "" {
			nt, err := domain.ParseNarrativeType(o.NarrativeType)
			if err != nil {
				return req, err
			}
			req.Options.NarrativeType = nt
		}
		if o.Seed != "" {
			seed, err := strconv.ParseUint(o.Seed, 10, 64)
			if err != nil {
				return req, domain.NewInvalidInputError("options.seed", "seed must be a decimal unsigned integer")
			}
			req.Options.Seed = seed
		}
	}

	return req, nil
}

func applyBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func toNarrativeOutput(n *domain.GeneratedNarrative) NarrativeOutput {
	out := NarrativeOutput{
		Narrative:           n.Narrative,
		WordCount:           n.WordCount,
		Confidence:          n.Confidence,
		Suggestions:         nonNil(n.Suggestions),
		AlternativeVersions: nonNil(n.AlternativeVersions),
		NarrativeType:       string(n.NarrativeType),
		Seed:                strconv.FormatUint(n.Seed, 10),
		VocabularyVersion:   n.VocabularyVersion,
		RecordID:            n.RecordID,
	}
	if n.Compliance != nil {
		c := toComplianceOutput(*n.Compliance)
		out.Compliance = &c
	}
	return out
}

func toComplianceOutput(c domain.ComplianceCheck) ComplianceOutput {
	return ComplianceOutput{
		IsCompliant:     c.IsCompliant,
		Issues:          nonNil(c.Issues),
		Recommendations: nonNil(c.Recommendations),
		ComplianceScore: c.ComplianceScore,
	}
}

// nonNil keeps JSON output as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
