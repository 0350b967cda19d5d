// Package mcptool serves contract analysis as Model Context Protocol tools.
package mcptool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/pipeline"
)

// Server is the MCP server for contractlens
type Server struct {
	pipeline *pipeline.Pipeline
	server   *mcp.Server
}

// NewServer registers the tools backed by p
func NewServer(p *pipeline.Pipeline) (*Server, error) {
	if p == nil {
		return nil, errors.New("pipeline is required")
	}
	s := &Server{
		pipeline: p,
		server:   mcp.NewServer(&mcp.Implementation{Name: "contractlens", Version: lexicon.Version}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// AnalyzeInput is the analyze_contract tool input
type AnalyzeInput struct {
	Text         string `json:"text,omitempty" jsonschema:"full contract text; takes precedence over path"`
	Path         string `json:"path,omitempty" jsonschema:"local file path or http(s) URL of the contract"`
	ContractType string `json:"contract_type,omitempty" jsonschema:"optional type hint such as employment, lease, nda"`
}

// AnalyzeOutput is the condensed verdict returned to the assistant
type AnalyzeOutput struct {
	ReportID        string          `json:"report_id"`
	ContractType    string          `json:"contract_type"`
	Status          string          `json:"status"`
	RiskScore       float64         `json:"risk_score"`
	ComplianceScore float64         `json:"compliance_score"`
	Summary         string          `json:"summary"`
	KeyFindings     []FindingOutput `json:"key_findings"`
	Recommendations []string        `json:"recommendations"`
	NextSteps       []string        `json:"next_steps"`
}

// FindingOutput is one key finding
type FindingOutput struct {
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation,omitempty"`
}

// ExplainInput is the explain_clause tool input
type ExplainInput struct {
	Text string `json:"text" jsonschema:"the clause to explain"`
}

// ExplainOutput is a plain-language explanation
type ExplainOutput struct {
	ClauseType  string `json:"clause_type"`
	Explanation string `json:"explanation"`
	Source      string `json:"source"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_contract",
		Description: "Analyze a contract for risky clauses, compliance gaps and obligations",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "explain_clause",
		Description: "Explain a single contract clause in plain language",
	}, s.handleExplain)
}

func (s *Server) handleAnalyze(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
	hint, err := model.ParseContractType(input.ContractType)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	var r *model.Report
	switch {
	case strings.TrimSpace(input.Text) != "":
		doc, err := s.pipeline.Loader().LoadBytes(ctx, "contract.txt", []byte(input.Text))
		if err != nil {
			return nil, AnalyzeOutput{}, err
		}
		r, err = s.pipeline.AnalyzeDocument(ctx, doc, hint)
		if err != nil {
			return nil, AnalyzeOutput{}, err
		}
	case input.Path != "":
		doc, err := s.pipeline.Loader().Load(ctx, input.Path)
		if err != nil {
			return nil, AnalyzeOutput{}, err
		}
		r, err = s.pipeline.AnalyzeDocument(ctx, doc, hint)
		if err != nil {
			return nil, AnalyzeOutput{}, err
		}
	default:
		return nil, AnalyzeOutput{}, fmt.Errorf("either text or path is required")
	}

	return nil, condense(r), nil
}

func (s *Server) handleExplain(ctx context.Context, _ *mcp.CallToolRequest, input ExplainInput) (*mcp.CallToolResult, ExplainOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ExplainOutput{}, fmt.Errorf("text is required")
	}
	e := s.pipeline.ExplainText(ctx, input.Text)
	return nil, ExplainOutput{
		ClauseType:  string(e.ClauseType),
		Explanation: e.Explanation,
		Source:      string(e.Source),
	}, nil
}

func condense(r *model.Report) AnalyzeOutput {
	s := r.ExecutiveSummary
	out := AnalyzeOutput{
		ReportID:        r.ID,
		ContractType:    string(r.ContractInfo.ContractType),
		Status:          string(s.OverallStatus),
		RiskScore:       s.RiskScore,
		ComplianceScore: s.ComplianceScore,
		Summary:         s.OneLiner,
		KeyFindings:     []FindingOutput{},
		Recommendations: []string{},
		NextSteps:       r.NextSteps,
	}
	if r.Summary != nil && r.Summary.AISummary != "" {
		out.Summary = r.Summary.AISummary
	}
	for _, f := range r.KeyFindings {
		out.KeyFindings = append(out.KeyFindings, FindingOutput{
			Category:       f.Category,
			Severity:       f.Severity,
			Description:    f.Description,
			Recommendation: f.Recommendation,
		})
	}
	for _, rec := range r.Recommendations {
		out.Recommendations = append(out.Recommendations, rec.Action)
	}
	if out.NextSteps == nil {
		out.NextSteps = []string{}
	}
	return out
}
