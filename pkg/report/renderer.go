// Package report renders a completed research session into a PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/pkg/config"
)

// Renderer converts a session into a document byte buffer.
type Renderer interface {
	Render(session *ent.ResearchSession) ([]byte, error)
}

// PDFRenderer is the fpdf-backed Renderer implementation.
type PDFRenderer struct {
	cfg *config.ReportConfig
}

// NewPDFRenderer creates a PDF renderer.
func NewPDFRenderer(cfg *config.ReportConfig) *PDFRenderer {
	return &PDFRenderer{cfg: cfg}
}

// Render implements Renderer. It expects both provider results to be
// present; the orchestrator only calls it for completed sessions.
func (r *PDFRenderer) Render(session *ent.ResearchSession) ([]byte, error) {
	if session == nil {
		return nil, fmt.Errorf("report: nil session")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.cfg.Title, true)
	pdf.SetAuthor(r.cfg.Author, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Cover block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, r.cfg.Title, "", "C", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Session %s", session.ID), "", "C", false)
	if session.CompletedAt != nil {
		pdf.MultiCell(0, 5, session.CompletedAt.Format(time.RFC1123), "", "C", false)
	}
	pdf.Ln(6)

	r.addSection(pdf, "Research Question", session.InitialPrompt)

	if len(session.RefinementQuestions) > 0 {
		var qa bytes.Buffer
		for _, q := range session.RefinementQuestions {
			fmt.Fprintf(&qa, "Q: %s\nA: %s\n\n", q.Question, q.Answer)
		}
		r.addSection(pdf, "Clarifications", qa.String())
	}

	if session.OpenaiResult != nil {
		r.addSection(pdf, "Findings: OpenAI", *session.OpenaiResult)
	}
	if session.GeminiResult != nil {
		r.addSection(pdf, "Findings: Gemini", *session.GeminiResult)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) addSection(pdf *fpdf.Fpdf, title, body string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 11)
	// fpdf's core fonts are cp1252-only; transliterate what we can.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 5.5, tr(body), "", "L", false)
	pdf.Ln(4)
}
