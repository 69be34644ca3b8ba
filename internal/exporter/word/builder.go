package word

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

// Disagreement holds the data for one formal disagreement report.
type Disagreement struct {
	SpecID           string
	VeriDocNumber    string
	SWBSGroup        string
	SpecText         string
	ObjectStatus     string
	GovernmentStatus string
	ContractorStatus string
	CommentHistory   string
}

// Meta is the contract metadata stamped on every report, supplied by
// configuration.
type Meta struct {
	CompanyName           string
	ContractNumber        string
	DistributionStatement string
	DestructionNotice     string
}

// Builder fills the embedded report template with disagreement data.
type Builder struct {
	Meta Meta
}

// NewBuilder creates a Builder with the given contract metadata.
func NewBuilder(meta Meta) *Builder {
	return &Builder{Meta: meta}
}

// Export writes one disagreement report under outDir, grouped by SWBS
// folder when the disagreement carries a group. Returns the written path.
func (b *Builder) Export(d Disagreement, outDir string) (string, error) {
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "rtvm-disagreement-template-*.docx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return "", fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	doc.Replace("{{Date}}", time.Now().Format("2006-01-02"), -1)
	doc.Replace("{{CompanyName}}", b.Meta.CompanyName, -1)
	doc.Replace("{{ContractNumber}}", b.Meta.ContractNumber, -1)
	doc.Replace("{{DistributionStatement}}", b.Meta.DistributionStatement, -1)
	doc.Replace("{{DestructionNotice}}", b.Meta.DestructionNotice, -1)
	doc.Replace("{{SpecID}}", d.SpecID, -1)
	doc.Replace("{{Content}}", buildContent(&d), -1)

	dir := outDir
	if d.SWBSGroup != "" {
		dir = filepath.Join(outDir, d.SWBSGroup)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	outPath := filepath.Join(dir, fmt.Sprintf("Disagreement Report - %s.docx", d.SpecID))
	if err := doc.WriteToFile(outPath); err != nil {
		return "", fmt.Errorf("failed to write disagreement report: %w", err)
	}
	return outPath, nil
}

// buildContent renders the disagreement body as plain text; the docx
// library handles the XML encoding.
func buildContent(d *Disagreement) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Verification Document: %s\n", d.VeriDocNumber))
	if d.SWBSGroup != "" {
		sb.WriteString(fmt.Sprintf("SWBS Group: %s\n", d.SWBSGroup))
	}
	sb.WriteString("\n")

	sb.WriteString("Specification Text:\n")
	sb.WriteString(d.SpecText + "\n\n")

	sb.WriteString("Assessment:\n")
	sb.WriteString(fmt.Sprintf("  Object Status: %s\n", d.ObjectStatus))
	sb.WriteString(fmt.Sprintf("  Government Assessed Status: %s\n", d.GovernmentStatus))
	sb.WriteString(fmt.Sprintf("  Contractor Assessed Status: %s\n", d.ContractorStatus))

	if strings.TrimSpace(d.CommentHistory) != "" {
		sb.WriteString("\nContractor Proposed Change Comment History:\n")
		sb.WriteString(d.CommentHistory + "\n")
	}

	return sb.String()
}
