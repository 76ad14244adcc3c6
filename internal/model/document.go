package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentType is the display category of a document.
type DocumentType string

const (
	TypePDF        DocumentType = "PDF"
	TypeWord       DocumentType = "Word"
	TypeExcel      DocumentType = "Excel"
	TypePowerPoint DocumentType = "PowerPoint"
	TypeOther      DocumentType = "Other"
)

// Document represents a file listed on the dashboard.
// It is a pure domain model with no database-specific dependencies or tags.
type Document struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	Size       string       `json:"size"`
	UploadedBy string       `json:"uploaded_by"`
	UploadedAt time.Time    `json:"uploaded_at"`
	Tags       []string     `json:"tags"`
}

// TypeFromFilename infers the document type from the file extension.
func TypeFromFilename(name string) DocumentType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return TypePDF
	case ".doc", ".docx":
		return TypeWord
	case ".xls", ".xlsx", ".csv":
		return TypeExcel
	case ".ppt", ".pptx":
		return TypePowerPoint
	default:
		return TypeOther
	}
}
