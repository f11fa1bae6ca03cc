package ingestion

import "fmt"

const unsupportedTypeMessage = "Unsupported file type. Please upload a .pdf, .docx, .txt or .html file."

// UnsupportedTypeError is returned for documents that are not PDF, DOCX, plain text or HTML
type UnsupportedTypeError struct {
	Name     string
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return unsupportedTypeMessage
}

// ExtractionError represents a document that could not be decoded
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// FileReadError represents a document file that could not be read
type FileReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("file read error for %s: %s: %v", e.Path, e.Message, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
