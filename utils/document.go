package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extensions accepted per document type. Files themselves are stored
// outside this system; only the reference is validated here.
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

const pdfExtension = ".pdf"

// DocumentError represents a document reference validation error
type DocumentError struct {
	Code    string
	Message string
}

func (e *DocumentError) Error() string {
	return e.Message
}

// ValidateDocumentReference checks that a document type is one of the two
// supported kinds and that the filename extension matches it.
func ValidateDocumentReference(docType, filename string) error {
	if filename == "" {
		return &DocumentError{
			Code:    "MISSING_FILENAME",
			Message: "A document filename is required",
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch docType {
	case "photo":
		if !photoExtensions[ext] {
			return &DocumentError{
				Code:    "INVALID_FILE_FORMAT",
				Message: fmt.Sprintf("Photo documents must be .jpg, .jpeg or .png, got %q", ext),
			}
		}
	case "pdf":
		if ext != pdfExtension {
			return &DocumentError{
				Code:    "INVALID_FILE_FORMAT",
				Message: fmt.Sprintf("PDF documents must have a .pdf extension, got %q", ext),
			}
		}
	default:
		return &DocumentError{
			Code:    "INVALID_DOCUMENT_TYPE",
			Message: `Document type must be "photo" or "pdf"`,
		}
	}

	return nil
}
