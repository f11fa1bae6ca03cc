package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested document
type Metadata struct {
	Source     string `json:"source"`
	MimeType   string `json:"mime_type"`
	Format     Format `json:"format"`
	Hash       string `json:"sha256"` // SHA256 hex digest of the raw file
	SizeBytes  int    `json:"size_bytes"`
	IngestedAt string `json:"ingested_at"` // RFC3339 format
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(source, mimeType string, format Format, data []byte) *Metadata {
	return &Metadata{
		Source:     source,
		MimeType:   mimeType,
		Format:     format,
		Hash:       computeHash(data),
		SizeBytes:  len(data),
		IngestedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
