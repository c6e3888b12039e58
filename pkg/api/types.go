package api

import "time"

// Document is the raw Markdown handed to the renderer by a content source.
type Document struct {
    Path         string    `json:"path"`
    Content      string    `json:"content"`
    LastModified time.Time `json:"last_modified"`
}

// ReadmeResponse is the JSON envelope of the documentation endpoints.
// Exactly one of Content or HTML is set on success.
type ReadmeResponse struct {
    Success      bool   `json:"success"`
    Content      string `json:"content,omitempty"`
    HTML         string `json:"html,omitempty"`
    Section      string `json:"section,omitempty"`
    LastModified int64  `json:"last_modified,omitempty"`
    Timestamp    int64  `json:"timestamp,omitempty"`
    Hash         string `json:"hash,omitempty"`
    Error        string `json:"error,omitempty"`
}

// NewReadmeResponse fills the success envelope for doc, without a body.
// Callers set Content or HTML.
func NewReadmeResponse(doc Document, now time.Time) ReadmeResponse {
    return ReadmeResponse{
        Success:      true,
        LastModified: doc.LastModified.Unix(),
        Timestamp:    now.Unix(),
        Hash:         doc.Hash(),
    }
}
