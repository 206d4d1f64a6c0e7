package pathkit

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Common file extensions to MIME types mapping
var extensionToMIME = map[string]string{
	".txt":   "text/plain",
	".md":    "text/markdown",
	".csv":   "text/csv",
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "text/javascript",
	".ts":    "text/typescript",
	".json":  "application/json",
	".xml":   "application/xml",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".png":   "image/png",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".webp":  "image/webp",
	".bmp":   "image/bmp",
	".mp3":   "audio/mpeg",
	".ogg":   "audio/ogg",
	".wav":   "audio/wav",
	".flac":  "audio/flac",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".mkv":   "video/x-matroska",
	".pdf":   "application/pdf",
	".zip":   "application/zip",
	".gz":    "application/gzip",
	".tar":   "application/x-tar",
	".7z":    "application/x-7z-compressed",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
}

// GuessContentType determines a MIME type for a path from its extension,
// falling back to content sniffing when data is available.
func GuessContentType(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if contentType, ok := extensionToMIME[ext]; ok {
		return contentType
	}

	if len(data) > 0 {
		contentType := http.DetectContentType(data)
		if idx := strings.Index(contentType, ";"); idx > 0 {
			contentType = contentType[:idx]
		}
		return contentType
	}

	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	return "application/octet-stream"
}

// IsTextMIME returns true if the MIME type denotes textual content
func IsTextMIME(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") ||
		contentType == "application/json" ||
		contentType == "application/xml" ||
		contentType == "application/javascript"
}

// MIMECategory returns a coarse category for a MIME type, matching the
// detector's category vocabulary.
func MIMECategory(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	case strings.HasPrefix(contentType, "font/"):
		return "font"
	case IsTextMIME(contentType):
		return "text"
	case strings.Contains(contentType, "zip") || strings.Contains(contentType, "tar") ||
		strings.Contains(contentType, "rar") || strings.Contains(contentType, "7z") ||
		strings.Contains(contentType, "gzip") || strings.Contains(contentType, "bzip"):
		return "archive"
	case contentType == "application/pdf" || strings.Contains(contentType, "document"):
		return "document"
	default:
		return "binary"
	}
}
