package pathkit

import "bytes"

// Type is the result of content-based file type detection.
type Type struct {
	Category string
	Name     string
	Ext      string
}

// Signature defines a file type signature. Pattern is matched at Offset;
// Mask, when non-nil, marks wildcard positions (a 0x00 mask byte means the
// corresponding pattern byte matches anything).
type Signature struct {
	Category string
	Name     string
	Ext      string
	Offset   int
	Pattern  []byte
	Mask     []byte
}

// signatureTable contains file signatures for content detection.
//
// The table is ordered and the first match wins, so order IS the
// disambiguation policy: formats layered on a generic container must appear
// before the container's own signature (OOXML and JAR before bare ZIP, the
// masked RIFF variants before anything shorter). Do not re-sort.
var signatureTable = []Signature{
	// RIFF containers, disambiguated by the format tag at offset 8
	{Category: "image", Name: "webp", Ext: ".webp", Offset: 0,
		Pattern: []byte("RIFF\x00\x00\x00\x00WEBP"),
		Mask:    []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}},
	{Category: "audio", Name: "wav", Ext: ".wav", Offset: 0,
		Pattern: []byte("RIFF\x00\x00\x00\x00WAVE"),
		Mask:    []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}},
	{Category: "video", Name: "avi", Ext: ".avi", Offset: 0,
		Pattern: []byte("RIFF\x00\x00\x00\x00AVI "),
		Mask:    []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}},

	// Images
	{Category: "image", Name: "png", Ext: ".png", Offset: 0, Pattern: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{Category: "image", Name: "jpeg", Ext: ".jpg", Offset: 0, Pattern: []byte{0xFF, 0xD8, 0xFF}},
	{Category: "image", Name: "gif", Ext: ".gif", Offset: 0, Pattern: []byte("GIF87a")},
	{Category: "image", Name: "gif", Ext: ".gif", Offset: 0, Pattern: []byte("GIF89a")},
	{Category: "image", Name: "tiff", Ext: ".tif", Offset: 0, Pattern: []byte{0x49, 0x49, 0x2A, 0x00}}, // little endian
	{Category: "image", Name: "tiff", Ext: ".tif", Offset: 0, Pattern: []byte{0x4D, 0x4D, 0x00, 0x2A}}, // big endian
	{Category: "image", Name: "heic", Ext: ".heic", Offset: 4, Pattern: []byte("ftypheic")},
	{Category: "image", Name: "heic", Ext: ".heic", Offset: 4, Pattern: []byte("ftypmif1")},
	{Category: "image", Name: "avif", Ext: ".avif", Offset: 4, Pattern: []byte("ftypavif")},
	{Category: "image", Name: "ico", Ext: ".ico", Offset: 0, Pattern: []byte{0x00, 0x00, 0x01, 0x00}},

	// Documents
	{Category: "document", Name: "pdf", Ext: ".pdf", Offset: 0, Pattern: []byte("%PDF-")},

	// ZIP-layered formats go ahead of the bare ZIP signature. OOXML and JAR
	// archives name their first entry right after the 30-byte local header.
	{Category: "document", Name: "ooxml", Ext: ".docx", Offset: 30, Pattern: []byte("[Content_Types].xml")},
	{Category: "archive", Name: "jar", Ext: ".jar", Offset: 30, Pattern: []byte("META-INF/")},

	// Archives
	{Category: "archive", Name: "zip", Ext: ".zip", Offset: 0, Pattern: []byte{0x50, 0x4B, 0x03, 0x04}},
	{Category: "archive", Name: "zip", Ext: ".zip", Offset: 0, Pattern: []byte{0x50, 0x4B, 0x05, 0x06}}, // empty
	{Category: "archive", Name: "zip", Ext: ".zip", Offset: 0, Pattern: []byte{0x50, 0x4B, 0x07, 0x08}}, // spanned
	{Category: "archive", Name: "rar", Ext: ".rar", Offset: 0, Pattern: []byte("Rar!\x1a\x07\x01\x00")}, // RAR5
	{Category: "archive", Name: "rar", Ext: ".rar", Offset: 0, Pattern: []byte("Rar!\x1a\x07\x00")},
	{Category: "archive", Name: "7z", Ext: ".7z", Offset: 0, Pattern: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
	{Category: "archive", Name: "xz", Ext: ".xz", Offset: 0, Pattern: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{Category: "archive", Name: "bzip2", Ext: ".bz2", Offset: 0, Pattern: []byte("BZh")},
	{Category: "archive", Name: "gzip", Ext: ".gz", Offset: 0, Pattern: []byte{0x1F, 0x8B}},
	{Category: "archive", Name: "tar", Ext: ".tar", Offset: 257, Pattern: []byte("ustar")}, // POSIX tar

	// Audio
	{Category: "audio", Name: "flac", Ext: ".flac", Offset: 0, Pattern: []byte("fLaC")},
	{Category: "audio", Name: "ogg", Ext: ".ogg", Offset: 0, Pattern: []byte("OggS")},
	{Category: "audio", Name: "midi", Ext: ".mid", Offset: 0, Pattern: []byte("MThd")},
	{Category: "audio", Name: "mp3", Ext: ".mp3", Offset: 0, Pattern: []byte("ID3")},
	{Category: "audio", Name: "mp3", Ext: ".mp3", Offset: 0, Pattern: []byte{0xFF, 0xFB}}, // frame sync
	{Category: "audio", Name: "mp3", Ext: ".mp3", Offset: 0, Pattern: []byte{0xFF, 0xF3}}, // frame sync
	{Category: "audio", Name: "aac", Ext: ".aac", Offset: 0, Pattern: []byte{0xFF, 0xF1}}, // ADTS

	// Video
	{Category: "video", Name: "matroska", Ext: ".mkv", Offset: 0, Pattern: []byte{0x1A, 0x45, 0xDF, 0xA3}}, // EBML (WebM/MKV)
	{Category: "video", Name: "mp4", Ext: ".mp4", Offset: 4, Pattern: []byte("ftyp")},
	{Category: "video", Name: "flv", Ext: ".flv", Offset: 0, Pattern: []byte("FLV")},

	// Fonts
	{Category: "font", Name: "woff", Ext: ".woff", Offset: 0, Pattern: []byte("wOFF")},
	{Category: "font", Name: "woff2", Ext: ".woff2", Offset: 0, Pattern: []byte("wOF2")},
	{Category: "font", Name: "otf", Ext: ".otf", Offset: 0, Pattern: []byte("OTTO")},
	{Category: "font", Name: "ttf", Ext: ".ttf", Offset: 0, Pattern: []byte{0x00, 0x01, 0x00, 0x00}},

	// Executables
	{Category: "executable", Name: "elf", Ext: "", Offset: 0, Pattern: []byte{0x7F, 'E', 'L', 'F'}},
	{Category: "executable", Name: "mach-o", Ext: "", Offset: 0, Pattern: []byte{0xCF, 0xFA, 0xED, 0xFE}}, // 64-bit
	{Category: "executable", Name: "mach-o", Ext: "", Offset: 0, Pattern: []byte{0xCE, 0xFA, 0xED, 0xFE}}, // 32-bit
	{Category: "executable", Name: "exe", Ext: ".exe", Offset: 0, Pattern: []byte("MZ")},

	// Textual formats, short patterns last
	{Category: "text", Name: "xml", Ext: ".xml", Offset: 0, Pattern: []byte("<?xml")},
	{Category: "text", Name: "html", Ext: ".html", Offset: 0, Pattern: []byte("<!DOCTYPE html")},
	{Category: "text", Name: "html", Ext: ".html", Offset: 0, Pattern: []byte("<!doctype html")},
	{Category: "text", Name: "html", Ext: ".html", Offset: 0, Pattern: []byte("<html")},
	{Category: "text", Name: "script", Ext: "", Offset: 0, Pattern: []byte("#!")},

	// BMP's two-byte "BM" also matches text that merely starts with those
	// letters, so it sits after the textual signatures.
	{Category: "image", Name: "bmp", Ext: ".bmp", Offset: 0, Pattern: []byte("BM")},
}

var maxSniffLen int

func init() {
	for _, sig := range signatureTable {
		if n := sig.Offset + len(sig.Pattern); n > maxSniffLen {
			maxSniffLen = n
		}
	}
}

// SniffLen returns the number of leading bytes DetectType can make use of:
// the largest offset+pattern length declared in the signature table.
func SniffLen() int {
	return maxSniffLen
}

// DetectType classifies a buffer of leading file bytes. Supply SniffLen()
// bytes when available; shorter buffers are matched only against signatures
// that fit. When no signature matches, a heuristic applies: a NUL byte in
// the sample means binary content, anything else is assumed text.
//
// DetectType performs no I/O; see FileSpec.DetectType for the file-backed
// variant.
func DetectType(data []byte) Type {
	for _, sig := range signatureTable {
		if sig.matches(data) {
			return Type{Category: sig.Category, Name: sig.Name, Ext: sig.Ext}
		}
	}

	if len(data) == 0 || bytes.IndexByte(data, 0x00) >= 0 {
		return Type{Category: "binary", Name: "unknown"}
	}
	return Type{Category: "text", Name: "unknown"}
}

func (sig *Signature) matches(data []byte) bool {
	end := sig.Offset + len(sig.Pattern)
	if len(sig.Pattern) == 0 || end > len(data) {
		return false
	}
	window := data[sig.Offset:end]
	if sig.Mask == nil {
		return bytes.Equal(window, sig.Pattern)
	}
	for i, b := range sig.Pattern {
		if sig.Mask[i] != 0x00 && window[i] != b {
			return false
		}
	}
	return true
}
