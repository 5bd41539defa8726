package model

import "strings"

// FileType is a coarse classification of a file by its extension
type FileType string

const (
	FileTypeVideo    FileType = "video"
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
	FileTypeOther    FileType = "other"
)

// Extension tables, lower case without the leading dot
var (
	VideoExtensions    = []string{"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v", "mpg", "mpeg"}
	ImageExtensions    = []string{"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "ico", "tiff"}
	DocumentExtensions = []string{"pdf", "doc", "docx", "txt", "md", "rtf", "odt"}
)

var extensionTypes = buildExtensionTypes()

func buildExtensionTypes() map[string]FileType {
	m := make(map[string]FileType)
	for _, ext := range VideoExtensions {
		m[ext] = FileTypeVideo
	}
	for _, ext := range ImageExtensions {
		m[ext] = FileTypeImage
	}
	for _, ext := range DocumentExtensions {
		m[ext] = FileTypeDocument
	}
	return m
}

// String returns the string representation of FileType
func (ft FileType) String() string {
	return string(ft)
}

// FileTypeOf classifies a file name by the text after its last dot
// (case-insensitive). A name without a dot is taken whole, so a file named
// "mp4" is a video.
func FileTypeOf(name string) FileType {
	ext := strings.ToLower(name[strings.LastIndex(name, ".")+1:])
	if ext == "" {
		return FileTypeOther
	}
	if ft, ok := extensionTypes[ext]; ok {
		return ft
	}
	return FileTypeOther
}

// SplitExtension splits a file name at its last dot. The extension keeps the
// dot; a name without a dot has an empty extension.
func SplitExtension(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return name, ""
	}
	return name[:idx], name[idx:]
}
