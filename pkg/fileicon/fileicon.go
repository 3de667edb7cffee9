// Package fileicon maps file names to Font Awesome icon classes.
package fileicon

import "strings"

// Default is the icon for empty names and unknown extensions.
const Default = "fa-file"

// Category groups extensions for listing filters.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryDocument Category = "document"
	CategoryCode     Category = "code"
	CategoryArchive  Category = "archive"
	CategoryAudio    Category = "audio"
	CategoryVideo    Category = "video"
	CategoryOther    Category = "other"
)

type entry struct {
	icon     string
	category Category
}

var table = map[string]entry{
	"jpg":  {"fa-file-image", CategoryImage},
	"jpeg": {"fa-file-image", CategoryImage},
	"png":  {"fa-file-image", CategoryImage},
	"gif":  {"fa-file-image", CategoryImage},
	"bmp":  {"fa-file-image", CategoryImage},
	"svg":  {"fa-file-image", CategoryImage},
	"webp": {"fa-file-image", CategoryImage},

	"pdf":  {"fa-file-pdf", CategoryDocument},
	"doc":  {"fa-file-word", CategoryDocument},
	"docx": {"fa-file-word", CategoryDocument},
	"xls":  {"fa-file-excel", CategoryDocument},
	"xlsx": {"fa-file-excel", CategoryDocument},
	"ppt":  {"fa-file-powerpoint", CategoryDocument},
	"pptx": {"fa-file-powerpoint", CategoryDocument},
	"txt":  {"fa-file-lines", CategoryDocument},
	"md":   {"fa-file-lines", CategoryDocument},

	"html": {"fa-file-code", CategoryCode},
	"css":  {"fa-file-code", CategoryCode},
	"js":   {"fa-file-code", CategoryCode},
	"json": {"fa-file-code", CategoryCode},
	"xml":  {"fa-file-code", CategoryCode},
	"cpp":  {"fa-file-code", CategoryCode},
	"c":    {"fa-file-code", CategoryCode},
	"h":    {"fa-file-code", CategoryCode},
	"py":   {"fa-file-code", CategoryCode},
	"java": {"fa-file-code", CategoryCode},
	"php":  {"fa-file-code", CategoryCode},

	"zip": {"fa-file-zipper", CategoryArchive},
	"rar": {"fa-file-zipper", CategoryArchive},
	"7z":  {"fa-file-zipper", CategoryArchive},
	"tar": {"fa-file-zipper", CategoryArchive},
	"gz":  {"fa-file-zipper", CategoryArchive},

	"mp3":  {"fa-file-audio", CategoryAudio},
	"wav":  {"fa-file-audio", CategoryAudio},
	"flac": {"fa-file-audio", CategoryAudio},
	"aac":  {"fa-file-audio", CategoryAudio},

	"mp4": {"fa-file-video", CategoryVideo},
	"avi": {"fa-file-video", CategoryVideo},
	"mkv": {"fa-file-video", CategoryVideo},
	"mov": {"fa-file-video", CategoryVideo},
	"wmv": {"fa-file-video", CategoryVideo},
}

// Ext returns the lowercased text after the last '.' in name, or "" when
// name has no period.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// For returns the icon class for a file name.
func For(name string) string {
	if name == "" {
		return Default
	}
	if e, ok := table[Ext(name)]; ok {
		return e.icon
	}
	return Default
}

// CategoryOf returns the category of a file name's extension.
func CategoryOf(name string) Category {
	if name == "" {
		return CategoryOther
	}
	if e, ok := table[Ext(name)]; ok {
		return e.category
	}
	return CategoryOther
}
