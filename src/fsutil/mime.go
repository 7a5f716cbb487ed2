package fsutil

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// UnknownMimeType is what GuessMimeType returns for unlisted extensions.
const UnknownMimeType = "unknown"

var mimeTypes = map[string]string{
	"aac":        "audio/aac",
	"atom":       "application/atom+xml",
	"avi":        "video/avi",
	"bmp":        "image/x-ms-bmp",
	"c":          "text/x-c",
	"class":      "application/octet-stream",
	"css":        "text/css",
	"csv":        "text/csv",
	"deb":        "application/x-deb",
	"dll":        "application/x-msdownload",
	"dmg":        "application/x-apple-diskimage",
	"doc":        "application/msword",
	"docx":       "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"exe":        "application/octet-stream",
	"flv":        "video/x-flv",
	"gif":        "image/gif",
	"gz":         "application/x-gzip",
	"h":          "text/x-c",
	"htm":        "text/html",
	"html":       "text/html",
	"ini":        "text/plain",
	"jar":        "application/java-archive",
	"java":       "text/x-java",
	"jpeg":       "image/jpeg",
	"jpg":        "image/jpeg",
	"js":         "text/javascript",
	"json":       "application/json",
	"mid":        "audio/midi",
	"midi":       "audio/midi",
	"mka":        "audio/x-matroska",
	"mkv":        "video/x-matroska",
	"mp3":        "audio/mpeg",
	"mp4":        "application/mp4",
	"mpeg":       "video/mpeg",
	"mpg":        "video/mpeg",
	"odt":        "application/vnd.oasis.opendocument.text",
	"ogg":        "audio/ogg",
	"pdf":        "application/pdf",
	"php":        "text/x-php",
	"png":        "image/png",
	"psd":        "image/vnd.adobe.photoshop",
	"py":         "application/x-python",
	"ra":         "audio/vnd.rn-realaudio",
	"ram":        "audio/vnd.rn-realaudio",
	"rar":        "application/x-rar-compressed",
	"rss":        "application/rss+xml",
	"safariextz": "application/x-safari-extension",
	"sh":         "text/x-shellscript",
	"shtml":      "text/html",
	"swf":        "application/x-shockwave-flash",
	"tar":        "application/x-tar",
	"tif":        "image/tiff",
	"tiff":       "image/tiff",
	"torrent":    "application/x-bittorrent",
	"txt":        "text/plain",
	"wav":        "audio/wav",
	"webp":       "image/webp",
	"wma":        "audio/x-ms-wma",
	"xls":        "application/vnd.ms-excel",
	"xml":        "text/xml",
	"zip":        "application/zip",
}

// GuessMimeType looks the extension of path up in a static table. The
// lookup is case sensitive.
func GuessMimeType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return UnknownMimeType
}

// MimeType sniffs the content of path. When the content is not recognised
// the extension table is tried before settling for the generic binary type.
func MimeType(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", wrapError("mime", path, err)
	}
	defer f.Close()

	m, err := mimetype.DetectReader(f)
	if err != nil {
		return "", wrapError("mime", path, err)
	}
	mt := m.String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "application/octet-stream" {
		if guessed := GuessMimeType(path); guessed != UnknownMimeType {
			return guessed, nil
		}
	}
	return mt, nil
}
