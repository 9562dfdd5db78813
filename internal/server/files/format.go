package files

import (
	"math"
	"strconv"
	"strings"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders n in base-1024 units with at most two decimals.
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}

	v := float64(n)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// TypeBadge is the short label of the type column, e.g. PDF or JPEG.
func TypeBadge(mimeType string) string {
	_, sub, ok := strings.Cut(mimeType, "/")
	if !ok || sub == "" {
		return "FILE"
	}
	return strings.ToUpper(sub)
}

// Icon kinds returned by IconKind.
const (
	IconImage = "image"
	IconPDF   = "pdf"
	IconFile  = "file"
)

// IconKind picks the row icon for mimeType.
func IconKind(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return IconImage
	case strings.Contains(mimeType, "pdf"):
		return IconPDF
	default:
		return IconFile
	}
}
