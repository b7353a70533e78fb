package config

// Image format of rendered thumbnails.
// ENUM(png, jpeg)
type ThumbnailFormat int

// Ext returns file extension for the format.
func (f ThumbnailFormat) Ext() string {
	switch f {
	case ThumbnailFormatJpeg:
		return ".jpg"
	default:
		return ".png"
	}
}
