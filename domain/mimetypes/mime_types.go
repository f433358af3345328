package mimetypes

import (
	"echosphere/domain"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	OctetStream    MIME = "application/octet-stream"
	TextPlain      MIME = "text/plain"
	ApplicationPDF MIME = "application/pdf"
	AudioWAV       MIME = "audio/wav"
)

// Matches reports whether contentType, parameters ignored, is exactly expected.
func Matches(contentType string, expected MIME) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == string(expected)
}

// RecordingType sniffs a microphone capture. Payloads the sniffer cannot
// identify are taken for the WAV the recording is named after.
func RecordingType(data []byte) string {
	detected := Detect(data)
	if Matches(detected, OctetStream) {
		return string(AudioWAV)
	}
	return detected
}

// Detect sniffs the payload and returns its media type without parameters.
func Detect(data []byte) string {
	return Base(mimetype.Detect(data).String())
}

// Base strips parameters such as "; charset=utf-8". Unparsable input yields OctetStream.
func Base(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(OctetStream)
	}
	return mt
}

// Classify maps a picked file to a message type: videos play inline,
// everything else is offered as a document.
func Classify(contentType string) domain.MessageType {
	if strings.HasPrefix(Base(contentType), "video/") {
		return domain.MessageVideo
	}
	return domain.MessageDocument
}

// Extension returns a file extension (with dot) for a media type, or "".
func Extension(contentType string) string {
	if m := mimetype.Lookup(Base(contentType)); m != nil {
		return m.Extension()
	}
	return ""
}
