package mail

import (
	"encoding/base64"
	"fmt"
)

const defaultMimeType = "application/octet-stream"

// Attachment is the wire form of an attachment, base64 payload included.
type Attachment struct {
	Filename      string
	MimeType      string
	ContentBase64 string
}

// Part is a decoded, transport-ready attachment.
type Part struct {
	Filename string
	MimeType string
	Content  []byte
}

type DecodeError struct {
	Filename string
	Err      error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode attachment %q - %v", e.Filename, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// DecodeAttachments decodes every attachment before any send attempt. A
// single failure rejects the whole batch so that a dispatch never partially
// sends with broken attachments.
func DecodeAttachments(attachments []Attachment) ([]Part, error) {

	if len(attachments) == 0 {
		return nil, nil
	}

	parts := make([]Part, 0, len(attachments))

	for _, attachment := range attachments {

		if attachment.Filename == "" {
			return nil, DecodeError{
				Filename: attachment.Filename,
				Err:      fmt.Errorf("attachment filename is empty"),
			}
		}

		content, err := base64.StdEncoding.DecodeString(attachment.ContentBase64)

		if err != nil {
			return nil, DecodeError{Filename: attachment.Filename, Err: err}
		}

		mimeType := attachment.MimeType

		if mimeType == "" {
			mimeType = defaultMimeType
		}

		parts = append(parts, Part{
			Filename: attachment.Filename,
			MimeType: mimeType,
			Content:  content,
		})
	}

	return parts, nil
}
