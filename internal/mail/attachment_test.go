package mail_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zetherabarter/Rec-Backend2/internal/mail"
)

func TestDecodeAttachments(t *testing.T) {

	content := []byte("attachment contents")
	encoded := base64.StdEncoding.EncodeToString(content)

	t.Run("Decodes a valid attachment", func(t *testing.T) {
		parts, err := mail.DecodeAttachments([]mail.Attachment{{
			Filename:      "offer.pdf",
			MimeType:      "application/pdf",
			ContentBase64: encoded,
		}})

		assert.NoError(t, err)
		assert.Len(t, parts, 1)
		assert.Equal(t, "offer.pdf", parts[0].Filename)
		assert.Equal(t, "application/pdf", parts[0].MimeType)
		assert.Equal(t, content, parts[0].Content)
	})

	t.Run("Defaults the mime type when missing", func(t *testing.T) {
		parts, err := mail.DecodeAttachments([]mail.Attachment{{
			Filename:      "offer.pdf",
			ContentBase64: encoded,
		}})

		assert.NoError(t, err)
		assert.Equal(t, "application/octet-stream", parts[0].MimeType)
	})

	t.Run("No attachments yields no parts", func(t *testing.T) {
		parts, err := mail.DecodeAttachments(nil)

		assert.NoError(t, err)
		assert.Nil(t, parts)
	})

	t.Run("Invalid base64 rejects the whole batch", func(t *testing.T) {
		parts, err := mail.DecodeAttachments([]mail.Attachment{
			{Filename: "ok.pdf", ContentBase64: encoded},
			{Filename: "broken.pdf", ContentBase64: "%%% not base64 %%%"},
		})

		assert.Nil(t, parts)

		var decodeErr mail.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "broken.pdf", decodeErr.Filename)
	})

	t.Run("Empty filename rejects the whole batch", func(t *testing.T) {
		parts, err := mail.DecodeAttachments([]mail.Attachment{{
			ContentBase64: encoded,
		}})

		assert.Nil(t, parts)

		var decodeErr mail.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}
