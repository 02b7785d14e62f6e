package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/homeveda/portal-client/internal/dtos"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	name       string
	attachment *dtos.Attachment
}

// multipartForm collects fields and files in order and encodes them lazily so
// a retried request gets a fresh body.
type multipartForm struct {
	fields []formField
	files  []formFile
}

func newMultipartForm() *multipartForm {
	return &multipartForm{}
}

func (f *multipartForm) Field(name, value string) *multipartForm {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// File adds a file part. Nil attachments are skipped.
func (f *multipartForm) File(name string, a *dtos.Attachment) *multipartForm {
	if a != nil {
		f.files = append(f.files, formFile{name: name, attachment: a})
	}
	return f
}

func (f *multipartForm) HasFiles() bool {
	return len(f.files) > 0
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (f *multipartForm) encode() (*bytes.Buffer, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("field %s: %w", fld.name, err)
		}
	}
	for _, file := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(file.name), quoteEscaper.Replace(file.attachment.Filename)))
		ct := file.attachment.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("file %s: %w", file.name, err)
		}
		if _, err := part.Write(file.attachment.Data); err != nil {
			return nil, "", fmt.Errorf("file %s: %w", file.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
