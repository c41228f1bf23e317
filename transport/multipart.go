// transport/multipart.go
package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
)

// Form builds a multipart request body. Field names are fixed per endpoint
// (e.g. "electricity_line", "inspection_quality_report_attachments"), so the
// resource clients set them explicitly.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	field    string
	filename string
	content  io.Reader
}

func NewForm() *Form {
	return &Form{}
}

// Set adds a plain text field. Setting the same key twice appends a second
// value, matching how the backend reads repeated form fields.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// SetInt adds an integer field.
func (f *Form) SetInt(key string, value int64) *Form {
	return f.Set(key, strconv.FormatInt(value, 10))
}

// AddFile attaches file content under the given field name.
func (f *Form) AddFile(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

// Encode renders the multipart body and returns its content type.
func (f *Form) Encode() (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return "", nil, fmt.Errorf("failed to write field %q: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create file part %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return "", nil, fmt.Errorf("failed to copy file %q: %w", file.filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize form: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}
