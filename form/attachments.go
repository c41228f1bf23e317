// form/attachments.go
package form

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/transport"
)

// NewFile is a file picked for upload in a dialog.
type NewFile struct {
	Name    string
	Content []byte
}

// AttachmentDiff tracks an edit dialog's attachment changes as a diff:
// existing ids marked for removal plus new files to append. Untouched
// attachments are never resent.
type AttachmentDiff struct {
	existing []model.Attachment
	removed  map[int64]struct{}
	added    []NewFile
}

// NewAttachmentDiff seeds the editor with the entity's current attachments.
func NewAttachmentDiff(existing []model.Attachment) *AttachmentDiff {
	return &AttachmentDiff{
		existing: existing,
		removed:  make(map[int64]struct{}),
	}
}

// Remove marks an existing attachment for deletion.
func (d *AttachmentDiff) Remove(id int64) {
	for _, att := range d.existing {
		if att.ID == id {
			d.removed[id] = struct{}{}
			return
		}
	}
}

// Restore unmarks an attachment previously marked for deletion.
func (d *AttachmentDiff) Restore(id int64) {
	delete(d.removed, id)
}

// Add stages a new file for upload.
func (d *AttachmentDiff) Add(name string, content []byte) {
	d.added = append(d.added, NewFile{Name: name, Content: content})
}

// Kept returns the existing attachments not marked for removal, for
// display.
func (d *AttachmentDiff) Kept() []model.Attachment {
	var out []model.Attachment
	for _, att := range d.existing {
		if _, gone := d.removed[att.ID]; !gone {
			out = append(out, att)
		}
	}
	return out
}

// Added returns the staged new files.
func (d *AttachmentDiff) Added() []NewFile {
	return d.added
}

// RemovedIDs returns the ids marked for removal as the comma-joined list
// the update endpoints expect, in the order the attachments were listed.
func (d *AttachmentDiff) RemovedIDs() string {
	var parts []string
	for _, att := range d.existing {
		if _, gone := d.removed[att.ID]; gone {
			parts = append(parts, strconv.FormatInt(att.ID, 10))
		}
	}
	return strings.Join(parts, ",")
}

// ApplyTo writes the diff into a multipart form: the remove list under
// removeField (only when non-empty) and each new file under fileField.
func (d *AttachmentDiff) ApplyTo(f *transport.Form, removeField, fileField string) {
	if ids := d.RemovedIDs(); ids != "" {
		f.Set(removeField, ids)
	}
	for _, file := range d.added {
		f.AddFile(fileField, file.Name, bytes.NewReader(file.Content))
	}
}
