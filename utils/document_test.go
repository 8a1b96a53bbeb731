package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	assert.True(t, e.IsSupportedFormat("cv.pdf"))
	assert.True(t, e.IsSupportedFormat("CV.PDF"))
	assert.True(t, e.IsSupportedFormat("resume.docx"))
	assert.False(t, e.IsSupportedFormat("notes.txt"))
	assert.False(t, e.IsSupportedFormat("avatar.png"))
	assert.False(t, e.IsSupportedFormat("archive.zip"))
}

func TestExtractTextRejectsUnknownFormats(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText([]byte("Jane Doe\nBackend Developer"), "cv.txt")
	assert.Error(t, err)
}

func TestExtractTextWordDocumentsUnsupported(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText([]byte("PK..."), "cv.docx")
	assert.Error(t, err)

	_, err = e.ExtractText([]byte("..."), "cv.doc")
	assert.Error(t, err)
}

func TestExtractTextInvalidPDF(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText([]byte("not a pdf at all"), "cv.pdf")
	assert.Error(t, err)
}
