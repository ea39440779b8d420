package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uploadHeader builds a real multipart.FileHeader by round-tripping a form
// through the HTTP multipart parser.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestLocalMediaStoreSave(t *testing.T) {
	dir := t.TempDir()
	media, err := NewLocalMediaStore(dir, "/media/")
	if err != nil {
		t.Fatalf("NewLocalMediaStore: %v", err)
	}

	ref, err := media.Save(uploadHeader(t, "icon.png", []byte("file_content")))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(ref, "/media/") || !strings.HasSuffix(ref, ".png") {
		t.Errorf("unexpected media ref %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "file_content" {
		t.Errorf("stored content = %q", data)
	}
}

func TestLocalMediaStoreGeneratesUniqueNames(t *testing.T) {
	media, err := NewLocalMediaStore(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalMediaStore: %v", err)
	}

	first, err := media.Save(uploadHeader(t, "same.png", []byte("a")))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := media.Save(uploadHeader(t, "same.png", []byte("b")))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first == second {
		t.Errorf("same ref %q for two uploads with the same filename", first)
	}
}

func TestLocalMediaStoreRejectsUnknownExtension(t *testing.T) {
	media, err := NewLocalMediaStore(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalMediaStore: %v", err)
	}
	if _, err := media.Save(uploadHeader(t, "payload.exe", []byte("x"))); err == nil {
		t.Error("Save accepted a .exe upload")
	}
}
