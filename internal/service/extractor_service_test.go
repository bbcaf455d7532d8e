package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lshigami/Studynest/config"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func newTestExtractor() TextExtractor {
	return NewTextExtractor(&config.Config{Server: config.Server{MaxUploadSize: 1 << 20}})
}

func TestDecodeTextEncodings(t *testing.T) {
	gbk, _ := simplifiedchinese.GBK.NewEncoder().String("你好，世界")
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf8", []byte("hello 世界"), "hello 世界"},
		{"utf8 bom", []byte("\xef\xbb\xbfbom"), "bom"},
		{"gbk", []byte(gbk), "你好，世界"},
		{"latin1", []byte{'c', 'a', 'f', 0xe9}, "café"},
	}
	for _, tc := range cases {
		got, err := decodeText(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDOCXParagraphs(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>第一段</w:t></w:r><w:r><w:t xml:space="preserve"> 续写</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>   </w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>A</w:t><w:tab/><w:t>B</w:t></w:r></w:p>`)

	got, err := newTestExtractor().ExtractFile(context.Background(), "doc.docx", data)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if want := "第一段 续写\nA\tB"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractFileRejectsEmptyAndUnknown(t *testing.T) {
	e := newTestExtractor()
	ctx := context.Background()
	if _, err := e.ExtractFile(ctx, "blank.md", []byte("  \n ")); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("blank file: err = %v", err)
	}
	if _, err := e.ExtractFile(ctx, "slides.pptx", []byte("x")); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("pptx: err = %v", err)
	}
	if _, err := e.ExtractFile(ctx, "broken.pdf", []byte("not a pdf")); err == nil {
		t.Error("broken pdf: expected error")
	}
}

func TestExtractURLKeepsArticleText(t *testing.T) {
	page := `<html><head><title>t</title><script>var x = 1;</script></head><body>
<header>Site header</header><nav>Home | About</nav>
<article><h1>Channels</h1><p>Channels connect <b>goroutines</b>.</p><style>.a{}</style></article>
<footer>© footer</footer></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("request sent without a User-Agent")
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	got, err := newTestExtractor().ExtractURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ExtractURL: %v", err)
	}
	if want := "Channels\nChannels connect\ngoroutines\n."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, noise := range []string{"Site header", "Home", "footer", "var x"} {
		if strings.Contains(got, noise) {
			t.Errorf("noise %q leaked into %q", noise, got)
		}
	}
}

func TestExtractURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := newTestExtractor().ExtractURL(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 page")
	}
}

func TestExtractURLRejectsOversizedPage(t *testing.T) {
	page := "<html><body><p>" + strings.Repeat("x", 2048) + "</p></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		// Chunked, so the size is only known while reading.
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	small := NewTextExtractor(&config.Config{Server: config.Server{MaxUploadSize: 1024}})
	if _, err := small.ExtractURL(context.Background(), srv.URL); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("oversized page: err = %v", err)
	}

	text, err := newTestExtractor().ExtractURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("page within limit: %v", err)
	}
	if len(text) != 2048 {
		t.Errorf("got %d bytes of text, want 2048", len(text))
	}
}
