package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/lshigami/Studynest/config"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var allowedExtensions = map[string]bool{".pdf": true, ".docx": true, ".md": true, ".txt": true}

// Tags dropped from fetched pages before the text is read.
var noiseTags = "script, style, nav, footer, header, aside, iframe"

// TextExtractor pulls plain text out of uploaded files and web pages.
type TextExtractor interface {
	ValidateFile(filename string, size int64) (string, error)
	ExtractFile(ctx context.Context, filename string, data []byte) (string, error)
	ExtractURL(ctx context.Context, url string) (string, error)
}

type extractorService struct {
	client  *http.Client
	maxSize int64
}

func NewTextExtractor(cfg *config.Config) TextExtractor {
	return &extractorService{
		client:  &http.Client{Timeout: 30 * time.Second},
		maxSize: cfg.Server.MaxUploadSize,
	}
}

// ValidateFile checks the extension and size and returns the lower-cased
// extension.
func (e *extractorService) ValidateFile(filename string, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	if e.maxSize > 0 && size > e.maxSize {
		return "", fmt.Errorf("%w (max %d MB)", ErrFileTooLarge, e.maxSize/1024/1024)
	}
	return ext, nil
}

func (e *extractorService) ExtractFile(ctx context.Context, filename string, data []byte) (string, error) {
	ext, err := e.ValidateFile(filename, int64(len(data)))
	if err != nil {
		return "", err
	}
	var text string
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		text, err = decodeText(data)
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text found in %s", ErrEmptyContent, filename)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return string(b), nil
}

// extractDOCX reads word/document.xml and returns one line per non-empty
// paragraph.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("docx has no word/document.xml")
	}
	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if p := current.String(); strings.TrimSpace(p) != "" {
					paragraphs = append(paragraphs, p)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

// decodeText tries UTF-8, then GBK, then ISO-8859-1, which accepts any
// byte sequence.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data), nil
	}
	if out, err := simplifiedchinese.GBK.NewDecoder().Bytes(data); err == nil && !bytes.ContainsRune(out, utf8.RuneError) {
		return string(out), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("unsupported text encoding: %w", err)
	}
	return string(out), nil
}

func (e *extractorService) ExtractURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	var src io.Reader = resp.Body
	if e.maxSize > 0 {
		if resp.ContentLength > e.maxSize {
			return "", fmt.Errorf("%w (max %d MB)", ErrFileTooLarge, e.maxSize/1024/1024)
		}
		src = io.LimitReader(resp.Body, e.maxSize+1)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	if e.maxSize > 0 && int64(len(raw)) > e.maxSize {
		return "", fmt.Errorf("%w (max %d MB)", ErrFileTooLarge, e.maxSize/1024/1024)
	}

	body, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("detect charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return pageText(doc)
}

// pageText drops noise tags and reads the first of article, main or body,
// one line per text node.
func pageText(doc *goquery.Document) (string, error) {
	doc.Find(noiseTags).Remove()

	var root *goquery.Selection
	for _, sel := range []string{"article", "main", "body"} {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			root = s
			break
		}
	}
	if root == nil {
		return "", errors.New("no readable content found at this URL")
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				lines = append(lines, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range root.Nodes {
		walk(n)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: page has no text", ErrEmptyContent)
	}
	return strings.Join(lines, "\n"), nil
}
