package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const fetchUserAgent = "PDFBinder/1.0 (+https://example.local)"

// fetchPDF resolves u to PDF bytes:
// - If the URL answers with a PDF (content-type or .pdf suffix) -> return body.
// - If it answers with HTML -> parse it for a .pdf / "Download" link, follow once.
// - "application/octet-stream" is accepted (many sites use it for file downloads).
func fetchPDF(client *http.Client, u string) ([]byte, error) {
	return fetchPDFDepth(client, u, 0)
}

func fetchPDFDepth(client *http.Client, u string, depth int) ([]byte, error) {
	if depth > 1 {
		return nil, fmt.Errorf("no direct PDF behind %s", u)
	}

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.New("http " + strconv.Itoa(resp.StatusCode))
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "pdf") || strings.HasSuffix(strings.ToLower(u), ".pdf") || ct == "application/octet-stream" {
		return io.ReadAll(resp.Body)
	}

	if strings.Contains(ct, "text/html") {
		pdfURL := findPDFLink(resp.Body, u)
		if pdfURL == "" {
			return nil, fmt.Errorf("no direct PDF link found in HTML page: %s", u)
		}
		return fetchPDFDepth(client, pdfURL, depth+1)
	}

	return nil, fmt.Errorf("unsupported content-type %s for %s", ct, u)
}

// findPDFLink scans an HTML page for the link most likely to be the PDF.
// An href ending in .pdf wins outright; failing that, the first anchor whose
// text mentions "download" or "pdf" is used. Relative hrefs resolve against
// base. Empty result means the page offers nothing usable.
func findPDFLink(body io.Reader, base string) string {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return ""
	}

	var hit, fallback string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		abs := resolveHref(base, href)
		if strings.HasSuffix(strings.ToLower(abs), ".pdf") {
			hit = abs
			return false
		}
		txt := strings.ToLower(strings.TrimSpace(a.Text()))
		if fallback == "" && (strings.Contains(txt, "download") || strings.Contains(txt, "pdf")) {
			fallback = abs
		}
		return true
	})

	if hit != "" {
		return hit
	}
	return fallback
}

func resolveHref(base, href string) string {
	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	hu, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(hu).String()
}

// urlBasename gives the filename a fetched URL contributes to ordering,
// e.g. "https://host/dir/doc%20(2).pdf" -> "doc (2).pdf".
func urlBasename(u string) string {
	pu, err := url.Parse(u)
	if err != nil || pu.Path == "" || pu.Path == "/" {
		return u
	}
	return path.Base(pu.Path)
}
