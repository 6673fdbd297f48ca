package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func TestFetchPDFDirect(t *testing.T) {
	want := minimalPDF(t, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(want)
	}))
	defer ts.Close()

	got, err := fetchPDF(testClient(), ts.URL+"/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchPDFOctetStream(t *testing.T) {
	want := minimalPDF(t, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(want)
	}))
	defer ts.Close()

	got, err := fetchPDF(testClient(), ts.URL+"/download?id=7")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchPDFViaHTMLPage(t *testing.T) {
	want := minimalPDF(t, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><a href="/files/doc.pdf">Download</a></body></html>`))
	})
	mux.HandleFunc("/files/doc.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(want)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	got, err := fetchPDF(testClient(), ts.URL+"/page")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchPDFNoLinkInHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
	}))
	defer ts.Close()

	_, err := fetchPDF(testClient(), ts.URL+"/page")
	require.Error(t, err)
}

func TestFetchPDFUnsupportedContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer ts.Close()

	_, err := fetchPDF(testClient(), ts.URL+"/thumb")
	require.Error(t, err)
}

func TestFindPDFLink(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "prefers pdf suffix over download text",
			html: `<a href="/other">download</a><a href="/a.pdf">file</a>`,
			want: "http://host.test/a.pdf",
		},
		{
			name: "falls back to download anchor",
			html: `<a href="/get?id=1">Download</a>`,
			want: "http://host.test/get?id=1",
		},
		{
			name: "relative href resolves against base",
			html: `<a href="files/doc.pdf">doc</a>`,
			want: "http://host.test/files/doc.pdf",
		},
		{
			name: "nothing usable",
			html: `<a href="/about">About</a>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findPDFLink(strings.NewReader(tt.html), "http://host.test/page")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLBasename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://host.test/dir/doc%20(2).pdf", "doc (2).pdf"},
		{"https://host.test/doc.pdf?dl=1", "doc.pdf"},
		{"https://host.test/", "https://host.test/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, urlBasename(tt.in))
	}
}
