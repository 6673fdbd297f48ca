package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

func handleIndex(maxMB int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		data := struct{ MaxUploadMB int }{MaxUploadMB: maxMB}
		_ = page.Execute(w, data)
	}
}

// handleOrder answers the resolved merge order for a list of filenames, so
// the page can show the order before anything is uploaded.
func handleOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in OrderRequest
		if err := json.NewDecoder(bufio.NewReader(r.Body)).Decode(&in); err != nil {
			http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
			return
		}
		items := make([]UploadedItem, len(in.Files))
		for i, name := range in.Files {
			items[i] = UploadedItem{Name: name}
		}
		ordered := sortUploads(items)
		resp := OrderResponse{Order: make([]string, len(ordered))}
		for i, it := range ordered {
			resp.Order[i] = it.Name
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// handleMerge reads the uploaded files (plus any listed URLs), resolves the
// merge order, and streams the merged PDF straight back. Nothing is kept
// server-side.
func handleMerge(maxBytes int64) http.HandlerFunc {
	client := &http.Client{Timeout: 60 * time.Second}

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				http.Error(w, `{"error":"upload too large"}`, http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		var items []UploadedItem

		// uploads, in form order
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, `{"error":"cannot read upload: `+escape(fh.Filename)+`"}`, http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				http.Error(w, `{"error":"cannot read upload: `+escape(fh.Filename)+`"}`, http.StatusBadRequest)
				return
			}
			items = append(items, UploadedItem{Name: fh.Filename, Data: data})
		}

		// optional URLs, one per line, appended after the uploads
		for _, line := range strings.Split(r.FormValue("urls"), "\n") {
			u := strings.TrimSpace(line)
			if u == "" {
				continue
			}
			data, err := fetchPDF(client, u)
			if err != nil {
				log.Printf("[fetch] %s -> %v", u, err)
				http.Error(w, `{"error":"cannot fetch `+escape(u)+`: `+escape(err.Error())+`"}`, http.StatusBadGateway)
				return
			}
			items = append(items, UploadedItem{Name: urlBasename(u), Data: data})
		}

		if len(items) == 0 {
			http.Error(w, `{"error":"no files to merge"}`, http.StatusBadRequest)
			return
		}

		merged, err := bindUploads(items)
		if err != nil {
			var mfe *MalformedFileError
			switch {
			case errors.As(err, &mfe):
				http.Error(w, `{"error":"not a valid PDF: `+escape(mfe.Name)+`"}`, http.StatusUnprocessableEntity)
			case errors.Is(err, ErrNoInput):
				http.Error(w, `{"error":"no files to merge"}`, http.StatusBadRequest)
			default:
				log.Printf("[merge] failed: %v", err)
				http.Error(w, `{"error":"merge failed"}`, http.StatusInternalServerError)
			}
			return
		}

		outName := sanitizeNoExt(strings.TrimSpace(r.FormValue("out"))) + ".pdf"
		log.Printf("[merge] %d files -> %s (%d bytes)", len(items), outName, len(merged))

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+outName+`"`)
		_, _ = w.Write(merged)
	}
}
