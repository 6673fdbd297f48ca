package main

import (
	"flag"
	"log"
	"net/http"
)

// ---- flags ----
var (
	addrFlag      = flag.String("addr", defaultAddr, "http listen address (e.g. :8080)")
	maxUploadFlag = flag.Int("max-upload-mb", maxUploadMB, "max total upload size per merge request, in MB")
)

func main() {
	flag.Parse()

	http.HandleFunc("/", handleIndex(*maxUploadFlag))
	http.HandleFunc("/order", handleOrder())
	http.HandleFunc("/merge", handleMerge(int64(*maxUploadFlag)<<20))

	log.Printf("PDF Binder UI at http://localhost%v (max upload %d MB)", *addrFlag, *maxUploadFlag)
	log.Fatal(http.ListenAndServe(*addrFlag, nil))
}
