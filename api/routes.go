package api

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/briarcliff-cloud/s3gateway/filter"
)

func (s *server) routes() {
	s.router.HandleFunc("/ping", s.PingHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/version", s.VersionHandler).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.router.PathPrefix("/").HandlerFunc(s.S3Handler)
}

// PingHandler answers liveness checks.
func (s *server) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

// VersionHandler reports the running build's version information.
func (s *server) VersionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.version); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// S3Handler is the single catch-all entrypoint every S3 request flows
// through: run the filter pipeline against the request's headers, then
// dispatch the resolved action against the fullstack façade. The body
// itself is never read here — it reaches dispatch as a live stream, so
// a bucket/auth/routing failure answers before a byte of an upload is
// pulled off the wire (and before Go's server answers a pending
// Expect: 100-continue with anything but the real failing status).
func (s *server) S3Handler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	data := &filter.S3Data{
		Method: r.Method,
		URL:    r.URL.String(),
		Header: r.Header,
		Body:   r.Body,
	}

	if err := s.pipeline.Run(r, data); err != nil {
		writeError(w, data.RequestID, err)
		return
	}

	w.Header().Set("x-amz-request-id", data.RequestID)

	if err := dispatch(s.facade, s.region, w, r, data); err != nil {
		writeError(w, data.RequestID, err)
	}
}
