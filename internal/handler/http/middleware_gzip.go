// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Responses without a body (204, 304) and
// responses already carrying a Content-Encoding are sent as is.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasEncoding(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !hasEncoding(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		defer gw.release()

		next.ServeHTTP(gw, r)
	})
}

// hasEncoding reports whether a comma separated encoding header lists enc.
func hasEncoding(header, enc string) bool {
	for part := range strings.SplitSeq(header, ",") {
		name, _, _ := strings.Cut(part, ";")
		if strings.EqualFold(strings.TrimSpace(name), enc) {
			return true
		}
	}
	return false
}

// gzipBody is a request body read through a pooled gzip.Reader.
type gzipBody struct {
	zr     *gzip.Reader
	source io.ReadCloser
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(source); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{zr: zr, source: source}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.zr == nil {
		return 0, io.ErrClosedPipe
	}
	return b.zr.Read(p)
}

// Close returns the reader to the pool. Repeated calls are no-ops.
func (b *gzipBody) Close() error {
	if b.zr == nil {
		return nil
	}
	_ = b.zr.Close()
	gzipReaders.Put(b.zr)
	b.zr = nil
	return b.source.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	compress    bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	w.compress = bodyAllowed(statusCode) && h.Get("Content-Encoding") == ""
	if w.compress {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		h.Add("Vary", "Accept-Encoding")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compress {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

// release flushes the gzip trailer when anything was compressed and hands
// the writer back to the pool.
func (w *gzipResponseWriter) release() {
	if w.compress {
		_ = w.zw.Close()
	}
	w.zw.Reset(io.Discard)
	gzipWriters.Put(w.zw)
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified
}
