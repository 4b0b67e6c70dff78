package internal

import (
	"bufio"
	"maps"
	"net"
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter to provide response interception.
// It tracks write status and size, and runs hooks before the first write.
type ResponseWriter struct {
	http.ResponseWriter
	header      http.Header
	status      int
	size        int64
	written     bool
	closed      bool
	beforeWrite []func()
	mu          sync.Mutex
	gate        sync.RWMutex
}

// NewResponseWriter creates a new ResponseWriter.
// A writer that is already wrapped is returned as is, so every middleware
// layer of a request observes the same status, size and hooks.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

// OnBeforeWrite registers a hook to run before the first write.
// Hooks are called in registration order when WriteHeader or Write is first called.
func (w *ResponseWriter) OnBeforeWrite(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.beforeWrite = append(w.beforeWrite, fn)
}

// Detach returns a writer for a handler that may outlive its caller, such as one
// running under a deadline on another goroutine. The detached writer buffers header
// changes and writes through to w until Close is called; after that its writes are
// dropped and report http.ErrHandlerTimeout.
func (w *ResponseWriter) Detach() *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		header:         w.Header().Clone(),
		status:         w.Status(),
	}
}

// Close cuts a detached writer off from the response. It waits for a write in
// progress, so once Close returns the caller owns the response again.
func (w *ResponseWriter) Close() {
	w.gate.Lock()
	w.closed = true
	w.gate.Unlock()
}

// Reattach hands a detached writer back to its parent once the detached handler
// has returned without the deadline passing. Buffered headers and pending hooks move
// to the parent, so an error response written by the caller still carries them.
func (w *ResponseWriter) Reattach() {
	parent, ok := w.ResponseWriter.(*ResponseWriter)
	if !ok || w.header == nil {
		return
	}

	w.mu.Lock()
	hooks := w.beforeWrite
	w.beforeWrite = nil
	written := w.written
	w.mu.Unlock()

	if !written {
		dst := parent.Header()
		clear(dst)
		maps.Copy(dst, w.header)
	}
	w.header = nil
	for _, fn := range hooks {
		parent.OnBeforeWrite(fn)
	}
}

// Header returns the response headers, or the buffered copy of a detached writer.
func (w *ResponseWriter) Header() http.Header {
	if w.header != nil {
		return w.header
	}
	return w.ResponseWriter.Header()
}

// WriteHeader sends the status line. Only the first call has an effect.
func (w *ResponseWriter) WriteHeader(code int) {
	w.gate.RLock()
	defer w.gate.RUnlock()
	if w.closed {
		return
	}
	if w.commit(code) {
		w.sendHeader(code)
	}
}

// Write commits the current status on first use, then writes b.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.gate.RLock()
	defer w.gate.RUnlock()
	if w.closed {
		return 0, http.ErrHandlerTimeout
	}
	if w.commit(0) {
		w.sendHeader(w.Status())
	}

	n, err := w.ResponseWriter.Write(b)
	w.mu.Lock()
	w.size += int64(n)
	w.mu.Unlock()
	return n, err
}

// commit marks the response written and drains the before-write hooks.
// It reports false when the response was already committed. A zero code
// keeps the recorded status.
func (w *ResponseWriter) commit(code int) bool {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return false
	}
	w.written = true
	if code != 0 {
		w.status = code
	}
	hooks := w.beforeWrite
	w.beforeWrite = nil
	w.mu.Unlock()

	// Hooks run unlocked: they set headers such as Content-Language and may
	// read Status.
	for _, fn := range hooks {
		fn()
	}
	return true
}

// sendHeader copies buffered headers of a detached writer, then sends the status.
func (w *ResponseWriter) sendHeader(code int) {
	if w.header != nil {
		dst := w.ResponseWriter.Header()
		clear(dst)
		maps.Copy(dst, w.header)
	}
	w.ResponseWriter.WriteHeader(code)
}

// Status returns the HTTP status code of the response.
func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of bytes written to the response body.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Written returns true if the response has been written.
func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush implements the http.Flusher interface.
func (w *ResponseWriter) Flush() {
	w.gate.RLock()
	defer w.gate.RUnlock()
	if w.closed {
		return
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements the http.Hijacker interface.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the underlying ResponseWriter, for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
