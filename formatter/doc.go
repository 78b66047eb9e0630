// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// TextFormatter renders records through a small "{field}" template that
// is compiled once at construction. The default layout is
//
//	{time} [{level}] {logger}: {message}
//
// with {id} also available. Unknown placeholders pass through as
// literals. When a record carries captured exception information, the
// trace is appended on the lines following the message.
//
// JSONFormatter builds its output by hand with manual escaping and the
// Append-style stdlib functions, keeping the write path allocation-free.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
