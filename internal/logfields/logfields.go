package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPage       = "page"
	KeyComponent  = "component"
	KeyExample    = "example"
	KeyPath       = "path"
	KeyOutput     = "output"
	KeyAddr       = "addr"
	KeyAppID      = "app_id"
	KeyCallback   = "callback"
	KeyNodes      = "nodes"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
	KeyRemoteAddr = "remote_addr"
	KeyRequestID  = "request_id"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Page(name string) slog.Attr      { return slog.String(KeyPage, name) }
func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Example(name string) slog.Attr   { return slog.String(KeyExample, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func AppID(id string) slog.Attr       { return slog.String(KeyAppID, id) }
func Callback(out string) slog.Attr   { return slog.String(KeyCallback, out) }
func Nodes(n int) slog.Attr           { return slog.Int(KeyNodes, n) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
