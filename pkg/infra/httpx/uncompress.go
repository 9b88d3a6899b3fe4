package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// AcceptEncoding is the value the SDK sends to negotiate compressed
// response bodies; everything listed here is handled by DecodeChain.
const AcceptEncoding = "gzip, zstd, br, deflate"

// DecodeChain decodes an HTTP response body according to the Content-Encoding header.
// Supports chained encodings (e.g., "gzip, br") and the following algorithms: br, gzip, zstd, deflate.
// For deflate, both zlib-wrapped and raw deflate are handled.
// Returns the decoded body, whether it changed, and an error if decoding failed.
func DecodeChain(header http.Header, body []byte) ([]byte, bool, error) {
	ce := header.Get("Content-Encoding")
	if ce == "" {
		return body, false, nil
	}
	compressions := strings.Split(ce, ",")
	changed := false
	for i := len(compressions) - 1; i >= 0; i-- {
		switch strings.TrimSpace(strings.ToLower(compressions[i])) {
		case "br":
			r := brotli.NewReader(bytes.NewReader(body))
			var err error
			body, err = io.ReadAll(r)
			if err != nil {
				return nil, false, err
			}
			changed = true
		case "gzip":
			gr, err := gzip.NewReader(bytes.NewReader(body))
			if err != nil {
				return nil, false, err
			}
			out, err := io.ReadAll(gr)
			cerr := gr.Close()
			if err != nil {
				return nil, false, err
			}
			if cerr != nil {
				return nil, false, cerr
			}
			body = out
			changed = true
		case "zstd":
			dec, err := zstd.NewReader(bytes.NewReader(body))
			if err != nil {
				return nil, false, err
			}
			out, err := io.ReadAll(dec)
			dec.Close()
			if err != nil {
				return nil, false, err
			}
			body = out
			changed = true
		case "deflate":
			// zlib-wrapped first, raw deflate as fallback
			zr, err := zlib.NewReader(bytes.NewReader(body))
			if err == nil {
				out, rerr := io.ReadAll(zr)
				cerr := zr.Close()
				if rerr != nil {
					return nil, false, rerr
				}
				if cerr != nil {
					return nil, false, cerr
				}
				body = out
				changed = true
				continue
			}
			fr := flate.NewReader(bytes.NewReader(body))
			out, rerr := io.ReadAll(fr)
			cerr := fr.Close()
			if rerr != nil {
				return nil, false, rerr
			}
			if cerr != nil {
				return nil, false, cerr
			}
			body = out
			changed = true
		case "compress", "identity", "":
			// nothing to do
		default:
			return nil, false, fmt.Errorf("unsupported content encoding: %s", compressions[i])
		}
	}
	return body, changed, nil
}
