package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/opsboard/pkg/api"
)

func WriteJSONResponse(w io.Writer, resp api.ReadmeResponse, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
