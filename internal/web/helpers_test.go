package web

import (
	"encoding/json"
	"io"
	"strconv"
)

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func jsonDecode(r io.Reader, v any) error { return json.NewDecoder(r).Decode(v) }
