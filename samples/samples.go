package samples

import _ "embed"

// Roster is the sample candidate roster bundled at compile time so the
// screener runs without external files.
//
//go:embed roster.yaml
var Roster []byte
