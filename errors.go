package carpagent

import "errors"

// ErrConfigMalformed indicates the config file exists but is not valid TOML.
var ErrConfigMalformed = errors.New("config malformed")
